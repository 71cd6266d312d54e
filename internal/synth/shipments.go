package synth

import (
	"fmt"
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
)

const (
	consolidationLabelChance = 0.3
	customsStatusChance      = 0.5
	documentChance           = 0.7

	// consolidation labels on shipments are drawn from a wider range than the
	// default group count, so some point at groups that were never generated
	consolidationLabelMax = 20
)

// ShipmentID formats the sequential shipment identifier
func ShipmentID(n int) string {
	return fmt.Sprintf("SHP-%06d", n)
}

// Shipments synthesizes count shipment records
func (g *Generator) Shipments(count int) ([]models.Shipment, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	now := g.Now()
	shipments := make([]models.Shipment, 0, count)
	for i := 0; i < count; i++ {
		shipments = append(shipments, g.shipment(i+1, now))
	}
	return shipments, nil
}

func (g *Generator) shipment(n int, now time.Time) models.Shipment {
	originCity := g.pick(belgianCities)
	dest := europeanCities[g.intn(0, len(europeanCities))]

	origin := models.Location{
		Company: g.pick(shipperCompanies),
		City:    originCity,
		Country: "Belgium",
	}
	destination := models.Location{
		Company: fmt.Sprintf(g.pick(destinationCompanyTemplates), dest.City),
		City:    dest.City,
		Country: dest.Country,
	}

	weight := truncate(g.fake.Float64Range(1, 51), 2)
	dims := models.Dimensions{
		Length: g.intn(80, 150),
		Width:  g.intn(40, 80),
		Height: g.intn(10, 40),
	}
	value := truncate(g.fake.Float64Range(100, 5100), 2)

	createdAt := now.AddDate(0, 0, g.intn(-15, 15))
	estimatedDelivery := createdAt.AddDate(0, 0, g.intn(1, 8))

	s := models.Shipment{
		ID:                ShipmentID(n),
		TrackingNumber:    g.trackingNumber(),
		Origin:            origin,
		Destination:       destination,
		Carrier:           g.pick(carriers),
		ServiceTier:       g.pick(serviceTiers),
		Weight:            weight,
		Dimensions:        dims,
		Value:             value,
		ShippingCost:      ShippingCost(weight, value),
		Status:            g.pick(shipmentStatuses),
		Priority:          g.pick(priorities),
		CreatedAt:         createdAt,
		EstimatedDelivery: estimatedDelivery,
		LastUpdate:        now,
		Documents:         []string{},
	}

	if g.chance(consolidationLabelChance) {
		s.ConsolidationGroup = GroupID(g.intn(1, consolidationLabelMax+1))
	}
	if g.chance(customsStatusChance) {
		s.CustomsStatus = g.pick(customsStatuses)
	}
	for _, doc := range documentNames {
		if g.chance(documentChance) {
			s.Documents = append(s.Documents, doc)
		}
	}

	return s
}
