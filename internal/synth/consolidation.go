package synth

import (
	"fmt"
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
)

// Group member IDs use the shipment format but come from a range sequential
// shipment IDs do not reach, so they never point at generated shipments.
const (
	groupMemberIDMin = 100000
	groupMemberIDMax = 1000000
	minLoadRatio     = 0.1
)

// GroupID formats the sequential consolidation group identifier
func GroupID(n int) string {
	return fmt.Sprintf("CONS-%03d", n)
}

// ConsolidationGroups synthesizes count consolidation groups
func (g *Generator) ConsolidationGroups(count int) ([]models.ConsolidationGroup, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	now := g.Now()
	groups := make([]models.ConsolidationGroup, 0, count)
	for i := 0; i < count; i++ {
		groups = append(groups, g.group(i+1, now))
	}
	return groups, nil
}

func (g *Generator) group(n int, now time.Time) models.ConsolidationGroup {
	dest := europeanCities[g.intn(0, len(europeanCities))]
	participants := g.intn(2, 10)

	maxCap := models.Capacity{
		Weight: float64(g.intn(1000, 3000)),
		Volume: truncate(g.fake.Float64Range(15, 25), 1),
	}
	load := models.Capacity{
		Weight: truncate(maxCap.Weight*g.fake.Float64Range(minLoadRatio, models.MaxLoadRatio), 1),
		Volume: truncate(maxCap.Volume*g.fake.Float64Range(minLoadRatio, models.MaxLoadRatio), 1),
	}

	members := make([]string, 0, participants)
	for i := 0; i < participants; i++ {
		members = append(members, ShipmentID(g.intn(groupMemberIDMin, groupMemberIDMax)))
	}

	return models.ConsolidationGroup{
		ID:   GroupID(n),
		Name: fmt.Sprintf("%s Groupage - %s %d", dest.City, now.Month(), now.Year()),
		Destination: models.Location{
			Company: "hubdispo Groupage",
			City:    dest.City,
			Country: dest.Country,
		},
		Carrier:          g.pick(carriers),
		MaxCapacity:      maxCap,
		CurrentLoad:      load,
		Participants:     participants,
		EstimatedSavings: ConsolidationSavings(participants, load.Weight),
		Shipments:        members,
		Status:           g.pick(groupStatuses),
		DepartureDate:    now.AddDate(0, 0, g.intn(1, 15)),
	}
}
