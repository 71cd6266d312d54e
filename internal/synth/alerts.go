package synth

import (
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
)

// AlertCatalogSize is the number of hand-written alerts
const AlertCatalogSize = 12

// The catalog references hand-written shipment and group IDs, not the
// synthesized ones.
type alertFixture struct {
	alert models.Alert
	age   time.Duration
}

func savings(v float64) *float64 { return &v }
func delay(hours int) *int { return &hours }

var alertCatalog = []alertFixture{
	{age: 25 * time.Minute, alert: models.Alert{
		ID:          "ALT-001",
		Type:        models.AlertTypeDelay,
		Severity:    models.SeverityHigh,
		Title:       "Shipment delayed at Antwerp port",
		Description: "Container congestion at the Port of Antwerp is holding shipment HD-2024-0142 bound for Hamburg.",
		ShipmentID:  "HD-2024-0142",
		Suggestions: []string{
			"Notify the consignee of the revised arrival date",
			"Switch to rail freight via Antwerp-Noord",
			"Request priority unloading from the terminal operator",
		},
		EstimatedDelay: delay(36),
		ActionRequired: true,
		Status:         models.AlertStatusActive,
	}},
	{age: 2 * time.Hour, alert: models.Alert{
		ID:          "ALT-002",
		Type:        models.AlertTypeCustoms,
		Severity:    models.SeverityCritical,
		Title:       "Customs declaration rejected",
		Description: "The DAU for shipment HD-2024-0187 to Zurich was rejected: the EORI number of the exporter is invalid.",
		ShipmentID:  "HD-2024-0187",
		Suggestions: []string{
			"Verify the EORI number in the company profile",
			"Resubmit the DAU with the corrected exporter data",
			"Contact the customs broker in Basel",
		},
		EstimatedDelay: delay(48),
		ActionRequired: true,
		Status:         models.AlertStatusActive,
	}},
	{age: 3 * time.Hour, alert: models.Alert{
		ID:              "ALT-003",
		Type:            models.AlertTypeConsolidation,
		Severity:        models.SeverityMedium,
		Title:           "Consolidation opportunity for Paris",
		Description:     "Three shipments leaving Brussels for Paris this week could join groupage CONS-2024-017.",
		ConsolidationID: "CONS-2024-017",
		Suggestions: []string{
			"Add the pending Paris shipments to the group",
			"Align pickup dates to Thursday",
		},
		EstimatedSavings: savings(185.50),
		ActionRequired:   false,
		Status:           models.AlertStatusActive,
	}},
	{age: 5 * time.Hour, alert: models.Alert{
		ID:          "ALT-004",
		Type:        models.AlertTypeDocument,
		Severity:    models.SeverityHigh,
		Title:       "Missing certificate of origin",
		Description: "Shipment HD-2024-0203 to Oslo requires a certificate of origin for preferential tariff treatment.",
		ShipmentID:  "HD-2024-0203",
		Suggestions: []string{
			"Upload the certificate of origin",
			"Request the certificate from the Chamber of Commerce",
		},
		EstimatedDelay: delay(24),
		ActionRequired: true,
		Status:         models.AlertStatusActive,
	}},
	{age: 8 * time.Hour, alert: models.Alert{
		ID:              "ALT-005",
		Type:            models.AlertTypeCapacity,
		Severity:        models.SeverityMedium,
		Title:           "Groupage to Berlin nearly full",
		Description:     "Consolidation group CONS-2024-009 is at 92% of its weight capacity.",
		ConsolidationID: "CONS-2024-009",
		Suggestions: []string{
			"Open a second groupage for late bookings",
			"Move low-priority parcels to next week's departure",
		},
		ActionRequired: false,
		Status:         models.AlertStatusAcknowledged,
	}},
	{age: 11 * time.Hour, alert: models.Alert{
		ID:          "ALT-006",
		Type:        models.AlertTypeWeather,
		Severity:    models.SeverityHigh,
		Title:       "Storm warning on the A7 corridor",
		Description: "Severe weather in the Rhône valley may slow road freight to Lyon and Marseille for 24 to 48 hours.",
		ShipmentID:  "HD-2024-0219",
		Suggestions: []string{
			"Warn consignees in southern France",
			"Reroute via the A6 and A9 where possible",
		},
		EstimatedDelay: delay(30),
		ActionRequired: false,
		Status:         models.AlertStatusActive,
	}},
	{age: 14 * time.Hour, alert: models.Alert{
		ID:          "ALT-007",
		Type:        models.AlertTypeCost,
		Severity:    models.SeverityLow,
		Title:       "Cheaper carrier available to Amsterdam",
		Description: "GLS Belgium quotes 18% less than the current carrier for standard parcels to Amsterdam.",
		Suggestions: []string{
			"Compare service levels before switching",
			"Renegotiate the current contract",
		},
		EstimatedSavings: savings(240.00),
		ActionRequired:   false,
		Status:           models.AlertStatusActive,
	}},
	{age: 20 * time.Hour, alert: models.Alert{
		ID:          "ALT-008",
		Type:        models.AlertTypeCustoms,
		Severity:    models.SeverityMedium,
		Title:       "Physical inspection scheduled",
		Description: "UK customs selected shipment HD-2024-0231 to London for physical inspection at Dover.",
		ShipmentID:  "HD-2024-0231",
		Suggestions: []string{
			"Make sure the packing list matches the contents",
			"Inform the consignee of the inspection",
		},
		EstimatedDelay: delay(12),
		ActionRequired: false,
		Status:         models.AlertStatusAcknowledged,
	}},
	{age: 26 * time.Hour, alert: models.Alert{
		ID:          "ALT-009",
		Type:        models.AlertTypeRoute,
		Severity:    models.SeverityMedium,
		Title:       "Road closure near Liège",
		Description: "The E40 is closed between Liège and Aachen for works; shipments to Cologne are rerouted via the E42.",
		ShipmentID:  "HD-2024-0244",
		Suggestions: []string{
			"Accept the proposed detour",
			"Shift the pickup to the evening",
		},
		EstimatedDelay: delay(4),
		ActionRequired: false,
		Status:         models.AlertStatusResolved,
	}},
	{age: 30 * time.Hour, alert: models.Alert{
		ID:              "ALT-010",
		Type:            models.AlertTypeConsolidation,
		Severity:        models.SeverityLow,
		Title:           "Merge two groupages to Madrid",
		Description:     "Groups CONS-2024-021 and CONS-2024-024 to Madrid are both under 40% load and depart the same week.",
		ConsolidationID: "CONS-2024-021",
		Suggestions: []string{
			"Merge both groups into a single departure",
			"Keep the earlier departure date",
		},
		EstimatedSavings: savings(410.00),
		ActionRequired:   true,
		Status:           models.AlertStatusActive,
	}},
	{age: 2 * 24 * time.Hour, alert: models.Alert{
		ID:          "ALT-011",
		Type:        models.AlertTypeDelay,
		Severity:    models.SeverityCritical,
		Title:       "Urgent shipment missed its pickup",
		Description: "The carrier did not collect urgent shipment HD-2024-0256 to Milan at the agreed time.",
		ShipmentID:  "HD-2024-0256",
		Suggestions: []string{
			"Book an express courier for today",
			"Open a claim with the carrier",
			"Inform the consignee",
		},
		EstimatedDelay: delay(20),
		ActionRequired: true,
		Status:         models.AlertStatusActive,
	}},
	{age: 3 * 24 * time.Hour, alert: models.Alert{
		ID:          "ALT-012",
		Type:        models.AlertTypeDocument,
		Severity:    models.SeverityLow,
		Title:       "Commercial invoice template outdated",
		Description: "Your commercial invoice template still lists the old VAT number of your company.",
		Suggestions: []string{
			"Update the invoice template in the settings",
		},
		ActionRequired: false,
		Status:         models.AlertStatusResolved,
	}},
}

// Alerts returns the first count catalog entries, stamped relative to now.
// Counts above the catalog size return the whole catalog.
func Alerts(now time.Time, count int) []models.Alert {
	if count <= 0 {
		return []models.Alert{}
	}
	if count > len(alertCatalog) {
		count = len(alertCatalog)
	}

	alerts := make([]models.Alert, 0, count)
	for _, f := range alertCatalog[:count] {
		alerts = append(alerts, cloneAlert(f.alert, now.Add(-f.age)))
	}
	return alerts
}

// Alerts slices the catalog relative to the generator clock
func (g *Generator) Alerts(count int) []models.Alert {
	return Alerts(g.Now(), count)
}

func cloneAlert(a models.Alert, createdAt time.Time) models.Alert {
	a.CreatedAt = createdAt
	a.Suggestions = append([]string(nil), a.Suggestions...)
	if a.EstimatedSavings != nil {
		a.EstimatedSavings = savings(*a.EstimatedSavings)
	}
	if a.EstimatedDelay != nil {
		a.EstimatedDelay = delay(*a.EstimatedDelay)
	}
	return a
}
