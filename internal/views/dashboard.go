package views

import (
	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/shopspring/decimal"
)

// Stats are the headline figures of the dashboard
type Stats struct {
	TotalShipments     int            `json:"totalShipments"`
	ByStatus           map[string]int `json:"byStatus"`
	InTransit          int            `json:"inTransit"`
	AwaitingCustoms    int            `json:"awaitingCustoms"`
	TotalValue         float64        `json:"totalValue"`
	TotalShippingCost  float64        `json:"totalShippingCost"`
	OpenGroups         int            `json:"openGroups"`
	AverageGroupLoad   float64        `json:"averageGroupLoad"`
	PotentialSavings   float64        `json:"potentialSavings"`
	ActiveAlerts       int            `json:"activeAlerts"`
	CriticalAlerts     int            `json:"criticalAlerts"`
	AlertsNeedingInput int            `json:"alertsNeedingInput"`
}

// Dashboard aggregates the dataset into Stats
func Dashboard(ds *synth.Dataset) Stats {
	stats := Stats{
		TotalShipments: len(ds.Shipments),
		ByStatus:       make(map[string]int, len(models.ShipmentStatuses)),
	}
	for _, status := range models.ShipmentStatuses {
		stats.ByStatus[status] = 0
	}

	value := decimal.Zero
	cost := decimal.Zero
	for _, s := range ds.Shipments {
		stats.ByStatus[s.Status]++
		value = value.Add(decimal.NewFromFloat(s.Value))
		cost = cost.Add(decimal.NewFromFloat(s.ShippingCost))
		if s.Status == models.ShipmentStatusInTransit {
			stats.InTransit++
		}
		if s.Status == models.ShipmentStatusCustoms ||
			s.CustomsStatus == models.CustomsPending || s.CustomsStatus == models.CustomsInReview {
			stats.AwaitingCustoms++
		}
	}
	stats.TotalValue = value.Round(2).InexactFloat64()
	stats.TotalShippingCost = cost.Round(2).InexactFloat64()

	savings := decimal.Zero
	load := decimal.Zero
	for _, g := range ds.Groups {
		if g.Status == models.GroupStatusOpen {
			stats.OpenGroups++
		}
		savings = savings.Add(decimal.NewFromFloat(g.EstimatedSavings))
		load = load.Add(decimal.NewFromFloat(LoadPercent(g)))
	}
	stats.PotentialSavings = savings.Round(2).InexactFloat64()
	if len(ds.Groups) > 0 {
		stats.AverageGroupLoad = load.Div(decimal.NewFromInt(int64(len(ds.Groups)))).Round(1).InexactFloat64()
	}

	for _, a := range ds.Alerts {
		if a.Status != models.AlertStatusActive {
			continue
		}
		stats.ActiveAlerts++
		if a.Severity == models.SeverityCritical {
			stats.CriticalAlerts++
		}
		if a.ActionRequired {
			stats.AlertsNeedingInput++
		}
	}

	return stats
}
