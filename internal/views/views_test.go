package views

import (
	"math"
	"testing"
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func testShipments() []models.Shipment {
	return []models.Shipment{
		{
			ID: "SHP-000001", TrackingNumber: "HDAAAA000001",
			Origin:      models.Location{City: "Brussels", Company: "Brasserie Van Damme"},
			Destination: models.Location{City: "Paris", Country: "France", Company: "Paris Trading"},
			Carrier:     "DHL Freight", Status: models.ShipmentStatusPending, Priority: models.PriorityHigh,
			Value: 1200, Weight: 10, ShippingCost: 144, CreatedAt: day0.AddDate(0, 0, 3),
		},
		{
			ID: "SHP-000002", TrackingNumber: "HDBBBB000002",
			Origin:      models.Location{City: "Antwerp", Company: "Antwerp Diamond Trading"},
			Destination: models.Location{City: "Berlin", Country: "Germany", Company: "Berlin Import Co."},
			Carrier:     "DB Schenker", Status: models.ShipmentStatusInTransit, Priority: models.PriorityLow,
			Value: 300, Weight: 40, ShippingCost: 486, CreatedAt: day0.AddDate(0, 0, 1),
			ConsolidationGroup: "CONS-002", CustomsStatus: models.CustomsPending,
		},
		{
			ID: "SHP-000003", TrackingNumber: "HDCCCC000003",
			Origin:      models.Location{City: "Ghent", Company: "Ghent Textile Works"},
			Destination: models.Location{City: "Amsterdam", Country: "Netherlands", Company: "Amsterdam Distribution"},
			Carrier:     "GLS Belgium", Status: models.ShipmentStatusPending, Priority: models.PriorityHigh,
			Value: 4500, Weight: 2, ShippingCost: 114, CreatedAt: day0.AddDate(0, 0, 2),
			ConsolidationGroup: "CONS-002",
		},
		{
			ID: "SHP-000004", TrackingNumber: "HDDDDD000004",
			Origin:      models.Location{City: "Liège", Company: "Liège Steel Components"},
			Destination: models.Location{City: "Paris", Country: "France", Company: "Paris Retail Group"},
			Carrier:     "DHL Freight", Status: models.ShipmentStatusCustoms, Priority: models.PriorityUrgent,
			Value: 800, Weight: 25, ShippingCost: 316, CreatedAt: day0,
		},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func shipmentID(s models.Shipment) string { return s.ID }

func TestFilterShipments(t *testing.T) {
	tests := []struct {
		name  string
		query ShipmentQuery
		want  []string
	}{
		{"no filters keeps order", ShipmentQuery{}, []string{"SHP-000001", "SHP-000002", "SHP-000003", "SHP-000004"}},
		{"status", ShipmentQuery{Status: models.ShipmentStatusPending}, []string{"SHP-000001", "SHP-000003"}},
		{"priority", ShipmentQuery{Priority: models.PriorityUrgent}, []string{"SHP-000004"}},
		{"group", ShipmentQuery{ConsolidationGroup: "CONS-002"}, []string{"SHP-000002", "SHP-000003"}},
		{"search is case insensitive", ShipmentQuery{Search: "  PARIS "}, []string{"SHP-000001", "SHP-000004"}},
		{"search tracking number", ShipmentQuery{Search: "hdcccc"}, []string{"SHP-000003"}},
		{"search carrier", ShipmentQuery{Search: "schenker"}, []string{"SHP-000002"}},
		{"combined filters", ShipmentQuery{Status: models.ShipmentStatusPending, Search: "amsterdam"}, []string{"SHP-000003"}},
		{"no match", ShipmentQuery{Search: "tokyo"}, []string{}},
		{"sort by value asc", ShipmentQuery{SortBy: SortValue}, []string{"SHP-000002", "SHP-000004", "SHP-000001", "SHP-000003"}},
		{"sort by value desc", ShipmentQuery{SortBy: SortValue, Order: Desc}, []string{"SHP-000003", "SHP-000001", "SHP-000004", "SHP-000002"}},
		{"sort by created", ShipmentQuery{SortBy: SortCreatedAt}, []string{"SHP-000004", "SHP-000002", "SHP-000003", "SHP-000001"}},
		{"sort by destination is stable", ShipmentQuery{SortBy: SortDestination}, []string{"SHP-000003", "SHP-000002", "SHP-000001", "SHP-000004"}},
		{"paging", ShipmentQuery{SortBy: SortWeight, Offset: 1, Limit: 2}, []string{"SHP-000001", "SHP-000004"}},
		{"offset past end", ShipmentQuery{Offset: 10}, []string{}},
		{"huge limit", ShipmentQuery{Offset: 1, Limit: math.MaxInt}, []string{"SHP-000002", "SHP-000003", "SHP-000004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterShipments(testShipments(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got, shipmentID))
		})
	}
}

func TestFilterShipments_InvalidQuery(t *testing.T) {
	_, err := FilterShipments(testShipments(), ShipmentQuery{SortBy: "colour"})
	assert.ErrorIs(t, err, ErrUnknownSort)

	_, err = FilterShipments(testShipments(), ShipmentQuery{Order: "sideways"})
	assert.ErrorIs(t, err, ErrUnknownOrder)

	_, err = FilterShipments(testShipments(), ShipmentQuery{Limit: -1})
	assert.ErrorIs(t, err, ErrBadPaging)
}

func TestFilterShipments_DoesNotMutateInput(t *testing.T) {
	input := testShipments()
	before := testShipments()

	_, err := FilterShipments(input, ShipmentQuery{SortBy: SortValue, Order: Desc})
	require.NoError(t, err)
	assert.Equal(t, before, input)
}

func testGroups() []models.ConsolidationGroup {
	return []models.ConsolidationGroup{
		{
			ID: "CONS-001", Name: "Paris Groupage - March 2025", Status: models.GroupStatusOpen,
			Destination:      models.Location{City: "Paris", Country: "France"},
			MaxCapacity:      models.Capacity{Weight: 2000, Volume: 20},
			CurrentLoad:      models.Capacity{Weight: 1000, Volume: 5},
			EstimatedSavings: 2590, DepartureDate: day0.AddDate(0, 0, 5),
		},
		{
			ID: "CONS-002", Name: "Berlin Groupage - March 2025", Status: models.GroupStatusFull,
			Destination:      models.Location{City: "Berlin", Country: "Germany"},
			MaxCapacity:      models.Capacity{Weight: 1000, Volume: 15},
			CurrentLoad:      models.Capacity{Weight: 750, Volume: 10},
			EstimatedSavings: 2100, DepartureDate: day0.AddDate(0, 0, 2),
		},
		{
			ID: "CONS-003", Name: "Madrid Groupage - March 2025", Status: models.GroupStatusOpen,
			Destination:      models.Location{City: "Madrid", Country: "Spain"},
			MaxCapacity:      models.Capacity{Weight: 3000, Volume: 24},
			CurrentLoad:      models.Capacity{Weight: 300, Volume: 3},
			EstimatedSavings: 840, DepartureDate: day0.AddDate(0, 0, 9),
		},
	}
}

func TestFilterGroups(t *testing.T) {
	groupID := func(g models.ConsolidationGroup) string { return g.ID }

	got, err := FilterGroups(testGroups(), GroupQuery{Status: models.GroupStatusOpen})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONS-001", "CONS-003"}, ids(got, groupID))

	got, err = FilterGroups(testGroups(), GroupQuery{Search: "germany"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONS-002"}, ids(got, groupID))

	got, err = FilterGroups(testGroups(), GroupQuery{SortBy: SortLoad, Order: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONS-002", "CONS-001", "CONS-003"}, ids(got, groupID))

	got, err = FilterGroups(testGroups(), GroupQuery{SortBy: SortDeparture, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONS-002"}, ids(got, groupID))

	got, err = FilterGroups(testGroups(), GroupQuery{Offset: 2, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONS-003"}, ids(got, groupID))

	_, err = FilterGroups(testGroups(), GroupQuery{SortBy: "weight"})
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestLoadPercent(t *testing.T) {
	groups := testGroups()
	assert.Equal(t, 50.0, LoadPercent(groups[0]))
	assert.Equal(t, 75.0, LoadPercent(groups[1]))
	assert.Equal(t, 10.0, LoadPercent(groups[2]))
	assert.Equal(t, 0.0, LoadPercent(models.ConsolidationGroup{}))
}

func TestFilterAlerts(t *testing.T) {
	all := synth.Alerts(day0, synth.AlertCatalogSize)
	alertID := func(a models.Alert) string { return a.ID }

	got, err := FilterAlerts(all, AlertQuery{})
	require.NoError(t, err)
	require.Len(t, got, synth.AlertCatalogSize)
	assert.Equal(t, []string{"ALT-002", "ALT-011"}, ids(got[:2], alertID))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, models.SeverityRank(got[i-1].Severity), models.SeverityRank(got[i].Severity))
	}

	got, err = FilterAlerts(all, AlertQuery{Type: models.AlertTypeCustoms})
	require.NoError(t, err)
	assert.Equal(t, []string{"ALT-002", "ALT-008"}, ids(got, alertID))

	got, err = FilterAlerts(all, AlertQuery{ActionRequired: true, Status: models.AlertStatusActive, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, a := range got {
		assert.True(t, a.ActionRequired)
	}

	_, err = FilterAlerts(all, AlertQuery{Limit: -2})
	assert.ErrorIs(t, err, ErrBadPaging)
}

func TestDashboard(t *testing.T) {
	ds := &synth.Dataset{
		Shipments: testShipments(),
		Groups:    testGroups(),
		Alerts:    synth.Alerts(day0, synth.AlertCatalogSize),
	}

	stats := Dashboard(ds)
	assert.Equal(t, 4, stats.TotalShipments)
	assert.Equal(t, 2, stats.ByStatus[models.ShipmentStatusPending])
	assert.Equal(t, 0, stats.ByStatus[models.ShipmentStatusDelivered])
	assert.Equal(t, 1, stats.InTransit)
	assert.Equal(t, 2, stats.AwaitingCustoms)
	assert.Equal(t, 6800.0, stats.TotalValue)
	assert.Equal(t, 1060.0, stats.TotalShippingCost)
	assert.Equal(t, 2, stats.OpenGroups)
	assert.Equal(t, 45.0, stats.AverageGroupLoad)
	assert.Equal(t, 5530.0, stats.PotentialSavings)
	assert.Equal(t, 8, stats.ActiveAlerts)
	assert.Equal(t, 2, stats.CriticalAlerts)
	assert.Equal(t, 5, stats.AlertsNeedingInput)
}

func TestDashboard_EmptyDataset(t *testing.T) {
	stats := Dashboard(&synth.Dataset{})
	assert.Equal(t, 0, stats.TotalShipments)
	assert.Equal(t, 0.0, stats.AverageGroupLoad)
	assert.Len(t, stats.ByStatus, len(models.ShipmentStatuses))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{2, 3, 4, 5}, paginate(items, 1, 0))
	assert.Equal(t, []int{2, 3}, paginate(items, 1, 2))
	assert.Equal(t, []int{4, 5}, paginate(items, 3, 10))
	assert.Equal(t, []int{2, 3, 4, 5}, paginate(items, 1, math.MaxInt))
	assert.Equal(t, []int{}, paginate(items, 5, math.MaxInt))
}
