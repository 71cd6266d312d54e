// Package views holds the read-side queries the dashboard screens run over
// the generated dataset. Inputs are never modified; every result is a new slice.
package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hubdispo/hubdispo/internal/models"
)

// Sort directions
const (
	Asc  = "asc"
	Desc = "desc"
)

// Shipment sort keys
const (
	SortCreatedAt         = "created_at"
	SortEstimatedDelivery = "estimated_delivery"
	SortValue             = "value"
	SortWeight            = "weight"
	SortCost              = "cost"
	SortDestination       = "destination"
	SortStatus            = "status"
)

// ShipmentQuery describes a shipment list screen state. Empty fields do not filter.
type ShipmentQuery struct {
	Search             string
	Status             string
	Priority           string
	ConsolidationGroup string
	SortBy             string
	Order              string
	Offset             int
	Limit              int
}

var shipmentLess = map[string]func(a, b models.Shipment) bool{
	SortCreatedAt:         func(a, b models.Shipment) bool { return a.CreatedAt.Before(b.CreatedAt) },
	SortEstimatedDelivery: func(a, b models.Shipment) bool { return a.EstimatedDelivery.Before(b.EstimatedDelivery) },
	SortValue:             func(a, b models.Shipment) bool { return a.Value < b.Value },
	SortWeight:            func(a, b models.Shipment) bool { return a.Weight < b.Weight },
	SortCost:              func(a, b models.Shipment) bool { return a.ShippingCost < b.ShippingCost },
	SortDestination:       func(a, b models.Shipment) bool { return a.Destination.City < b.Destination.City },
	SortStatus:            func(a, b models.Shipment) bool { return a.Status < b.Status },
}

// Validate rejects unknown sort keys, directions and negative paging
func (q ShipmentQuery) Validate() error {
	if q.SortBy != "" {
		if _, ok := shipmentLess[q.SortBy]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSort, q.SortBy)
		}
	}
	return validatePaging(q.Order, q.Offset, q.Limit)
}

// FilterShipments applies q to shipments
func FilterShipments(shipments []models.Shipment, q ShipmentQuery) ([]models.Shipment, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	result := make([]models.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if (q.Status == "" || s.Status == q.Status) &&
			(q.Priority == "" || s.Priority == q.Priority) &&
			(q.ConsolidationGroup == "" || s.ConsolidationGroup == q.ConsolidationGroup) &&
			(search == "" || shipmentMatches(s, search)) {
			result = append(result, s)
		}
	}

	if q.SortBy != "" {
		less := shipmentLess[q.SortBy]
		desc := q.Order == Desc
		sort.SliceStable(result, func(i, j int) bool {
			if desc {
				return less(result[j], result[i])
			}
			return less(result[i], result[j])
		})
	}

	return paginate(result, q.Offset, q.Limit), nil
}

func shipmentMatches(s models.Shipment, search string) bool {
	fields := []string{
		s.ID,
		s.TrackingNumber,
		s.Origin.City,
		s.Origin.Company,
		s.Destination.City,
		s.Destination.Country,
		s.Destination.Company,
		s.Carrier,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
