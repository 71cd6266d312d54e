package views

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hubdispo/hubdispo/internal/models"
)

// Consolidation sort keys
const (
	SortDeparture = "departure"
	SortSavings   = "savings"
	SortLoad      = "load"
	SortName      = "name"
)

// GroupQuery describes the consolidation center screen state
type GroupQuery struct {
	Search string
	Status string
	SortBy string
	Order  string
	Offset int
	Limit  int
}

var groupLess = map[string]func(a, b models.ConsolidationGroup) bool{
	SortDeparture: func(a, b models.ConsolidationGroup) bool { return a.DepartureDate.Before(b.DepartureDate) },
	SortSavings:   func(a, b models.ConsolidationGroup) bool { return a.EstimatedSavings < b.EstimatedSavings },
	SortLoad:      func(a, b models.ConsolidationGroup) bool { return LoadPercent(a) < LoadPercent(b) },
	SortName:      func(a, b models.ConsolidationGroup) bool { return a.Name < b.Name },
}

// Validate rejects unknown sort keys, directions and negative paging
func (q GroupQuery) Validate() error {
	if q.SortBy != "" {
		if _, ok := groupLess[q.SortBy]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSort, q.SortBy)
		}
	}
	return validatePaging(q.Order, q.Offset, q.Limit)
}

// FilterGroups applies q to groups
func FilterGroups(groups []models.ConsolidationGroup, q GroupQuery) ([]models.ConsolidationGroup, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	result := make([]models.ConsolidationGroup, 0, len(groups))
	for _, g := range groups {
		if q.Status != "" && g.Status != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(g.ID), search) &&
			!strings.Contains(strings.ToLower(g.Name), search) &&
			!strings.Contains(strings.ToLower(g.Destination.City), search) &&
			!strings.Contains(strings.ToLower(g.Destination.Country), search) {
			continue
		}
		result = append(result, g)
	}

	if q.SortBy != "" {
		less := groupLess[q.SortBy]
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

// LoadPercent is the weight fill rate of a group, one decimal
func LoadPercent(g models.ConsolidationGroup) float64 {
	if g.MaxCapacity.Weight <= 0 {
		return 0
	}
	return math.Round(g.CurrentLoad.Weight/g.MaxCapacity.Weight*1000) / 10
}
