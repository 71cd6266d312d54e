package views

import (
	"sort"

	"github.com/hubdispo/hubdispo/internal/models"
)

// AlertQuery describes the alerts center filters
type AlertQuery struct {
	Type           string
	Severity       string
	Status         string
	ActionRequired bool
	Limit          int
}

// FilterAlerts filters alerts and orders them critical first, keeping catalog
// order within a severity
func FilterAlerts(alerts []models.Alert, q AlertQuery) ([]models.Alert, error) {
	if err := validatePaging("", 0, q.Limit); err != nil {
		return nil, err
	}

	result := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if (q.Type == "" || a.Type == q.Type) &&
			(q.Severity == "" || a.Severity == q.Severity) &&
			(q.Status == "" || a.Status == q.Status) &&
			(!q.ActionRequired || a.ActionRequired) {
			result = append(result, a)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return models.SeverityRank(result[i].Severity) < models.SeverityRank(result[j].Severity)
	})

	return paginate(result, 0, q.Limit), nil
}
