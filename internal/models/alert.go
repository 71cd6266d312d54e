package models

import "time"

// Alert is an operational notice shown in the alerts center
type Alert struct {
	ID               string    `json:"id" yaml:"id" db:"id"`
	Type             string    `json:"type" yaml:"type" db:"type"`
	Severity         string    `json:"severity" yaml:"severity" db:"severity"`
	Title            string    `json:"title" yaml:"title" db:"title"`
	Description      string    `json:"description" yaml:"description" db:"description"`
	ShipmentID       string    `json:"shipmentId,omitempty" yaml:"shipmentId,omitempty" db:"shipment_id"`
	ConsolidationID  string    `json:"consolidationId,omitempty" yaml:"consolidationId,omitempty" db:"consolidation_id"`
	Suggestions      []string  `json:"suggestions" yaml:"suggestions" db:"suggestions"`
	EstimatedSavings *float64  `json:"estimatedSavings,omitempty" yaml:"estimatedSavings,omitempty" db:"estimated_savings"`
	EstimatedDelay   *int      `json:"estimatedDelay,omitempty" yaml:"estimatedDelay,omitempty" db:"estimated_delay"` // hours
	ActionRequired   bool      `json:"actionRequired" yaml:"actionRequired" db:"action_required"`
	Status           string    `json:"status" yaml:"status" db:"status"`
	CreatedAt        time.Time `json:"createdAt" yaml:"createdAt" db:"created_at"`
}

// Alert types
const (
	AlertTypeDelay         = "delay"
	AlertTypeCustoms       = "customs"
	AlertTypeConsolidation = "consolidation"
	AlertTypeDocument      = "document"
	AlertTypeCapacity      = "capacity"
	AlertTypeWeather       = "weather"
	AlertTypeCost          = "cost"
	AlertTypeRoute         = "route"
)

// Alert severities, lowest first
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityRank orders severities so that critical sorts first
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// Alert statuses
const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)
