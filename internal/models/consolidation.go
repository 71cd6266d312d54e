package models

import "time"

// Capacity is a weight (kg) and volume (m3) pair
type Capacity struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// ConsolidationGroup bundles several shippers' parcels bound for one destination
type ConsolidationGroup struct {
	ID               string    `json:"id" yaml:"id" db:"id"`
	Name             string    `json:"name" yaml:"name" db:"name"`
	Destination      Location  `json:"destination" yaml:"destination"`
	Carrier          string    `json:"carrier" yaml:"carrier" db:"carrier"`
	MaxCapacity      Capacity  `json:"maxCapacity" yaml:"maxCapacity"`
	CurrentLoad      Capacity  `json:"currentLoad" yaml:"currentLoad"`
	Participants     int       `json:"participants" yaml:"participants" db:"participants"`
	EstimatedSavings float64   `json:"estimatedSavings" yaml:"estimatedSavings" db:"estimated_savings"`
	Shipments        []string  `json:"shipments" yaml:"shipments" db:"shipments"`
	Status           string    `json:"status" yaml:"status" db:"status"`
	DepartureDate    time.Time `json:"departureDate" yaml:"departureDate" db:"departure_date"`
}

// Consolidation group statuses
const (
	GroupStatusOpen      = "open"
	GroupStatusFull      = "full"
	GroupStatusInTransit = "in_transit"
	GroupStatusDelivered = "delivered"
)

var GroupStatuses = []string{GroupStatusOpen, GroupStatusFull, GroupStatusInTransit, GroupStatusDelivered}

// MaxLoadRatio caps the generated load of a group relative to its capacity
const MaxLoadRatio = 0.8
