package synth

import (
	"fmt"
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
)

// Counts sizes each collection of a dataset
type Counts struct {
	Shipments int `mapstructure:"shipments"`
	Groups    int `mapstructure:"groups"`
	Alerts    int `mapstructure:"alerts"`
}

// DefaultCounts mirrors the sizes the dashboard was designed around
func DefaultCounts() Counts {
	return Counts{Shipments: 50, Groups: 8, Alerts: AlertCatalogSize}
}

// Dataset holds the three collections, built once and read-only afterwards
type Dataset struct {
	GeneratedAt time.Time                   `json:"generatedAt" yaml:"generatedAt"`
	Shipments   []models.Shipment           `json:"shipments" yaml:"shipments"`
	Groups      []models.ConsolidationGroup `json:"consolidationGroups" yaml:"consolidationGroups"`
	Alerts      []models.Alert              `json:"alerts" yaml:"alerts"`
}

// Build generates a complete dataset from g
func Build(g *Generator, counts Counts) (*Dataset, error) {
	shipments, err := g.Shipments(counts.Shipments)
	if err != nil {
		return nil, fmt.Errorf("failed to generate shipments: %w", err)
	}

	groups, err := g.ConsolidationGroups(counts.Groups)
	if err != nil {
		return nil, fmt.Errorf("failed to generate consolidation groups: %w", err)
	}

	return &Dataset{
		GeneratedAt: g.Now(),
		Shipments:   shipments,
		Groups:      groups,
		Alerts:      g.Alerts(counts.Alerts),
	}, nil
}

// Shipment looks up a shipment by ID
func (d *Dataset) Shipment(id string) (models.Shipment, bool) {
	for _, s := range d.Shipments {
		if s.ID == id {
			return s, true
		}
	}
	return models.Shipment{}, false
}

// Group looks up a consolidation group by ID
func (d *Dataset) Group(id string) (models.ConsolidationGroup, bool) {
	for _, g := range d.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.ConsolidationGroup{}, false
}
