package models

import (
	"time"
)

// Location is one end of a shipment route
type Location struct {
	Company string `json:"company" yaml:"company"`
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
}

// Dimensions of a parcel in centimetres
type Dimensions struct {
	Length int `json:"length" yaml:"length"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Volume returns the parcel volume in cubic metres
func (d Dimensions) Volume() float64 {
	return float64(d.Length*d.Width*d.Height) / 1_000_000
}

// Shipment represents a single synthesized parcel moving out of Belgium
type Shipment struct {
	ID                 string     `json:"id" yaml:"id" db:"id"`
	TrackingNumber     string     `json:"trackingNumber" yaml:"trackingNumber" db:"tracking_number"`
	Origin             Location   `json:"origin" yaml:"origin"`
	Destination        Location   `json:"destination" yaml:"destination"`
	Carrier            string     `json:"carrier" yaml:"carrier" db:"carrier"`
	ServiceTier        string     `json:"serviceTier" yaml:"serviceTier" db:"service_tier"`
	Weight             float64    `json:"weight" yaml:"weight" db:"weight"` // kg
	Dimensions         Dimensions `json:"dimensions" yaml:"dimensions"`
	Value              float64    `json:"value" yaml:"value" db:"value"` // EUR
	ShippingCost       float64    `json:"shippingCost" yaml:"shippingCost" db:"shipping_cost"`
	Status             string     `json:"status" yaml:"status" db:"status"`
	Priority           string     `json:"priority" yaml:"priority" db:"priority"`
	CreatedAt          time.Time  `json:"createdAt" yaml:"createdAt" db:"created_at"`
	EstimatedDelivery  time.Time  `json:"estimatedDelivery" yaml:"estimatedDelivery" db:"estimated_delivery"`
	LastUpdate         time.Time  `json:"lastUpdate" yaml:"lastUpdate" db:"last_update"`
	ConsolidationGroup string     `json:"consolidationGroup,omitempty" yaml:"consolidationGroup,omitempty" db:"consolidation_group"`
	CustomsStatus      string     `json:"customsStatus,omitempty" yaml:"customsStatus,omitempty" db:"customs_status"`
	Documents          []string   `json:"documents" yaml:"documents" db:"documents"`
}

// Shipment statuses
const (
	ShipmentStatusPending       = "pending"
	ShipmentStatusInTransit     = "in_transit"
	ShipmentStatusCustoms       = "customs"
	ShipmentStatusDelivered     = "delivered"
	ShipmentStatusDelayed       = "delayed"
	ShipmentStatusConsolidating = "consolidating"
)

// ShipmentStatuses lists every shipment status in display order
var ShipmentStatuses = []string{
	ShipmentStatusPending,
	ShipmentStatusInTransit,
	ShipmentStatusCustoms,
	ShipmentStatusDelivered,
	ShipmentStatusDelayed,
	ShipmentStatusConsolidating,
}

// Shipment priorities
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// Customs statuses
const (
	CustomsPending  = "pending"
	CustomsInReview = "in_review"
	CustomsCleared  = "cleared"
	CustomsRejected = "rejected"
)

var CustomsStatuses = []string{CustomsPending, CustomsInReview, CustomsCleared, CustomsRejected}

// Canonical shipping documents
const (
	DocCommercialInvoice   = "commercial_invoice"
	DocPackingList         = "packing_list"
	DocCertificateOfOrigin = "certificate_of_origin"
)

var CanonicalDocuments = []string{DocCommercialInvoice, DocPackingList, DocCertificateOfOrigin}
