package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/parquet-go/parquet-go"
)

// Parquet file names inside the export directory
const (
	ShipmentsFile      = "shipments.parquet"
	ConsolidationsFile = "consolidations.parquet"
	AlertsFile         = "alerts.parquet"
)

// ShipmentRow is the flat parquet layout of a shipment. Times are unix millis.
type ShipmentRow struct {
	ID                 string  `parquet:"id"`
	TrackingNumber     string  `parquet:"tracking_number"`
	OriginCompany      string  `parquet:"origin_company"`
	OriginCity         string  `parquet:"origin_city"`
	DestinationCompany string  `parquet:"destination_company"`
	DestinationCity    string  `parquet:"destination_city"`
	DestinationCountry string  `parquet:"destination_country"`
	Carrier            string  `parquet:"carrier"`
	ServiceTier        string  `parquet:"service_tier"`
	WeightKg           float64 `parquet:"weight_kg"`
	LengthCm           int32   `parquet:"length_cm"`
	WidthCm            int32   `parquet:"width_cm"`
	HeightCm           int32   `parquet:"height_cm"`
	ValueEUR           float64 `parquet:"value_eur"`
	ShippingCostEUR    float64 `parquet:"shipping_cost_eur"`
	Status             string  `parquet:"status"`
	Priority           string  `parquet:"priority"`
	CreatedAt          int64   `parquet:"created_at"`
	EstimatedDelivery  int64   `parquet:"estimated_delivery"`
	LastUpdate         int64   `parquet:"last_update"`
	ConsolidationGroup string  `parquet:"consolidation_group,optional"`
	CustomsStatus      string  `parquet:"customs_status,optional"`
	Documents          string  `parquet:"documents"`
}

// ConsolidationRow is the flat parquet layout of a consolidation group
type ConsolidationRow struct {
	ID                 string  `parquet:"id"`
	Name               string  `parquet:"name"`
	DestinationCity    string  `parquet:"destination_city"`
	DestinationCountry string  `parquet:"destination_country"`
	Carrier            string  `parquet:"carrier"`
	MaxWeightKg        float64 `parquet:"max_weight_kg"`
	MaxVolumeM3        float64 `parquet:"max_volume_m3"`
	LoadWeightKg       float64 `parquet:"load_weight_kg"`
	LoadVolumeM3       float64 `parquet:"load_volume_m3"`
	Participants       int32   `parquet:"participants"`
	EstimatedSavings   float64 `parquet:"estimated_savings_eur"`
	Shipments          string  `parquet:"shipments"`
	Status             string  `parquet:"status"`
	DepartureDate      int64   `parquet:"departure_date"`
}

// AlertRow is the flat parquet layout of an alert
type AlertRow struct {
	ID               string   `parquet:"id"`
	Type             string   `parquet:"type"`
	Severity         string   `parquet:"severity"`
	Title            string   `parquet:"title"`
	Description      string   `parquet:"description"`
	ShipmentID       string   `parquet:"shipment_id,optional"`
	ConsolidationID  string   `parquet:"consolidation_id,optional"`
	Suggestions      string   `parquet:"suggestions"`
	EstimatedSavings *float64 `parquet:"estimated_savings_eur,optional"`
	EstimatedDelay   *int32   `parquet:"estimated_delay_hours,optional"`
	ActionRequired   bool     `parquet:"action_required"`
	Status           string   `parquet:"status"`
	CreatedAt        int64    `parquet:"created_at"`
}

// listSep joins list columns; none of the generated values contain it
const listSep = "|"

func shipmentRows(shipments []models.Shipment) []ShipmentRow {
	rows := make([]ShipmentRow, 0, len(shipments))
	for _, s := range shipments {
		rows = append(rows, ShipmentRow{
			ID:                 s.ID,
			TrackingNumber:     s.TrackingNumber,
			OriginCompany:      s.Origin.Company,
			OriginCity:         s.Origin.City,
			DestinationCompany: s.Destination.Company,
			DestinationCity:    s.Destination.City,
			DestinationCountry: s.Destination.Country,
			Carrier:            s.Carrier,
			ServiceTier:        s.ServiceTier,
			WeightKg:           s.Weight,
			LengthCm:           int32(s.Dimensions.Length),
			WidthCm:            int32(s.Dimensions.Width),
			HeightCm:           int32(s.Dimensions.Height),
			ValueEUR:           s.Value,
			ShippingCostEUR:    s.ShippingCost,
			Status:             s.Status,
			Priority:           s.Priority,
			CreatedAt:          s.CreatedAt.UnixMilli(),
			EstimatedDelivery:  s.EstimatedDelivery.UnixMilli(),
			LastUpdate:         s.LastUpdate.UnixMilli(),
			ConsolidationGroup: s.ConsolidationGroup,
			CustomsStatus:      s.CustomsStatus,
			Documents:          strings.Join(s.Documents, listSep),
		})
	}
	return rows
}

func consolidationRows(groups []models.ConsolidationGroup) []ConsolidationRow {
	rows := make([]ConsolidationRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, ConsolidationRow{
			ID:                 g.ID,
			Name:               g.Name,
			DestinationCity:    g.Destination.City,
			DestinationCountry: g.Destination.Country,
			Carrier:            g.Carrier,
			MaxWeightKg:        g.MaxCapacity.Weight,
			MaxVolumeM3:        g.MaxCapacity.Volume,
			LoadWeightKg:       g.CurrentLoad.Weight,
			LoadVolumeM3:       g.CurrentLoad.Volume,
			Participants:       int32(g.Participants),
			EstimatedSavings:   g.EstimatedSavings,
			Shipments:          strings.Join(g.Shipments, listSep),
			Status:             g.Status,
			DepartureDate:      g.DepartureDate.UnixMilli(),
		})
	}
	return rows
}

func alertRows(alerts []models.Alert) []AlertRow {
	rows := make([]AlertRow, 0, len(alerts))
	for _, a := range alerts {
		row := AlertRow{
			ID:               a.ID,
			Type:             a.Type,
			Severity:         a.Severity,
			Title:            a.Title,
			Description:      a.Description,
			ShipmentID:       a.ShipmentID,
			ConsolidationID:  a.ConsolidationID,
			Suggestions:      strings.Join(a.Suggestions, listSep),
			EstimatedSavings: a.EstimatedSavings,
			ActionRequired:   a.ActionRequired,
			Status:           a.Status,
			CreatedAt:        a.CreatedAt.UnixMilli(),
		}
		if a.EstimatedDelay != nil {
			d := int32(*a.EstimatedDelay)
			row.EstimatedDelay = &d
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteParquet writes one parquet file per collection into dir
func WriteParquet(dir string, ds *synth.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}

	if err := writeParquetFile(filepath.Join(dir, ShipmentsFile), shipmentRows(ds.Shipments)); err != nil {
		return err
	}
	if err := writeParquetFile(filepath.Join(dir, ConsolidationsFile), consolidationRows(ds.Groups)); err != nil {
		return err
	}
	return writeParquetFile(filepath.Join(dir, AlertsFile), alertRows(ds.Alerts))
}

func writeParquetFile[T any](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}
	return nil
}
