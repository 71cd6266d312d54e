package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"golang.org/x/sync/errgroup"
)

// execer is the part of *sql.Tx the insert helpers need
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const insertShipmentSQL = `INSERT INTO hd_shipments (
	id, tracking_number, origin_company, origin_city, origin_country,
	destination_company, destination_city, destination_country, carrier, service_tier,
	weight, length_cm, width_cm, height_cm, value, shipping_cost, status, priority,
	created_at, estimated_delivery, last_update, consolidation_group, customs_status, documents
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertConsolidationSQL = `INSERT INTO hd_consolidation_groups (
	id, name, destination_city, destination_country, carrier,
	max_weight, max_volume, load_weight, load_volume, participants,
	estimated_savings, shipments, status, departure_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertAlertSQL = `INSERT INTO hd_alerts (
	id, type, severity, title, description, shipment_id, consolidation_id,
	suggestions, estimated_savings, estimated_delay, action_required, status, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SeedResult counts the rows written per table
type SeedResult struct {
	Shipments      int
	Consolidations int
	Alerts         int
}

// txn is the part of *sql.Tx seeding needs
type txn interface {
	execer
	Commit() error
	Rollback() error
}

type beginFunc func(ctx context.Context) (txn, error)

// SeedDataset replaces the table contents with ds. Each table is cleared and
// refilled in its own transaction, so a failed table keeps its previous rows.
// The three run concurrently.
func (db *DB) SeedDataset(ctx context.Context, ds *synth.Dataset) (SeedResult, error) {
	begin := func(ctx context.Context) (txn, error) {
		return db.BeginTx(ctx, nil)
	}
	return seedTables(ctx, begin, db.dialect, ds)
}

func seedTables(ctx context.Context, begin beginFunc, d dialect, ds *synth.Dataset) (SeedResult, error) {
	var result SeedResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return inTx(gctx, begin, ShipmentsTable, func(tx execer) error {
			n, err := insertShipments(gctx, tx, d, ds.Shipments)
			result.Shipments = n
			return err
		})
	})
	g.Go(func() error {
		return inTx(gctx, begin, ConsolidationsTable, func(tx execer) error {
			n, err := insertConsolidations(gctx, tx, d, ds.Groups)
			result.Consolidations = n
			return err
		})
	})
	g.Go(func() error {
		return inTx(gctx, begin, AlertsTable, func(tx execer) error {
			n, err := insertAlerts(gctx, tx, d, ds.Alerts)
			result.Alerts = n
			return err
		})
	})

	if err := g.Wait(); err != nil {
		return SeedResult{}, err
	}
	return result, nil
}

// inTx clears table and runs fn in one transaction
func inTx(ctx context.Context, begin beginFunc, table string, fn func(tx execer) error) error {
	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

func insertShipments(ctx context.Context, tx execer, d dialect, shipments []models.Shipment) (int, error) {
	query := d.rebind(insertShipmentSQL)
	for i, s := range shipments {
		docs, err := json.Marshal(s.Documents)
		if err != nil {
			return i, fmt.Errorf("failed to encode documents of %s: %w", s.ID, err)
		}
		_, err = tx.ExecContext(ctx, query,
			s.ID, s.TrackingNumber, s.Origin.Company, s.Origin.City, s.Origin.Country,
			s.Destination.Company, s.Destination.City, s.Destination.Country, s.Carrier, s.ServiceTier,
			s.Weight, s.Dimensions.Length, s.Dimensions.Width, s.Dimensions.Height,
			s.Value, s.ShippingCost, s.Status, s.Priority,
			s.CreatedAt, s.EstimatedDelivery, s.LastUpdate,
			nullString(s.ConsolidationGroup), nullString(s.CustomsStatus), string(docs),
		)
		if err != nil {
			return i, fmt.Errorf("failed to insert shipment %s: %w", s.ID, err)
		}
	}
	return len(shipments), nil
}

func insertConsolidations(ctx context.Context, tx execer, d dialect, groups []models.ConsolidationGroup) (int, error) {
	query := d.rebind(insertConsolidationSQL)
	for i, g := range groups {
		members, err := json.Marshal(g.Shipments)
		if err != nil {
			return i, fmt.Errorf("failed to encode shipments of %s: %w", g.ID, err)
		}
		_, err = tx.ExecContext(ctx, query,
			g.ID, g.Name, g.Destination.City, g.Destination.Country, g.Carrier,
			g.MaxCapacity.Weight, g.MaxCapacity.Volume, g.CurrentLoad.Weight, g.CurrentLoad.Volume,
			g.Participants, g.EstimatedSavings, string(members), g.Status, g.DepartureDate,
		)
		if err != nil {
			return i, fmt.Errorf("failed to insert consolidation group %s: %w", g.ID, err)
		}
	}
	return len(groups), nil
}

func insertAlerts(ctx context.Context, tx execer, d dialect, alerts []models.Alert) (int, error) {
	query := d.rebind(insertAlertSQL)
	for i, a := range alerts {
		suggestions, err := json.Marshal(a.Suggestions)
		if err != nil {
			return i, fmt.Errorf("failed to encode suggestions of %s: %w", a.ID, err)
		}

		var savings sql.NullFloat64
		if a.EstimatedSavings != nil {
			savings = sql.NullFloat64{Float64: *a.EstimatedSavings, Valid: true}
		}
		var delay sql.NullInt64
		if a.EstimatedDelay != nil {
			delay = sql.NullInt64{Int64: int64(*a.EstimatedDelay), Valid: true}
		}

		_, err = tx.ExecContext(ctx, query,
			a.ID, a.Type, a.Severity, a.Title, a.Description,
			nullString(a.ShipmentID), nullString(a.ConsolidationID),
			string(suggestions), savings, delay, a.ActionRequired, a.Status, a.CreatedAt,
		)
		if err != nil {
			return i, fmt.Errorf("failed to insert alert %s: %w", a.ID, err)
		}
	}
	return len(alerts), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
