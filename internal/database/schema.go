package database

import (
	"context"
	"fmt"
)

// Table names
const (
	ShipmentsTable      = "hd_shipments"
	ConsolidationsTable = "hd_consolidation_groups"
	AlertsTable         = "hd_alerts"
)

// Consolidation labels and group member lists are kept as plain columns with
// no foreign keys: the generated data does not guarantee they resolve.
var tableBodies = []string{
	`CREATE TABLE IF NOT EXISTS hd_shipments (
	    id VARCHAR(16) PRIMARY KEY,
	    tracking_number VARCHAR(32) NOT NULL,
	    origin_company VARCHAR(128) NOT NULL,
	    origin_city VARCHAR(64) NOT NULL,
	    origin_country VARCHAR(64) NOT NULL,
	    destination_company VARCHAR(128) NOT NULL,
	    destination_city VARCHAR(64) NOT NULL,
	    destination_country VARCHAR(64) NOT NULL,
	    carrier VARCHAR(64) NOT NULL,
	    service_tier VARCHAR(32) NOT NULL,
	    weight DOUBLE PRECISION NOT NULL,
	    length_cm INT NOT NULL,
	    width_cm INT NOT NULL,
	    height_cm INT NOT NULL,
	    value DOUBLE PRECISION NOT NULL,
	    shipping_cost DOUBLE PRECISION NOT NULL,
	    status VARCHAR(32) NOT NULL,
	    priority VARCHAR(16) NOT NULL,
	    created_at TIMESTAMP NOT NULL,
	    estimated_delivery TIMESTAMP NOT NULL,
	    last_update TIMESTAMP NOT NULL,
	    consolidation_group VARCHAR(16),
	    customs_status VARCHAR(32),
	    documents TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hd_consolidation_groups (
	    id VARCHAR(16) PRIMARY KEY,
	    name VARCHAR(128) NOT NULL,
	    destination_city VARCHAR(64) NOT NULL,
	    destination_country VARCHAR(64) NOT NULL,
	    carrier VARCHAR(64) NOT NULL,
	    max_weight DOUBLE PRECISION NOT NULL,
	    max_volume DOUBLE PRECISION NOT NULL,
	    load_weight DOUBLE PRECISION NOT NULL,
	    load_volume DOUBLE PRECISION NOT NULL,
	    participants INT NOT NULL,
	    estimated_savings DOUBLE PRECISION NOT NULL,
	    shipments TEXT NOT NULL,
	    status VARCHAR(32) NOT NULL,
	    departure_date TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hd_alerts (
	    id VARCHAR(16) PRIMARY KEY,
	    type VARCHAR(32) NOT NULL,
	    severity VARCHAR(16) NOT NULL,
	    title VARCHAR(255) NOT NULL,
	    description TEXT NOT NULL,
	    shipment_id VARCHAR(32),
	    consolidation_id VARCHAR(32),
	    suggestions TEXT NOT NULL,
	    estimated_savings DOUBLE PRECISION,
	    estimated_delay INT,
	    action_required BOOLEAN NOT NULL,
	    status VARCHAR(16) NOT NULL,
	    created_at TIMESTAMP NOT NULL
	)`,
}

var allTables = []string{AlertsTable, ConsolidationsTable, ShipmentsTable}

func (d dialect) schemaStatements() []string {
	statements := make([]string, 0, len(tableBodies))
	for _, body := range tableBodies {
		statements = append(statements, d.createTable(body))
	}
	return statements
}

// SetupSchema creates the fleet tables
func (db *DB) SetupSchema(ctx context.Context) error {
	for _, stmt := range db.dialect.schemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// DropSchema removes all fleet tables
func (db *DB) DropSchema(ctx context.Context) error {
	for _, table := range allTables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}
