// Package database creates the landing page schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the tables and
// indexes. Every statement is idempotent.
func (tc *TableCreator) CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.ExecContext(ctx, tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}
	for _, indexSQL := range indexes {
		if _, err := db.ExecContext(ctx, indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// Statements returns the DDL in execution order.
func (tc *TableCreator) Statements() []string {
	out := make([]string, 0, len(tables)+len(indexes))
	out = append(out, tables...)
	return append(out, indexes...)
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS landing_pages (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		meta_title TEXT,
		meta_description TEXT,
		og_image TEXT,
		status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'archived')),
		template_type TEXT,
		target_audience TEXT,
		campaign_source TEXT,
		tracking_code TEXT,
		settings TEXT NOT NULL DEFAULT '{}',
		published_at TIMESTAMP,
		expires_at TIMESTAMP,
		created_by TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS landing_page_components (
		id TEXT PRIMARY KEY,
		landing_page_id TEXT NOT NULL REFERENCES landing_pages(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		config TEXT NOT NULL DEFAULT '{}',
		position INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS component_templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		config TEXT NOT NULL DEFAULT '{}',
		preview_image TEXT,
		is_system BOOLEAN NOT NULL DEFAULT 0,
		created_by TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contact_inquiries (
		id TEXT PRIMARY KEY,
		landing_page_id TEXT NOT NULL REFERENCES landing_pages(id) ON DELETE CASCADE,
		component_id TEXT,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		message TEXT,
		fields TEXT NOT NULL DEFAULT '{}',
		source TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_landing_pages_status ON landing_pages(status)`,
	`CREATE INDEX IF NOT EXISTS idx_landing_pages_expires_at ON landing_pages(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_landing_pages_campaign_source ON landing_pages(campaign_source)`,
	`CREATE INDEX IF NOT EXISTS idx_components_page ON landing_page_components(landing_page_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_component_templates_type ON component_templates(type)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_inquiries_page ON contact_inquiries(landing_page_id, created_at)`,
}
