package storage

import (
	"database/sql"
	"fmt"
	"log"
)

// The three table migrations are idempotent and run on every process
// start. The junction table references both parents with cascading
// delete, so the replace-on-refresh deletes clean it implicitly.

type ProductsTable struct{}

func (m *ProductsTable) UpMigration(db *sql.DB) error {
	log.Println("Creating products table")
	query := `
		CREATE TABLE IF NOT EXISTS products (
			product_id VARCHAR PRIMARY KEY,
			product_number TEXT,
			product_name_bold TEXT,
			product_name_thin TEXT,
			category TEXT,
			product_number_short TEXT,
			producer_name TEXT,
			supplier_name TEXT,
			is_kosher BOOLEAN NOT NULL,
			bottle_text_short TEXT,
			restricted_parcel_quantity INT NOT NULL,
			seal TEXT,
			is_organic BOOLEAN NOT NULL,
			is_ethical BOOLEAN NOT NULL,
			ethical_label TEXT,
			is_web_launch BOOLEAN NOT NULL,
			sell_start_date TEXT,
			is_completely_out_of_stock BOOLEAN NOT NULL,
			is_temporary_out_of_stock BOOLEAN NOT NULL,
			alcohol_percentage DOUBLE PRECISION NOT NULL,
			volume DOUBLE PRECISION NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			country TEXT,
			origin_level1 TEXT,
			origin_level2 TEXT,
			vintage INT NOT NULL,
			sub_category TEXT,
			product_type TEXT,
			style TEXT,
			assortment_text TEXT,
			beverage_description_short TEXT,
			usage_text TEXT,
			taste TEXT,
			assortment TEXT,
			is_manufacturing_country BOOLEAN NOT NULL,
			recycle_fee DOUBLE PRECISION NOT NULL,
			is_regional_restricted BOOLEAN NOT NULL,
			is_in_store_search_assortment TEXT,
			is_news BOOLEAN NOT NULL,
			apk DOUBLE PRECISION NOT NULL,
			apk_recycling DOUBLE PRECISION NOT NULL,
			link TEXT NOT NULL,
			ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	log.Println("Products table created")
	return nil
}

type SitesTable struct{}

func (m *SitesTable) UpMigration(db *sql.DB) error {
	log.Println("Creating sites table")
	query := `
		CREATE TABLE IF NOT EXISTS sites (
			site_id VARCHAR PRIMARY KEY,
			is_tasting_store BOOLEAN,
			alias TEXT,
			address TEXT,
			display_name TEXT,
			postal_code TEXT,
			city TEXT,
			county TEXT,
			country TEXT,
			is_store BOOLEAN,
			is_agent BOOLEAN,
			is_active_for_agent_order BOOLEAN,
			phone TEXT,
			email TEXT,
			services TEXT,
			depot TEXT,
			name TEXT
		)`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create sites table: %w", err)
	}
	log.Println("Sites table created")
	return nil
}

type JunctionTable struct{}

func (m *JunctionTable) UpMigration(db *sql.DB) error {
	log.Println("Creating sites_products junction table")
	query := `
		CREATE TABLE IF NOT EXISTS sites_products (
			product_key VARCHAR REFERENCES products(product_id) ON DELETE CASCADE,
			site_key VARCHAR REFERENCES sites(site_id) ON DELETE CASCADE,
			PRIMARY KEY (product_key, site_key)
		)`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create sites_products table: %w", err)
	}
	log.Println("Junction table created")
	return nil
}
