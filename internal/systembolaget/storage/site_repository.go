package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/metrics"
	"gosystembolaget_api/pkg/logger"
)

var siteColumns = []string{
	"site_id", "is_tasting_store", "alias", "address", "display_name", "postal_code",
	"city", "county", "country", "is_store", "is_agent", "is_active_for_agent_order",
	"phone", "email", "services", "depot", "name",
}

type SiteRepository struct {
	db  *sql.DB
	log logger.Logger
}

func NewSiteRepository(db *sql.DB, writer io.Writer) *SiteRepository {
	return &SiteRepository{db: db, log: logger.NewLogger(writer, "[sites]")}
}

// ReplaceAll swaps the sites table for the given list inside a single
// transaction, independent of the products replacement.
func (r *SiteRepository) ReplaceAll(ctx context.Context, sites []models.Site) error {
	start := time.Now()
	r.log.Log("Starting transaction to insert %d sites", len(sites))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning sites transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sites"); err != nil {
		return fmt.Errorf("clearing sites table: %w", err)
	}

	insertQuery := "INSERT INTO sites (" + strings.Join(siteColumns, ", ") +
		") VALUES (" + placeholders(len(siteColumns)) + ")"
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("preparing sites insert: %w", err)
	}
	defer stmt.Close()

	for i := range sites {
		s := &sites[i]
		_, err := stmt.ExecContext(ctx,
			s.SiteID, s.IsTastingStore, s.Alias, s.Address, s.DisplayName, s.PostalCode,
			s.City, s.County, s.Country, s.IsStore, s.IsAgent, s.IsActiveForAgentOrder,
			s.Phone, s.Email, s.Services, s.Depot, s.Name,
		)
		if err != nil {
			return fmt.Errorf("inserting site %s: %w", s.SiteID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sites transaction: %w", err)
	}

	r.log.Log("Committed transaction of %d sites in %.2f seconds", len(sites), time.Since(start).Seconds())
	metrics.RecordTableReplace("sites", len(sites))
	return nil
}

// SelectStores returns all sites flagged as physical stores.
func (r *SiteRepository) SelectStores(ctx context.Context) ([]models.Site, error) {
	query := "SELECT " + strings.Join(siteColumns, ", ") + " FROM sites WHERE is_store = true"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sites: %w", err)
	}
	defer rows.Close()

	var sites []models.Site
	for rows.Next() {
		var s models.Site
		err := rows.Scan(
			&s.SiteID, &s.IsTastingStore, &s.Alias, &s.Address, &s.DisplayName, &s.PostalCode,
			&s.City, &s.County, &s.Country, &s.IsStore, &s.IsAgent, &s.IsActiveForAgentOrder,
			&s.Phone, &s.Email, &s.Services, &s.Depot, &s.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning site row: %w", err)
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}
