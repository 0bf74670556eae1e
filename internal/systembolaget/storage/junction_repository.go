package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/metrics"
	"gosystembolaget_api/pkg/logger"
)

// A pair is only inserted when both parents exist, so a dangling
// reference never aborts the surrounding transaction the way a raw
// foreign-key violation would in Postgres. Duplicate pairs collapse
// on the primary key.
const insertJunctionQuery = `
	INSERT INTO sites_products (product_key, site_key)
	SELECT $1, $2
	WHERE EXISTS (SELECT 1 FROM products WHERE product_id = $1)
	  AND EXISTS (SELECT 1 FROM sites WHERE site_id = $2)
	ON CONFLICT DO NOTHING`

type JunctionRepository struct {
	db  *sql.DB
	log logger.Logger
}

func NewJunctionRepository(db *sql.DB, writer io.Writer) *JunctionRepository {
	return &JunctionRepository{db: db, log: logger.NewLogger(writer, "[junction]")}
}

// Rebuild replaces the junction table from the availability mapping.
// Pairs whose product or site was dropped upstream are skipped and
// counted; the transaction still commits.
func (r *JunctionRepository) Rebuild(ctx context.Context, availability []models.SiteAvailability) (inserted, skipped int, err error) {
	start := time.Now()
	r.log.Log("Starting transaction to rebuild junctions for %d sites", len(availability))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning junction transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sites_products"); err != nil {
		return 0, 0, fmt.Errorf("clearing junction table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertJunctionQuery)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing junction insert: %w", err)
	}
	defer stmt.Close()

	for _, site := range availability {
		for _, ref := range site.Products {
			res, err := stmt.ExecContext(ctx, ref.ProductID, site.SiteID)
			if err != nil {
				return 0, 0, fmt.Errorf("inserting junction (%s, %s): %w", ref.ProductID, site.SiteID, err)
			}
			affected, _ := res.RowsAffected()
			if affected == 0 {
				r.logSkip(ref.ProductID, site.SiteID)
				skipped++
				continue
			}
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing junction transaction: %w", err)
	}

	r.log.Log("Committed transaction of %d junctions (%d skipped) in %.2f seconds",
		inserted, skipped, time.Since(start).Seconds())
	metrics.RecordTableReplace("sites_products", inserted)
	metrics.RecordJunctionSkips(skipped)
	return inserted, skipped, nil
}

func (r *JunctionRepository) logSkip(productID, siteID string) {
	r.log.Log("Skipped junction pair product=%s site=%s (no matching parent row)", productID, siteID)
}
