package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/models/dto/request"
	"gosystembolaget_api/internal/systembolaget/storage/query"
	"gosystembolaget_api/metrics"
	"gosystembolaget_api/pkg/logger"
)

var productColumns = []string{
	"product_id", "product_number", "product_name_bold", "product_name_thin",
	"category", "product_number_short", "producer_name", "supplier_name", "is_kosher",
	"bottle_text_short", "restricted_parcel_quantity", "seal", "is_organic", "is_ethical",
	"ethical_label", "is_web_launch", "sell_start_date", "is_completely_out_of_stock",
	"is_temporary_out_of_stock", "alcohol_percentage", "volume", "price", "country",
	"origin_level1", "origin_level2", "vintage", "sub_category", "product_type", "style",
	"assortment_text", "beverage_description_short", "usage_text", "taste", "assortment",
	"is_manufacturing_country", "recycle_fee", "is_regional_restricted",
	"is_in_store_search_assortment", "is_news", "apk", "apk_recycling", "link",
}

type ProductRepository struct {
	db  *sql.DB
	log logger.Logger
}

func NewProductRepository(db *sql.DB, writer io.Writer) *ProductRepository {
	return &ProductRepository{db: db, log: logger.NewLogger(writer, "[products]")}
}

// ReplaceAll swaps the products table for the given list inside a
// single transaction. Any row-level failure rolls the whole replace
// back, leaving the previous snapshot visible to readers.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	start := time.Now()
	r.log.Log("Starting transaction to insert %d products", len(products))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning products transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return fmt.Errorf("clearing products table: %w", err)
	}

	insertQuery := "INSERT INTO products (" + strings.Join(productColumns, ", ") +
		") VALUES (" + placeholders(len(productColumns)) + ")"
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("preparing products insert: %w", err)
	}
	defer stmt.Close()

	for i := range products {
		p := &products[i]
		_, err := stmt.ExecContext(ctx,
			p.ProductID, p.ProductNumber, p.ProductNameBold, p.ProductNameThin,
			p.Category, p.ProductNumberShort, p.ProducerName, p.SupplierName, p.IsKosher,
			p.BottleTextShort, p.RestrictedParcelQuantity, p.Seal, p.IsOrganic, p.IsEthical,
			p.EthicalLabel, p.IsWebLaunch, p.SellStartDate, p.IsCompletelyOutOfStock,
			p.IsTemporaryOutOfStock, p.AlcoholPercentage, p.Volume, p.Price, p.Country,
			p.OriginLevel1, p.OriginLevel2, p.Vintage, p.SubCategory, p.Type, p.Style,
			p.AssortmentText, p.BeverageDescriptionShort, p.Usage, p.Taste, p.Assortment,
			p.IsManufacturingCountry, p.RecycleFee, p.IsRegionalRestricted,
			p.IsInStoreSearchAssortment, p.IsNews, p.Apk, p.ApkRecycling, p.Link,
		)
		if err != nil {
			return fmt.Errorf("inserting product %s: %w", p.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing products transaction: %w", err)
	}

	r.log.Log("Committed transaction of %d products in %.2f seconds", len(products), time.Since(start).Seconds())
	metrics.RecordTableReplace("products", len(products))
	return nil
}

// SelectFiltered validates the filter, compiles it and returns the
// matching product rows.
func (r *ProductRepository) SelectFiltered(ctx context.Context, filter *request.ProductFilter) ([]models.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	sqlText, args := query.Build(filter)
	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, filter.Count)
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ProductID, &p.ProductNumber, &p.ProductNameBold, &p.ProductNameThin,
			&p.Category, &p.ProductNumberShort, &p.ProducerName, &p.SupplierName, &p.IsKosher,
			&p.BottleTextShort, &p.RestrictedParcelQuantity, &p.Seal, &p.IsOrganic, &p.IsEthical,
			&p.EthicalLabel, &p.IsWebLaunch, &p.SellStartDate, &p.IsCompletelyOutOfStock,
			&p.IsTemporaryOutOfStock, &p.AlcoholPercentage, &p.Volume, &p.Price, &p.Country,
			&p.OriginLevel1, &p.OriginLevel2, &p.Vintage, &p.SubCategory, &p.Type, &p.Style,
			&p.AssortmentText, &p.BeverageDescriptionShort, &p.Usage, &p.Taste, &p.Assortment,
			&p.IsManufacturingCountry, &p.RecycleFee, &p.IsRegionalRestricted,
			&p.IsInStoreSearchAssortment, &p.IsNews, &p.Apk, &p.ApkRecycling, &p.Link,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func placeholders(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "$%d", i)
	}
	return sb.String()
}
