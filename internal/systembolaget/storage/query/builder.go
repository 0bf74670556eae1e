package query

import (
	"fmt"
	"strings"

	"gosystembolaget_api/internal/systembolaget/business/models/dto/request"
)

// ProductColumns is the select list for product rows; its order is the
// scan order used by the products repository.
const ProductColumns = "p.product_id, p.product_number, p.product_name_bold, p.product_name_thin, " +
	"p.category, p.product_number_short, p.producer_name, p.supplier_name, p.is_kosher, " +
	"p.bottle_text_short, p.restricted_parcel_quantity, p.seal, p.is_organic, p.is_ethical, " +
	"p.ethical_label, p.is_web_launch, p.sell_start_date, p.is_completely_out_of_stock, " +
	"p.is_temporary_out_of_stock, p.alcohol_percentage, p.volume, p.price, p.country, " +
	"p.origin_level1, p.origin_level2, p.vintage, p.sub_category, p.product_type, p.style, " +
	"p.assortment_text, p.beverage_description_short, p.usage_text, p.taste, p.assortment, " +
	"p.is_manufacturing_country, p.recycle_fee, p.is_regional_restricted, " +
	"p.is_in_store_search_assortment, p.is_news, p.apk, p.apk_recycling, p.link"

// Build compiles a validated filter into a single bounded, ordered
// SELECT. Caller-supplied values are always emitted as bind arguments,
// never interpolated into the query text.
func Build(f *request.ProductFilter) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, 4)

	args = append(args, f.MaxVolume)
	sb.WriteString("SELECT " + ProductColumns + " FROM products p WHERE p.volume <= $1")

	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&sb, " AND p.category = $%d", len(args))
	}

	// Site filtering is mutually exclusive: an explicit site wins over
	// the any-site existence filter.
	if f.SiteID != "" {
		args = append(args, f.SiteID)
		fmt.Fprintf(&sb, " AND p.product_id IN (SELECT sp.product_key FROM sites_products sp WHERE sp.site_key = $%d)", len(args))
	} else if f.ExistsInStore {
		sb.WriteString(" AND EXISTS (SELECT 1 FROM sites_products sp WHERE sp.product_key = p.product_id)")
	}

	if f.IncludeRecycling {
		sb.WriteString(" ORDER BY p.apk_recycling DESC")
	} else {
		sb.WriteString(" ORDER BY p.apk DESC")
	}

	args = append(args, f.Count)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	return sb.String(), args
}
