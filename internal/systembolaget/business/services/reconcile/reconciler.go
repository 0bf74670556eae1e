package reconcile

import (
	"fmt"
	"io"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/pkg/business/service"
	"gosystembolaget_api/pkg/logger"
)

const linkBase = "https://systembolaget.se/dryck"

// Reconciler joins a freshly fetched product catalog against the
// availability document. Only products referenced by at least one
// site's availability list survive into the persistable set; the local
// mirror stores sellable products, not the full remote catalog.
type Reconciler struct {
	text service.ITextService
	log  logger.Logger
}

func NewReconciler(writer io.Writer) *Reconciler {
	return &Reconciler{
		text: service.NewTextService(),
		log:  logger.NewLogger(writer, "[reconcile]"),
	}
}

// Reconcile returns the persistable product list. Each product is
// consumed at most once (keyed by product id), availability entries
// referencing unknown products are skipped, and every surviving
// product gets its canonical display link.
func (r *Reconciler) Reconcile(products []models.Product, availability []models.SiteAvailability) []models.Product {
	index := make(map[string]models.Product, len(products))
	known := make(map[string]bool, len(products))
	for _, p := range products {
		index[p.ProductID] = p
		known[p.ProductID] = true
	}

	assembled := make([]models.Product, 0, len(products))
	unknownRefs := 0
	for _, site := range availability {
		for _, ref := range site.Products {
			p, ok := index[ref.ProductID]
			if !ok {
				if !known[ref.ProductID] {
					unknownRefs++
				}
				continue
			}
			delete(index, ref.ProductID)
			p.Link = r.ConstructLink(&p)
			assembled = append(assembled, p)
		}
	}

	r.log.Log("Assembled %d products from %d catalog entries across %d sites (%d unavailable dropped, %d dangling refs)",
		len(assembled), len(products), len(availability), len(index), unknownRefs)
	return assembled
}

// ConstructLink builds the canonical URL-safe display path from the
// product's category and bold name.
func (r *Reconciler) ConstructLink(p *models.Product) string {
	category := r.text.Slugify(p.Category)
	name := r.text.Slugify(p.ProductNameBold)
	return fmt.Sprintf("%s/%s/%s-%s", linkBase, category, name, p.ProductNumber)
}
