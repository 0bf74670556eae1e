package reconcile

import (
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosystembolaget_api/internal/systembolaget/business/models"
)

func catalog() []models.Product {
	return []models.Product{
		{ProductID: "p1", ProductNumber: "101", ProductNameBold: "Röd Etikett", Category: "Rött vin"},
		{ProductID: "p2", ProductNumber: "102", ProductNameBold: "Ljus Lager", Category: "Öl"},
		{ProductID: "p3", ProductNumber: "103", ProductNameBold: "Katalogvara", Category: "Öl"},
	}
}

func availability() []models.SiteAvailability {
	return []models.SiteAvailability{
		{SiteID: "s1", Products: []models.ProductRef{
			{ProductID: "p1", ProductNumber: "101"},
			{ProductID: "p2", ProductNumber: "102"},
		}},
		{SiteID: "s2", Products: []models.ProductRef{
			{ProductID: "p1", ProductNumber: "101"},
			{ProductID: "missing", ProductNumber: "999"},
		}},
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	sort.Strings(ids)
	return ids
}

func TestReconcileKeepsOnlyAvailableProducts(t *testing.T) {
	r := NewReconciler(io.Discard)

	assembled := r.Reconcile(catalog(), availability())

	// p3 is in the catalog but carried by no site; "missing" is carried
	// but absent from the catalog. Neither survives.
	assert.Equal(t, []string{"p1", "p2"}, productIDs(assembled))
}

func TestReconcileConsumesEachProductOnce(t *testing.T) {
	r := NewReconciler(io.Discard)

	assembled := r.Reconcile(catalog(), availability())

	seen := map[string]int{}
	for _, p := range assembled {
		seen[p.ProductID]++
	}
	// p1 is carried by both sites but appears once.
	assert.Equal(t, 1, seen["p1"])
}

func TestReconcileIsIdempotentOnItsInputs(t *testing.T) {
	r := NewReconciler(io.Discard)

	first := r.Reconcile(catalog(), availability())
	second := r.Reconcile(catalog(), availability())

	assert.Equal(t, productIDs(first), productIDs(second))
}

func TestReconcileComputesCanonicalLink(t *testing.T) {
	r := NewReconciler(io.Discard)

	assembled := r.Reconcile(catalog(), availability())
	require.NotEmpty(t, assembled)

	var wine *models.Product
	for i := range assembled {
		if assembled[i].ProductID == "p1" {
			wine = &assembled[i]
		}
	}
	require.NotNil(t, wine)
	assert.Equal(t, "https://systembolaget.se/dryck/rott-vin/rod-etikett-101", wine.Link)
}

func TestReconcileEmptyInputs(t *testing.T) {
	r := NewReconciler(io.Discard)

	assert.Empty(t, r.Reconcile(nil, availability()))
	assert.Empty(t, r.Reconcile(catalog(), nil))
}
