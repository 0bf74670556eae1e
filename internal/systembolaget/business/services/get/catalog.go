package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"gosystembolaget_api/config"
	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/services"
	"gosystembolaget_api/internal/systembolaget/business/services/apk"
	"gosystembolaget_api/pkg/logger"
)

// Snapshot carries the three remote collections of one successful
// fetch. It is only ever returned whole: a failure in any fetch yields
// no snapshot at all.
type Snapshot struct {
	Products     []models.Product
	Sites        []models.Site
	Availability []models.SiteAvailability
}

// CatalogClient fetches the remote product catalog, site catalog and
// per-site availability document. One instance owns one http.Client
// and is reused across refresh cycles.
type CatalogClient struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     config.SystembolagetConfig
	services.AuthEngine
	log logger.Logger
}

func NewCatalogClient(cfg config.SystembolagetConfig, auth services.AuthEngine, writer io.Writer) *CatalogClient {
	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 50
	}
	return &CatalogClient{
		client:     &http.Client{Timeout: cfg.RequestTimeout()},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		cfg:        cfg,
		AuthEngine: auth,
		log:        logger.NewLogger(writer, "[catalog]"),
	}
}

// FetchAll runs the three fetches concurrently and joins them. It
// fails as a unit: if any fetch errors, no partial result is returned.
func (c *CatalogClient) FetchAll(ctx context.Context) (*Snapshot, error) {
	var (
		snapshot Snapshot
		errs     [3]error
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snapshot.Products, errs[0] = c.Products(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Sites, errs[1] = c.Sites(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Availability, errs[2] = c.Availability(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &snapshot, nil
}

// Products fetches the full product catalog and applies the derived
// metrics to every entry before returning it.
func (c *CatalogClient) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, c.cfg.ProductsURL, &products); err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	for i := range products {
		apk.Enrich(&products[i])
	}
	return products, nil
}

// Sites fetches the full site catalog.
func (c *CatalogClient) Sites(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	if err := c.getJSON(ctx, c.cfg.SitesURL, &sites); err != nil {
		return nil, fmt.Errorf("fetching sites: %w", err)
	}
	return sites, nil
}

// Availability fetches the per-site product availability document.
func (c *CatalogClient) Availability(ctx context.Context) ([]models.SiteAvailability, error) {
	var availability []models.SiteAvailability
	if err := c.getJSON(ctx, c.cfg.AvailabilityURL, &availability); err != nil {
		return nil, fmt.Errorf("fetching availability: %w", err)
	}
	return availability, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, url string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	c.log.Log("Sending http request to url=%s", url)
	httpStart := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	c.SetApiKey(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}
	c.log.Log("Response received, http round trip was %d millis", time.Since(httpStart).Milliseconds())

	decodeStart := time.Now()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	c.log.Log("Deserialization complete, processing time was %d millis", time.Since(decodeStart).Milliseconds())
	return nil
}
