package update

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/services/get"
	"gosystembolaget_api/internal/systembolaget/business/services/reconcile"
	"gosystembolaget_api/metrics"
	"gosystembolaget_api/pkg/logger"
)

// CatalogFetcher is the remote client surface the refresher needs.
// Tests substitute an httptest-backed or canned implementation.
type CatalogFetcher interface {
	FetchAll(ctx context.Context) (*get.Snapshot, error)
}

type ProductPersister interface {
	ReplaceAll(ctx context.Context, products []models.Product) error
}

type SitePersister interface {
	ReplaceAll(ctx context.Context, sites []models.Site) error
}

type JunctionPersister interface {
	Rebuild(ctx context.Context, availability []models.SiteAvailability) (inserted, skipped int, err error)
}

// CycleResult is the structured outcome of one refresh cycle.
type CycleResult struct {
	CycleID          string
	StartedAt        time.Time
	Duration         time.Duration
	Products         int
	Sites            int
	Junctions        int
	JunctionsSkipped int
	Err              error
}

func (r CycleResult) Succeeded() bool {
	return r.Err == nil
}

// RefreshService drives one full refresh cycle: fetch, reconcile,
// persist. Products and sites are replaced concurrently in independent
// transactions; the junction rebuild runs strictly after both.
type RefreshService struct {
	client     CatalogFetcher
	reconciler *reconcile.Reconciler
	products   ProductPersister
	sites      SitePersister
	junctions  JunctionPersister
	stats      *metrics.RefreshMetrics
	log        logger.Logger

	// mu serializes cycles so a manual trigger can never interleave
	// with the scheduled one.
	mu sync.Mutex
}

func NewRefreshService(
	client CatalogFetcher,
	reconciler *reconcile.Reconciler,
	products ProductPersister,
	sites SitePersister,
	junctions JunctionPersister,
	writer io.Writer,
) *RefreshService {
	return &RefreshService{
		client:     client,
		reconciler: reconciler,
		products:   products,
		sites:      sites,
		junctions:  junctions,
		stats:      &metrics.RefreshMetrics{},
		log:        logger.NewLogger(writer, "[refresh]"),
	}
}

// Stats exposes the in-process refresh counters for health reporting.
func (s *RefreshService) Stats() *metrics.RefreshMetrics {
	return s.stats
}

// RunCycle executes one refresh cycle and never panics the caller: all
// failures end up in the result. A failed fetch leaves the store
// completely untouched.
func (s *RefreshService) RunCycle(ctx context.Context) CycleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := CycleResult{
		CycleID:   uuid.NewString(),
		StartedAt: time.Now(),
	}
	s.log.Log("Starting refresh cycle %s", result.CycleID)

	snapshot, err := s.client.FetchAll(ctx)
	if err != nil {
		return s.finish(result, err)
	}

	assembled := s.reconciler.Reconcile(snapshot.Products, snapshot.Availability)
	result.Products = len(assembled)
	result.Sites = len(snapshot.Sites)

	var (
		wg   sync.WaitGroup
		errs [2]error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = s.products.ReplaceAll(ctx, assembled)
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.sites.ReplaceAll(ctx, snapshot.Sites)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return s.finish(result, err)
		}
	}

	inserted, skipped, err := s.junctions.Rebuild(ctx, snapshot.Availability)
	if err != nil {
		return s.finish(result, err)
	}
	result.Junctions = inserted
	result.JunctionsSkipped = skipped

	return s.finish(result, nil)
}

func (s *RefreshService) finish(result CycleResult, err error) CycleResult {
	result.Err = err
	result.Duration = time.Since(result.StartedAt)

	s.stats.CyclesRun.Add(1)
	if err != nil {
		s.stats.CyclesFailed.Add(1)
		s.log.Log("Refresh cycle %s failed after %s: %v", result.CycleID, result.Duration, err)
	} else {
		s.stats.LastProductCount.Store(int64(result.Products))
		s.stats.LastSiteCount.Store(int64(result.Sites))
		s.stats.LastJunctionCount.Store(int64(result.Junctions))
		s.stats.LastJunctionSkipped.Store(int64(result.JunctionsSkipped))
		s.log.Log("Refresh cycle %s finished in %s: %d products, %d sites, %d junctions (%d skipped)",
			result.CycleID, result.Duration, result.Products, result.Sites, result.Junctions, result.JunctionsSkipped)
	}
	metrics.RecordRefreshCycle(err == nil, result.Duration)
	return result
}
