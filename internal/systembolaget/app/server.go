package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"gosystembolaget_api/config"
	"gosystembolaget_api/internal/systembolaget/app/web"
	"gosystembolaget_api/internal/systembolaget/app/web/handlers"
	"gosystembolaget_api/internal/systembolaget/business/services"
	"gosystembolaget_api/internal/systembolaget/business/services/get"
	"gosystembolaget_api/internal/systembolaget/business/services/reconcile"
	"gosystembolaget_api/internal/systembolaget/business/services/update"
	"gosystembolaget_api/internal/systembolaget/storage"
	"gosystembolaget_api/pkg/dbconnect"
	"gosystembolaget_api/pkg/dbconnect/migration"
	"gosystembolaget_api/pkg/logger"
)

// Server owns the whole mirror: schema setup, the refresh scheduler
// and the HTTP front door.
type Server struct {
	dbconnect.Database
	cfg    *config.AppConfig
	log    logger.Logger
	writer io.Writer
}

func NewServer(connector dbconnect.Database, cfg *config.AppConfig, writer io.Writer) *Server {
	return &Server{
		Database: connector,
		cfg:      cfg,
		log:      logger.NewLogger(writer, "[server]"),
		writer:   writer,
	}
}

// Run connects, applies the schema, starts the refresh scheduler and
// serves HTTP until the listener fails or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	db, err := s.Connect()
	if err != nil {
		return fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&storage.ProductsTable{},
		&storage.SitesTable{},
		&storage.JunctionTable{},
	}
	for _, m := range migrationApply {
		if err := m.UpMigration(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	s.log.Log("Schema migrations applied successfully")

	sbCfg := s.cfg.Systembolaget
	auth := services.NewSubscriptionKeyAuth(sbCfg.ApiKeyHeader, sbCfg.ApiKey)
	client := get.NewCatalogClient(sbCfg, auth, s.writer)

	productRepo := storage.NewProductRepository(db, s.writer)
	siteRepo := storage.NewSiteRepository(db, s.writer)
	junctionRepo := storage.NewJunctionRepository(db, s.writer)

	refreshService := update.NewRefreshService(
		client,
		reconcile.NewReconciler(s.writer),
		productRepo,
		siteRepo,
		junctionRepo,
		s.writer,
	)

	scheduler := update.NewScheduler(refreshService, sbCfg.RefreshInterval(), s.writer)
	go scheduler.Run(ctx)

	router := web.NewRouter(
		handlers.NewProductHandler(productRepo, s.writer),
		handlers.NewSiteHandler(siteRepo, s.writer),
		handlers.NewRefreshHandler(refreshService, s.writer),
	)

	httpServer := &http.Server{
		Addr:    s.cfg.Server.Bind,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	s.log.Log("Serving catalog API on %s", s.cfg.Server.Bind)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
