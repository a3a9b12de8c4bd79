// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/application/usecase/category"
	"github.com/print-shop/ledger/internal/application/usecase/report"
	"github.com/print-shop/ledger/internal/application/usecase/source"
	"github.com/print-shop/ledger/internal/application/usecase/transaction"
	"github.com/print-shop/ledger/internal/infra/server/router"
	"github.com/print-shop/ledger/internal/integration/adapters"
	"github.com/print-shop/ledger/internal/integration/entrypoint/controller"
	"github.com/print-shop/ledger/internal/integration/entrypoint/middleware"
	"github.com/print-shop/ledger/internal/integration/export"
	"github.com/print-shop/ledger/internal/integration/persistence"
)

const (
	lockBackendRedis = "redis"
	lockBackendMutex = "mutex"
)

// UseCases groups every ledger use case so that the HTTP API and the CLI
// share one wiring.
type UseCases struct {
	ListCategories    *category.ListCategoriesUseCase
	GetCategory       *category.GetCategoryUseCase
	CreateCategory    *category.CreateCategoryUseCase
	UpdateCategory    *category.UpdateCategoryUseCase
	DeleteCategory    *category.DeleteCategoryUseCase
	ListSources       *source.ListSourcesUseCase
	GetSource         *source.GetSourceUseCase
	CreateSource      *source.CreateSourceUseCase
	UpdateSource      *source.UpdateSourceUseCase
	DeleteSource      *source.DeleteSourceUseCase
	ListTransactions  *transaction.ListTransactionsUseCase
	GetTransaction    *transaction.GetTransactionUseCase
	RecordTransaction *transaction.RecordTransactionUseCase
	UpdateTransaction *transaction.UpdateTransactionUseCase
	DeleteTransaction *transaction.DeleteTransactionUseCase
	ComputeSummary    *report.ComputeSummaryUseCase
	ExportSummary     *report.ExportSummaryUseCase
	ListPeriods       *report.ListActivePeriodsUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Location    *time.Location
	LockBackend string
	UseCases    *UseCases
	Router      *router.Router

	redisClient *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A Redis write lock is used when REDIS_URL is set, an in-process mutex otherwise.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*Injector, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}

	inj := &Injector{
		Config:   cfg,
		DB:       db,
		Location: loc,
	}

	// Write lock
	var locker adapter.WriteLocker
	if cfg.Redis.URL != "" {
		client, err := adapters.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		inj.redisClient = client
		inj.LockBackend = lockBackendRedis
		locker = adapters.NewRedisLocker(client, cfg.Redis.LockKey, cfg.Redis.LockTTL)
	} else {
		inj.LockBackend = lockBackendMutex
		locker = adapters.NewMutexLocker()
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	sourceRepo := persistence.NewSourceRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	writer := persistence.NewAtomicWriter(db, locker, cfg.Ledger.LockTimeout)

	inj.UseCases = newUseCases(categoryRepo, sourceRepo, transactionRepo, writer, loc, cfg.Report.TopExpenses)
	inj.Router = newRouter(inj, logger)

	return inj, nil
}

func newUseCases(
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	transactionRepo adapter.TransactionRepository,
	writer adapter.AtomicWriter,
	loc *time.Location,
	topExpenses int,
) *UseCases {
	computeSummary := report.NewComputeSummaryUseCase(transactionRepo, categoryRepo, sourceRepo, loc, topExpenses)

	return &UseCases{
		// Category use cases
		ListCategories: category.NewListCategoriesUseCase(categoryRepo),
		GetCategory:    category.NewGetCategoryUseCase(categoryRepo),
		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo, writer),
		UpdateCategory: category.NewUpdateCategoryUseCase(categoryRepo, writer),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo, writer),

		// Source use cases
		ListSources:  source.NewListSourcesUseCase(sourceRepo),
		GetSource:    source.NewGetSourceUseCase(sourceRepo),
		CreateSource: source.NewCreateSourceUseCase(sourceRepo, categoryRepo, writer),
		UpdateSource: source.NewUpdateSourceUseCase(sourceRepo, categoryRepo, writer),
		DeleteSource: source.NewDeleteSourceUseCase(sourceRepo, writer),

		// Transaction use cases
		ListTransactions:  transaction.NewListTransactionsUseCase(transactionRepo, loc),
		GetTransaction:    transaction.NewGetTransactionUseCase(transactionRepo),
		RecordTransaction: transaction.NewRecordTransactionUseCase(transactionRepo, categoryRepo, sourceRepo, writer),
		UpdateTransaction: transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, sourceRepo, writer),
		DeleteTransaction: transaction.NewDeleteTransactionUseCase(transactionRepo, writer),

		// Report use cases
		ComputeSummary: computeSummary,
		ExportSummary:  report.NewExportSummaryUseCase(computeSummary, export.NewXLSXExporter(loc)),
		ListPeriods:    report.NewListActivePeriodsUseCase(transactionRepo, loc),
	}
}

func newRouter(inj *Injector, logger *slog.Logger) *router.Router {
	uc := inj.UseCases

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := inj.DB.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, inj.LockBackend)

	categoryController := controller.NewCategoryController(
		uc.ListCategories,
		uc.GetCategory,
		uc.CreateCategory,
		uc.UpdateCategory,
		uc.DeleteCategory,
	)

	sourceController := controller.NewSourceController(
		uc.ListSources,
		uc.GetSource,
		uc.CreateSource,
		uc.UpdateSource,
		uc.DeleteSource,
	)

	transactionController := controller.NewTransactionController(
		uc.ListTransactions,
		uc.GetTransaction,
		uc.RecordTransaction,
		uc.UpdateTransaction,
		uc.DeleteTransaction,
		inj.Location,
	)

	reportController := controller.NewReportController(
		uc.ComputeSummary,
		uc.ExportSummary,
		uc.ListPeriods,
		inj.Location,
	)

	// Create middleware
	exportRateLimiter := middleware.NewRateLimiter(
		inj.Config.Report.ExportMaxRequests,
		inj.Config.Report.ExportRateWindow,
	)

	return router.NewRouter(
		healthController,
		categoryController,
		sourceController,
		transactionController,
		reportController,
		exportRateLimiter,
		logger,
	)
}

// Close releases connections owned by the injector.
func (i *Injector) Close() error {
	if i.redisClient != nil {
		return i.redisClient.Close()
	}
	return nil
}
