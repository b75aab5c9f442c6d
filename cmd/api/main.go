package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/integrator/postgrest"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/api"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/scheduler"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/invoice-dashboard-api/pkg/currency"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
)

// stores groups the repositories of the selected backend
type stores struct {
	revenue  repository.RevenueRepository
	invoice  repository.InvoiceRepository
	customer repository.CustomerRepository
	close    func()
}

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Log level set to: %s", logrus.GetLevel())

	// amounts leave the API as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := openStores(ctx, cfg)
	defer st.close()

	formatter, err := currency.NewFormatter(cfg.Currency.Locale, cfg.Currency.Symbol)
	if err != nil {
		logrus.WithError(err).Warn("Invalid currency settings, using en-US")
		formatter = currency.Default()
	}

	dashboardService := dashboard.NewService(cfg, st.revenue, st.invoice, st.customer, formatter)

	cardSummaryReport := scheduler.NewCardSummaryReportService(dashboardService, cfg)
	if err := cardSummaryReport.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the card summary report scheduler")
	} else {
		logrus.Info("Card summary report scheduler started")
	}

	server, err := api.New(cfg, dashboardService, cardSummaryReport)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger moves to the binary directory so relative .env lookups work
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Configure("info")
}

func openStores(ctx context.Context, cfg *config.Config) stores {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgREST:
		client, err := postgrest.NewClient(cfg.PostgREST)
		if err != nil {
			logrus.WithError(err).Fatal("Error creating the PostgREST client")
		}

		logrus.WithField("url", cfg.PostgREST.URL).Info("Using PostgREST store")
		return stores{
			revenue:  postgrest.NewRevenueRepository(client),
			invoice:  postgrest.NewInvoiceRepository(client),
			customer: postgrest.NewCustomerRepository(client),
			close:    func() {},
		}
	default:
		if cfg.Database.MigrateOnStart {
			if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
				logrus.WithError(err).Fatal("Error applying migrations")
			}
			logrus.Info("Migrations applied")
		}

		conn := pgconn(ctx, cfg.Database)
		return stores{
			revenue:  repository.NewRevenueRepository(conn),
			invoice:  repository.NewInvoiceRepository(conn),
			customer: repository.NewCustomerRepository(conn),
			close:    func() { conn.Close() },
		}
	}
}

// pgconn opens the database connection or exits
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error testing the PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
