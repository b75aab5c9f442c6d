package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
)

// seedNamespace derives stable ids so the script can run more than once
var seedNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

func seedID(kind, key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key)).String()
}

var customers = []domain.Customer{
	{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

type seedInvoice struct {
	customer string
	amount   int64
	status   domain.InvoiceStatus
	date     string
}

var invoices = []seedInvoice{
	{customer: "evil@rabbit.com", amount: 15795, status: domain.InvoiceStatusPending, date: "2022-12-06"},
	{customer: "delba@oliveira.com", amount: 20348, status: domain.InvoiceStatusPending, date: "2022-11-14"},
	{customer: "amy@burns.com", amount: 3040, status: domain.InvoiceStatusPaid, date: "2022-10-29"},
	{customer: "michael@novotny.com", amount: 44800, status: domain.InvoiceStatusPaid, date: "2023-09-10"},
	{customer: "balazs@orban.com", amount: 34577, status: domain.InvoiceStatusPending, date: "2023-08-05"},
	{customer: "lee@robinson.com", amount: 54246, status: domain.InvoiceStatusPending, date: "2023-07-16"},
	{customer: "evil@rabbit.com", amount: 666, status: domain.InvoiceStatusPending, date: "2023-06-27"},
	{customer: "michael@novotny.com", amount: 32545, status: domain.InvoiceStatusPaid, date: "2023-06-09"},
	{customer: "amy@burns.com", amount: 1250, status: domain.InvoiceStatusPaid, date: "2023-06-17"},
	{customer: "balazs@orban.com", amount: 8546, status: domain.InvoiceStatusPaid, date: "2023-06-07"},
	{customer: "delba@oliveira.com", amount: 500, status: domain.InvoiceStatusPaid, date: "2023-08-19"},
	{customer: "balazs@orban.com", amount: 8945, status: domain.InvoiceStatusPaid, date: "2023-06-03"},
	{customer: "amy@burns.com", amount: 1000, status: domain.InvoiceStatusPaid, date: "2022-06-05"},
}

var revenue = []domain.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func insertCustomers(ctx context.Context, tx *sql.Tx) error {
	insert := squirrel.Insert("customers").
		Columns("id", "name", "email", "image_url").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range customers {
		insert = insert.Values(seedID("customer", c.Email), c.Name, c.Email, c.ImageURL)
	}

	result, err := insert.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return err
	}

	inserted, _ := result.RowsAffected()
	logrus.WithFields(logrus.Fields{"total": len(customers), "inserted": inserted}).Info("Customers seeded")
	return nil
}

func insertInvoices(ctx context.Context, tx *sql.Tx) error {
	insert := squirrel.Insert("invoices").
		Columns("id", "customer_id", "amount", "status", "date").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for i, inv := range invoices {
		date, err := time.Parse(time.DateOnly, inv.date)
		if err != nil {
			return err
		}
		key := inv.customer + ":" + inv.date + ":" + string(rune('a'+i))
		insert = insert.Values(seedID("invoice", key), seedID("customer", inv.customer), inv.amount, string(inv.status), date)
	}

	result, err := insert.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return err
	}

	inserted, _ := result.RowsAffected()
	logrus.WithFields(logrus.Fields{"total": len(invoices), "inserted": inserted}).Info("Invoices seeded")
	return nil
}

func insertRevenue(ctx context.Context, tx *sql.Tx) error {
	insert := squirrel.Insert("revenue").
		Columns("month", "revenue").
		Suffix("ON CONFLICT (month) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, r := range revenue {
		insert = insert.Values(r.Month, r.Revenue)
	}

	result, err := insert.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return err
	}

	inserted, _ := result.RowsAffected()
	logrus.WithFields(logrus.Fields{"total": len(revenue), "inserted": inserted}).Info("Revenue seeded")
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	logrus.Info("Starting seed script...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Error applying migrations")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertCustomers(ctx, tx); err != nil {
			return err
		}
		if err := insertInvoices(ctx, tx); err != nil {
			return err
		}
		return insertRevenue(ctx, tx)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Seed failed, transaction rolled back")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Seed completed")
}
