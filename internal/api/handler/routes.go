package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(reader dashboard.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(reader),
		},
		{
			Path:    "/v1/dashboard/latest-invoices",
			Method:  http.MethodGet,
			Handler: GetLatestInvoices(reader),
		},
		{
			Path:    "/v1/dashboard/cards",
			Method:  http.MethodGet,
			Handler: GetCardData(reader),
		},
	}
}

func Invoices(reader dashboard.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: ListInvoices(reader),
		},
		{
			Path:    "/v1/pages/invoices",
			Method:  http.MethodGet,
			Handler: GetInvoicesPages(reader),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodGet,
			Handler: GetInvoice(reader),
		},
		{
			Path:    "/v1/query",
			Method:  http.MethodGet,
			Handler: QueryInvoicesByAmount(reader),
		},
	}
}

func Customers(reader dashboard.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(reader),
		},
		{
			Path:    "/v1/customers/table",
			Method:  http.MethodGet,
			Handler: GetCustomersTable(reader),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
