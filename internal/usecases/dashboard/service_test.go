package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/currency"
	"go.uber.org/mock/gomock"
)

const testInvoiceID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type serviceMocks struct {
	revenue  *mocks.MockRevenueRepository
	invoice  *mocks.MockInvoiceRepository
	customer *mocks.MockCustomerRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		revenue:  mocks.NewMockRevenueRepository(ctrl),
		invoice:  mocks.NewMockInvoiceRepository(ctrl),
		customer: mocks.NewMockCustomerRepository(ctrl),
	}

	cfg := &config.Config{
		Dashboard: config.Dashboard{CustomerStatsMaxConcurrency: 4},
	}

	return NewService(cfg, m.revenue, m.invoice, m.customer, currency.Default()), m
}

func cents(v int64) *int64 {
	return &v
}

func invoiceRow(id string, amount int64, date string, status domain.InvoiceStatus, name, email string) domain.InvoiceWithCustomer {
	return domain.InvoiceWithCustomer{
		ID:         id,
		CustomerID: "cus-" + id,
		Amount:     cents(amount),
		Date:       date,
		Status:     status,
		Customer: &domain.InvoiceCustomer{
			Name:     name,
			Email:    email,
			ImageURL: "/customers/" + id + ".png",
		},
	}
}

// thirteenInvoices returns rows already ordered by date descending
func thirteenInvoices() []domain.InvoiceWithCustomer {
	invoices := make([]domain.InvoiceWithCustomer, 0, 13)
	for i := 0; i < 13; i++ {
		date := time.Date(2023, 12, 31-i, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		invoices = append(invoices, invoiceRow(
			fmt.Sprintf("inv-%02d", i), int64(1000+i), date, domain.InvoiceStatusPending, "Delba de Oliveira", "delba@oliveira.com",
		))
	}
	return invoices
}

func assertDashboardError(t *testing.T, err error, kind error, message string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "expected kind %v, got %v", kind, err)
	assert.Equal(t, message, err.Error())

	var dashErr *Error
	require.True(t, errors.As(err, &dashErr))
	assert.Equal(t, message, dashErr.Message)
}

func TestService_FetchRevenue(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m serviceMocks)
		validate func(t *testing.T, revenue []domain.Revenue, err error)
	}{
		{
			name: "returns every month",
			setup: func(m serviceMocks) {
				m.revenue.EXPECT().List(gomock.Any()).Return([]domain.Revenue{
					{Month: "Jan", Revenue: 2000},
					{Month: "Feb", Revenue: 1800},
				}, nil)
			},
			validate: func(t *testing.T, revenue []domain.Revenue, err error) {
				require.NoError(t, err)
				assert.Len(t, revenue, 2)
				assert.Equal(t, "Jan", revenue[0].Month)
			},
		},
		{
			name: "empty table returns empty slice",
			setup: func(m serviceMocks) {
				m.revenue.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, revenue []domain.Revenue, err error) {
				require.NoError(t, err)
				assert.NotNil(t, revenue)
				assert.Empty(t, revenue)
			},
		},
		{
			name: "store failure",
			setup: func(m serviceMocks) {
				m.revenue.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)
			},
			validate: func(t *testing.T, revenue []domain.Revenue, err error) {
				assert.Nil(t, revenue)
				assertDashboardError(t, err, ErrTransport, "Failed to fetch revenue data.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			revenue, err := service.FetchRevenue(context.Background())

			tt.validate(t, revenue, err)
		})
	}
}

func TestService_FetchRevenue_DelayHonoursCancellation(t *testing.T) {
	service, _ := newTestService(t)
	service.revenueFetchDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	revenue, err := service.FetchRevenue(ctx)

	assert.Nil(t, revenue)
	assertDashboardError(t, err, ErrTransport, MsgFetchRevenue)
}

func TestService_FetchLatestInvoices(t *testing.T) {
	t.Run("formats amounts and flattens the customer", func(t *testing.T) {
		service, m := newTestService(t)

		m.invoice.EXPECT().ListLatest(gomock.Any(), LatestInvoicesLimit).Return([]domain.InvoiceWithCustomer{
			invoiceRow("inv-1", 15795, "2022-12-06", domain.InvoiceStatusPending, "Evil Rabbit", "evil@rabbit.com"),
			{ID: "inv-2", Amount: nil, Date: "2022-11-14", Status: domain.InvoiceStatusPaid},
		}, nil)

		latest, err := service.FetchLatestInvoices(context.Background())

		require.NoError(t, err)
		require.Len(t, latest, 2)
		assert.Equal(t, domain.LatestInvoice{
			ID:       "inv-1",
			Name:     "Evil Rabbit",
			Email:    "evil@rabbit.com",
			ImageURL: "/customers/inv-1.png",
			Amount:   "$157.95",
		}, latest[0])
		assert.Equal(t, domain.LatestInvoice{ID: "inv-2", Amount: "$0.00"}, latest[1])
	})

	t.Run("store failure", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return(nil, errStoreDown)

		_, err := service.FetchLatestInvoices(context.Background())

		assertDashboardError(t, err, ErrTransport, "Failed to fetch the latest invoices.")
	})

	t.Run("panic while formatting is a formatting error", func(t *testing.T) {
		service, m := newTestService(t)
		service.formatter = nil

		m.invoice.EXPECT().ListLatest(gomock.Any(), gomock.Any()).Return([]domain.InvoiceWithCustomer{
			invoiceRow("inv-1", 100, "2022-12-06", domain.InvoiceStatusPaid, "Lee Robinson", "lee@robinson.com"),
		}, nil)

		latest, err := service.FetchLatestInvoices(context.Background())

		assert.Empty(t, latest)
		assertDashboardError(t, err, ErrFormatting, "Failed to fetch the latest invoices.")
		assert.False(t, errors.Is(err, ErrTransport))
	})
}

func TestService_FetchCardData(t *testing.T) {
	t.Run("sums paid and pending amounts independently of counts", func(t *testing.T) {
		service, m := newTestService(t)

		m.invoice.EXPECT().Count(gomock.Any()).Return(3, nil)
		m.customer.EXPECT().Count(gomock.Any()).Return(42, nil)
		m.invoice.EXPECT().ListAmountsByStatus(gomock.Any(), domain.InvoiceStatusPaid).Return([]domain.InvoiceAmount{
			{ID: "a", Amount: cents(500), Status: domain.InvoiceStatusPaid},
			{ID: "c", Amount: cents(200), Status: domain.InvoiceStatusPaid},
		}, nil)
		m.invoice.EXPECT().ListAmountsByStatus(gomock.Any(), domain.InvoiceStatusPending).Return([]domain.InvoiceAmount{
			{ID: "b", Amount: cents(300), Status: domain.InvoiceStatusPending},
			{ID: "d", Amount: nil, Status: domain.InvoiceStatusPending},
		}, nil)

		cards, err := service.FetchCardData(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &domain.CardData{
			NumberOfCustomers:    42,
			NumberOfInvoices:     3,
			TotalPaidInvoices:    currency.Default().Format(700),
			TotalPendingInvoices: currency.Default().Format(300),
		}, cards)
		assert.Equal(t, "$7.00", cards.TotalPaidInvoices)
	})

	t.Run("one failing branch fails the whole call", func(t *testing.T) {
		service, m := newTestService(t)

		m.invoice.EXPECT().Count(gomock.Any()).Return(3, nil)
		m.customer.EXPECT().Count(gomock.Any()).Return(0, errStoreDown)
		m.invoice.EXPECT().ListAmountsByStatus(gomock.Any(), gomock.Any()).Return([]domain.InvoiceAmount{}, nil).Times(2)

		cards, err := service.FetchCardData(context.Background())

		assert.Nil(t, cards)
		assertDashboardError(t, err, ErrTransport, "Failed to fetch card data.")
	})
}

func TestService_FetchFilteredInvoices(t *testing.T) {
	t.Run("pages hold at most six rows and rebuild the filtered set", func(t *testing.T) {
		service, m := newTestService(t)
		invoices := thirteenInvoices()

		m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(invoices, nil).Times(4)

		pages, err := service.FetchInvoicesPages(context.Background(), "delba")
		require.NoError(t, err)
		assert.Equal(t, 3, pages)

		var all []domain.InvoicesTable
		for page := 1; page <= pages; page++ {
			rows, err := service.FetchFilteredInvoices(context.Background(), "DELBA", page)
			require.NoError(t, err)

			if page < pages {
				assert.Len(t, rows, PageSize)
			} else {
				assert.LessOrEqual(t, len(rows), PageSize)
			}
			all = append(all, rows...)
		}

		require.Len(t, all, len(invoices))
		for i, row := range all {
			assert.Equal(t, invoices[i].ID, row.ID)
		}
	})

	t.Run("matches on any field, case-insensitively", func(t *testing.T) {
		invoices := []domain.InvoiceWithCustomer{
			invoiceRow("inv-1", 12345, "2023-08-05", domain.InvoiceStatusPaid, "Acme Corp", "billing@acme.com"),
			invoiceRow("inv-2", 500, "2023-07-01", domain.InvoiceStatusPending, "Globex", "ap@globex.com"),
			{ID: "inv-3", Amount: nil, Date: "2023-06-01", Status: domain.InvoiceStatusPending},
		}

		tests := []struct {
			query string
			want  []string
		}{
			{query: "ACME", want: []string{"inv-1"}},
			{query: "globex.com", want: []string{"inv-2"}},
			{query: "234", want: []string{"inv-1"}},
			{query: "2023-07", want: []string{"inv-2"}},
			{query: "Pending", want: []string{"inv-2", "inv-3"}},
			{query: "", want: []string{"inv-1", "inv-2", "inv-3"}},
			{query: "nothing", want: []string{}},
		}

		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				service, m := newTestService(t)
				m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(invoices, nil)

				rows, err := service.FetchFilteredInvoices(context.Background(), tt.query, 1)

				require.NoError(t, err)
				ids := make([]string, 0, len(rows))
				for _, row := range rows {
					ids = append(ids, row.ID)
				}
				assert.Equal(t, tt.want, ids)
			})
		}
	})

	t.Run("missing relation becomes empty strings", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return([]domain.InvoiceWithCustomer{
			{ID: "inv-9", CustomerID: "cus-gone", Amount: cents(700), Date: "2023-01-01", Status: domain.InvoiceStatusPaid},
		}, nil)

		rows, err := service.FetchFilteredInvoices(context.Background(), "", 1)

		require.NoError(t, err)
		assert.Equal(t, []domain.InvoicesTable{{
			ID:         "inv-9",
			CustomerID: "cus-gone",
			Date:       "2023-01-01",
			Amount:     700,
			Status:     domain.InvoiceStatusPaid,
		}}, rows)
	})

	t.Run("page beyond the last is empty and page zero is the first", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(thirteenInvoices(), nil).Times(2)

		rows, err := service.FetchFilteredInvoices(context.Background(), "", 4)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)

		rows, err = service.FetchFilteredInvoices(context.Background(), "", 0)
		require.NoError(t, err)
		assert.Equal(t, "inv-00", rows[0].ID)
	})

	t.Run("store failure", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(nil, errStoreDown).Times(2)

		_, err := service.FetchFilteredInvoices(context.Background(), "x", 1)
		assertDashboardError(t, err, ErrTransport, "Failed to fetch invoices.")

		_, err = service.FetchInvoicesPages(context.Background(), "x")
		assertDashboardError(t, err, ErrTransport, "Failed to fetch total number of invoices.")
	})
}

func TestService_FetchInvoicesPages(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{rows: 0, want: 0},
		{rows: 1, want: 1},
		{rows: 6, want: 1},
		{rows: 7, want: 2},
		{rows: 13, want: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows", tt.rows), func(t *testing.T) {
			service, m := newTestService(t)
			m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(thirteenInvoices()[:tt.rows], nil)

			pages, err := service.FetchInvoicesPages(context.Background(), "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, pages)
		})
	}
}

func TestService_FetchInvoiceByID(t *testing.T) {
	t.Run("divides cents by one hundred exactly", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(&domain.Invoice{
			ID:         testInvoiceID,
			CustomerID: "cus-1",
			Amount:     12345,
			Date:       "2023-08-05",
			Status:     domain.InvoiceStatusPending,
		}, nil)

		form, err := service.FetchInvoiceByID(context.Background(), testInvoiceID)

		require.NoError(t, err)
		require.NotNil(t, form)
		assert.True(t, decimal.RequireFromString("123.45").Equal(form.Amount), "got %s", form.Amount)
		assert.Equal(t, "cus-1", form.CustomerID)
		assert.Equal(t, domain.InvoiceStatusPending, form.Status)
	})

	t.Run("not found", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(nil, nil)

		form, err := service.FetchInvoiceByID(context.Background(), testInvoiceID)

		assert.NoError(t, err)
		assert.Nil(t, form)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		service, _ := newTestService(t)

		form, err := service.FetchInvoiceByID(context.Background(), "not-a-uuid")

		assert.NoError(t, err)
		assert.Nil(t, form)
	})

	t.Run("store failure is a transport error", func(t *testing.T) {
		service, m := newTestService(t)
		m.invoice.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(nil, errStoreDown)

		form, err := service.FetchInvoiceByID(context.Background(), testInvoiceID)

		assert.Nil(t, form)
		assertDashboardError(t, err, ErrTransport, "Failed to fetch invoice.")
		assert.False(t, errors.Is(err, ErrFormatting))
	})
}

func TestService_FetchCustomers(t *testing.T) {
	t.Run("returns fields in store order", func(t *testing.T) {
		service, m := newTestService(t)
		m.customer.EXPECT().ListFields(gomock.Any()).Return([]domain.CustomerField{
			{ID: "2", Name: "Amy Burns"},
			{ID: "1", Name: "Balazs Orban"},
		}, nil)

		customers, err := service.FetchCustomers(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Amy Burns", customers[0].Name)
		assert.Equal(t, "Balazs Orban", customers[1].Name)
	})

	t.Run("store failure", func(t *testing.T) {
		service, m := newTestService(t)
		m.customer.EXPECT().ListFields(gomock.Any()).Return(nil, errStoreDown)

		_, err := service.FetchCustomers(context.Background())

		assertDashboardError(t, err, ErrTransport, "Failed to fetch all customers.")
	})
}

func TestService_FetchFilteredCustomers(t *testing.T) {
	t.Run("aggregates invoices per customer keeping order", func(t *testing.T) {
		service, m := newTestService(t)

		m.customer.EXPECT().Search(gomock.Any(), "a").Return([]domain.Customer{
			{ID: "cus-1", Name: "Acme Corp", Email: "billing@acme.com", ImageURL: "/acme.png"},
			{ID: "cus-2", Name: "Amy Burns", Email: "amy@burns.com"},
		}, nil)
		m.invoice.EXPECT().ListByCustomer(gomock.Any(), "cus-1").Return([]domain.InvoiceAmount{
			{ID: "i1", Amount: cents(500), Status: domain.InvoiceStatusPaid},
			{ID: "i2", Amount: cents(300), Status: domain.InvoiceStatusPending},
			{ID: "i3", Amount: cents(200), Status: domain.InvoiceStatusPaid},
			{ID: "i4", Amount: nil, Status: domain.InvoiceStatusPending},
		}, nil)
		m.invoice.EXPECT().ListByCustomer(gomock.Any(), "cus-2").Return([]domain.InvoiceAmount{}, nil)

		table, err := service.FetchFilteredCustomers(context.Background(), "a")

		require.NoError(t, err)
		assert.Equal(t, []domain.FormattedCustomersTable{
			{
				ID:            "cus-1",
				Name:          "Acme Corp",
				Email:         "billing@acme.com",
				ImageURL:      "/acme.png",
				TotalInvoices: 4,
				TotalPending:  "$3.00",
				TotalPaid:     "$7.00",
			},
			{
				ID:            "cus-2",
				Name:          "Amy Burns",
				Email:         "amy@burns.com",
				TotalInvoices: 0,
				TotalPending:  "$0.00",
				TotalPaid:     "$0.00",
			},
		}, table)
	})

	t.Run("failed customer reports zeros without failing siblings", func(t *testing.T) {
		service, m := newTestService(t)

		m.customer.EXPECT().Search(gomock.Any(), "").Return([]domain.Customer{
			{ID: "cus-1", Name: "Hector Simpson"},
			{ID: "cus-2", Name: "Steph Dietz"},
		}, nil)
		m.invoice.EXPECT().ListByCustomer(gomock.Any(), "cus-1").Return(nil, errStoreDown)
		m.invoice.EXPECT().ListByCustomer(gomock.Any(), "cus-2").Return([]domain.InvoiceAmount{
			{ID: "i1", Amount: cents(1000), Status: domain.InvoiceStatusPaid},
		}, nil)

		table, err := service.FetchFilteredCustomers(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, table, 2)
		assert.Equal(t, 0, table[0].TotalInvoices)
		assert.Equal(t, "$0.00", table[0].TotalPaid)
		assert.Equal(t, 1, table[1].TotalInvoices)
		assert.Equal(t, "$10.00", table[1].TotalPaid)
	})

	t.Run("no matching customers is an empty result", func(t *testing.T) {
		service, m := newTestService(t)
		m.customer.EXPECT().Search(gomock.Any(), "zzz").Return([]domain.Customer{}, nil)

		table, err := service.FetchFilteredCustomers(context.Background(), "zzz")

		require.NoError(t, err)
		assert.NotNil(t, table)
		assert.Empty(t, table)
	})

	t.Run("search failure", func(t *testing.T) {
		service, m := newTestService(t)
		m.customer.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errStoreDown)

		_, err := service.FetchFilteredCustomers(context.Background(), "x")

		assertDashboardError(t, err, ErrTransport, "Failed to fetch customer table.")
	})
}

func TestService_FetchInvoicesByAmount(t *testing.T) {
	service, m := newTestService(t)
	m.invoice.EXPECT().ListByAmount(gomock.Any(), int64(666)).Return([]domain.InvoiceAmountRow{
		{Amount: 666, Name: "Evil Rabbit"},
	}, nil)

	rows, err := service.FetchInvoicesByAmount(context.Background(), 666)

	require.NoError(t, err)
	assert.Equal(t, []domain.InvoiceAmountRow{{Amount: 666, Name: "Evil Rabbit"}}, rows)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, paginate(items, 1))
	assert.Equal(t, []int{7}, paginate(items, 2))
	assert.Equal(t, []int{}, paginate(items, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, paginate(items, -2))
	assert.Equal(t, []int{}, paginate(items, math.MaxInt))
	assert.Equal(t, []int{}, paginate(items, math.MaxInt/PageSize+2))
	assert.Equal(t, []int{}, paginate([]int{}, 1))
}

func TestService_FetchFilteredInvoices_HugePage(t *testing.T) {
	svc, m := newTestService(t)
	m.invoice.EXPECT().ListWithCustomer(gomock.Any()).Return(thirteenInvoices(), nil)

	page, err := svc.FetchFilteredInvoices(context.Background(), "", math.MaxInt)

	require.NoError(t, err)
	assert.Empty(t, page)
}
