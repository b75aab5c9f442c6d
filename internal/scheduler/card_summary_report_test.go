package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

type stubFetcher struct {
	cards   *domain.CardData
	err     error
	calls   atomic.Int32
	release chan struct{}
}

func (f *stubFetcher) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.cards, f.err
}

func newTestReportService(fetcher CardDataFetcher) *CardSummaryReportService {
	return NewCardSummaryReportService(fetcher, &config.Config{
		CardSummaryReport: config.CardSummaryReport{
			CronSchedule: "0 * * * *",
			Timeout:      time.Second,
		},
	})
}

func TestCardSummaryReportService_execute(t *testing.T) {
	tests := []struct {
		name     string
		fetcher  *stubFetcher
		validate func(t *testing.T, report *domain.CardSummaryReport)
	}{
		{
			name: "stores the cards of a successful run",
			fetcher: &stubFetcher{cards: &domain.CardData{
				NumberOfCustomers:    6,
				NumberOfInvoices:     13,
				TotalPaidInvoices:    "$7.00",
				TotalPendingInvoices: "$3.00",
			}},
			validate: func(t *testing.T, report *domain.CardSummaryReport) {
				assert.Len(t, report.RunID, 6)
				require.NotNil(t, report.CompletedAt)
				require.NotNil(t, report.Cards)
				assert.Equal(t, "$7.00", report.Cards.TotalPaidInvoices)
				assert.Empty(t, report.Error)
			},
		},
		{
			name:    "keeps the public message of a failed run",
			fetcher: &stubFetcher{err: errors.New("Failed to fetch card data.")},
			validate: func(t *testing.T, report *domain.CardSummaryReport) {
				assert.Nil(t, report.Cards)
				assert.Equal(t, "Failed to fetch card data.", report.Error)
				require.NotNil(t, report.CompletedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestReportService(tt.fetcher)

			require.True(t, service.tryStart())
			report := service.execute()

			tt.validate(t, report)
			assert.Same(t, report, service.LastReport())
			assert.Equal(t, false, service.GetStatus()["running"])
		})
	}
}

func TestCardSummaryReportService_TriggerManualRun(t *testing.T) {
	fetcher := &stubFetcher{
		cards:   &domain.CardData{NumberOfInvoices: 1},
		release: make(chan struct{}),
	}
	service := newTestReportService(fetcher)

	assert.True(t, service.TriggerManualRun())
	assert.False(t, service.TriggerManualRun(), "a second run must not start while the first is running")

	close(fetcher.release)

	assert.Eventually(t, func() bool {
		return service.LastReport() != nil
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Eventually(t, func() bool {
		return service.TriggerManualRun()
	}, time.Second, 10*time.Millisecond)
}

func TestCardSummaryReportService_StartDisabled(t *testing.T) {
	service := newTestReportService(&stubFetcher{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}

func TestCardSummaryReportService_StartInvalidCron(t *testing.T) {
	service := NewCardSummaryReportService(&stubFetcher{}, &config.Config{
		CardSummaryReport: config.CardSummaryReport{CronSchedule: "not a cron", Enabled: true},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
