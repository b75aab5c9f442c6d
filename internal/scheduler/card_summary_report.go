package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

// CardDataFetcher is the part of the dashboard reader the report needs
type CardDataFetcher interface {
	FetchCardData(ctx context.Context) (*domain.CardData, error)
}

type CardSummaryReportConfig struct {
	CronSchedule string
	Timeout      time.Duration
	Enabled      bool
}

// CardSummaryReportService periodically computes the dashboard cards and keeps the last outcome
type CardSummaryReportService struct {
	scheduler  *gocron.Scheduler
	config     CardSummaryReportConfig
	fetcher    CardDataFetcher
	running    bool
	mutex      sync.Mutex
	lastReport *domain.CardSummaryReport
}

func NewCardSummaryReportService(fetcher CardDataFetcher, appConfig *config.Config) *CardSummaryReportService {
	reportConfig := CardSummaryReportConfig{
		CronSchedule: appConfig.CardSummaryReport.CronSchedule,
		Timeout:      appConfig.CardSummaryReport.Timeout,
		Enabled:      appConfig.CardSummaryReport.Enabled,
	}
	if reportConfig.Timeout <= 0 {
		reportConfig.Timeout = 30 * time.Second
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"timeout":       reportConfig.Timeout.String(),
		"enabled":       reportConfig.Enabled,
	}).Info("Card summary report configuration loaded")

	return &CardSummaryReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		fetcher:   fetcher,
	}
}

// Start schedules the report and stops the scheduler when ctx is done
func (s *CardSummaryReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Card summary report disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting card summary report scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.tryStart() {
			logrus.Info("Card summary report already running, skipping")
			return
		}
		s.execute()
	})
	if err != nil {
		return fmt.Errorf("error scheduling card summary report: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping card summary report scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CardSummaryReportService) tryStart() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	return true
}

// execute runs one report. The caller must have won tryStart.
func (s *CardSummaryReportService) execute() *domain.CardSummaryReport {
	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Error generating card summary run id")
	}

	report := &domain.CardSummaryReport{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Card summary report started")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	cards, err := s.fetcher.FetchCardData(ctx)
	completedAt := time.Now()
	report.CompletedAt = &completedAt

	if err != nil {
		report.Error = err.Error()
		logger.WithError(err).Error("Card summary report failed")
	} else {
		report.Cards = cards
		logger.WithFields(logrus.Fields{
			"duration":           completedAt.Sub(report.StartedAt).String(),
			"number_of_invoices": cards.NumberOfInvoices,
			"total_paid":         cards.TotalPaidInvoices,
			"total_pending":      cards.TotalPendingInvoices,
		}).Info("Card summary report completed")
	}

	s.mutex.Lock()
	s.lastReport = report
	s.mutex.Unlock()

	return report
}

// TriggerManualRun starts a report in the background. It returns false when one is already running.
func (s *CardSummaryReportService) TriggerManualRun() bool {
	if !s.tryStart() {
		logrus.Info("Card summary report already running, ignoring manual request")
		return false
	}

	logrus.Info("Starting manual card summary report")
	go s.execute()

	return true
}

// LastReport returns the outcome of the last finished run, or nil
func (s *CardSummaryReportService) LastReport() *domain.CardSummaryReport {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.lastReport
}

func (s *CardSummaryReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"running":     s.running,
		"cron":        s.config.CronSchedule,
		"enabled":     s.config.Enabled,
		"last_report": s.lastReport,
	}
}
