package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
	"github.com/dmitrijs2005/hydrohabit/internal/server/repositories/repomanager"
)

// SipService owns the sip ledger and the derived daily metrics.
type SipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSipService(db *sql.DB, m repomanager.RepositoryManager) *SipService {
	return &SipService{db: db, repomanager: m}
}

// LogSip appends one fixed-size event for username, stamped with the
// current time and the current server-local date.
func (s *SipService) LogSip(ctx context.Context, username string) error {

	now := time.Now()
	sip := &models.Sip{
		Username:  username,
		Timestamp: now,
		AmountML:  models.SipAmountML,
		Date:      now.Format(models.DayFormat),
	}

	repo := s.repomanager.Sips(s.db)
	if err := repo.Add(ctx, sip); err != nil {
		return fmt.Errorf("error logging sip: %w", err)
	}

	return nil
}

// CountToday returns the number of events for username on the current
// server-local calendar day.
func (s *SipService) CountToday(ctx context.Context, username string) (int, error) {

	repo := s.repomanager.Sips(s.db)

	count, err := repo.CountByDate(ctx, username, models.Today())
	if err != nil {
		return 0, fmt.Errorf("error counting sips: %w", err)
	}

	return count, nil
}

// Summary recomputes the daily metrics from the ledger. Nothing is cached:
// the result is always consistent with a direct count of today's events.
func (s *SipService) Summary(ctx context.Context, username string) (Summary, error) {

	count, err := s.CountToday(ctx, username)
	if err != nil {
		return Summary{}, err
	}

	return NewSummary(count), nil
}

// History returns per-day totals for username, newest day first.
func (s *SipService) History(ctx context.Context, username string) ([]models.DayTotal, error) {

	repo := s.repomanager.Sips(s.db)

	totals, err := repo.DayTotals(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}

	return totals, nil
}
