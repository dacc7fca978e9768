package sips

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

// MemoryRepository keeps the ledger as an ordered in-process slice, used
// when the database is unreachable.
type MemoryRepository struct {
	mu   sync.RWMutex
	sips []models.Sip
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Add(ctx context.Context, sip *models.Sip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *sip
	s.ID = uuid.NewString()
	r.sips = append(r.sips, s)

	return nil
}

func (r *MemoryRepository) CountByDate(ctx context.Context, username, date string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, s := range r.sips {
		if s.Username == username && s.Date == date {
			count++
		}
	}

	return count, nil
}

func (r *MemoryRepository) DayTotals(ctx context.Context, username string) ([]models.DayTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDate := make(map[string]int)
	for _, s := range r.sips {
		if s.Username == username {
			byDate[s.Date] += s.AmountML
		}
	}

	totals := make([]models.DayTotal, 0, len(byDate))
	for date, ml := range byDate {
		totals = append(totals, models.DayTotal{Date: date, TotalML: ml})
	}

	// newest first, same as the Postgres query
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date > totals[j].Date })

	return totals, nil
}
