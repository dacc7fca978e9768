package sips

import (
	"context"

	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

// Repository is the append-only sip ledger. Add never updates or deletes;
// CountByDate matches on the precomputed server-local date string.
// Orphan events (username without a credential record) are tolerated.
type Repository interface {
	Add(ctx context.Context, sip *models.Sip) error
	CountByDate(ctx context.Context, username, date string) (int, error)
	DayTotals(ctx context.Context, username string) ([]models.DayTotal, error)
}
