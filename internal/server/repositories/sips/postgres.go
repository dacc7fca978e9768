package sips

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hydrohabit/internal/dbx"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, sip *models.Sip) error {

	query :=
		`INSERT INTO sips (username, ts, amount_ml, date)
         VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		sip.Username, sip.Timestamp, sip.AmountML, sip.Date)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CountByDate(ctx context.Context, username, date string) (int, error) {
	query :=
		`SELECT count(*) FROM sips
		 WHERE username = $1 AND date = $2
		 `

	var count int
	err := r.db.QueryRowContext(ctx, query, username, date).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) DayTotals(ctx context.Context, username string) ([]models.DayTotal, error) {
	query :=
		`SELECT date, sum(amount_ml) FROM sips
		 WHERE username = $1
		 GROUP BY date
		 ORDER BY date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var totals []models.DayTotal
	for rows.Next() {
		var t models.DayTotal
		if err := rows.Scan(&t.Date, &t.TotalML); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return totals, nil
}
