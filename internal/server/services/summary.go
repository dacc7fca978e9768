package services

import "github.com/dmitrijs2005/hydrohabit/internal/server/models"

// Summary holds the derived daily metrics for one user. All fields are pure
// functions of today's sip count.
type Summary struct {
	DailySips int
	DailyML   int
	GoalML    int
	// Progress is DailyML/GoalML clamped to 1.0: the display never exceeds
	// 100% however much the user over-drinks.
	Progress float64
}

// NewSummary derives the metrics from a daily sip count.
func NewSummary(dailySips int) Summary {
	dailyML := dailySips * models.SipAmountML

	progress := float64(dailyML) / float64(models.DailyGoalML)
	if progress > 1.0 {
		progress = 1.0
	}

	return Summary{
		DailySips: dailySips,
		DailyML:   dailyML,
		GoalML:    models.DailyGoalML,
		Progress:  progress,
	}
}
