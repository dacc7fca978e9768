package models

import "time"

// SipAmountML is the fixed volume of one logged sip. There is no variable
// dosing.
const SipAmountML = 250

// DailyGoalML is the fixed daily target (8 sips).
const DailyGoalML = 2000

// Sip is one consumption event. Date duplicates Timestamp as a server-local
// YYYY-MM-DD string so same-day counting is a plain equality match.
// Events are append-only: never mutated, never deleted.
type Sip struct {
	ID        string
	Username  string
	Timestamp time.Time
	AmountML  int
	Date      string
}

// DayTotal is a per-day aggregate used by the history view.
type DayTotal struct {
	Date    string
	TotalML int
}

// DayFormat is the layout of the precomputed Date column.
const DayFormat = "2006-01-02"

// Today returns the current calendar day in the server's local timezone.
// Day boundaries are local midnight; there is no per-user timezone handling.
func Today() string {
	return time.Now().Format(DayFormat)
}
