package circulation

import "time"

const (
	DefaultBorrowDays       = 7
	DefaultMaxActiveBorrows = 5
	DefaultFinePerDay       = 100
)

// Policy holds the circulation rules: loan period, how many open loans a
// member may hold and the per-day fine in integer currency units.
type Policy struct {
	BorrowDays       int
	MaxActiveBorrows int
	FinePerDay       int
}

func DefaultPolicy() Policy {
	return Policy{
		BorrowDays:       DefaultBorrowDays,
		MaxActiveBorrows: DefaultMaxActiveBorrows,
		FinePerDay:       DefaultFinePerDay,
	}
}

// DueDate is the calendar day a loan started on borrowedAt must be back.
func (p Policy) DueDate(borrowedAt time.Time) time.Time {
	return DateOf(borrowedAt).AddDate(0, 0, p.BorrowDays)
}

// OverdueDays counts the whole days by which the calendar day of now is past
// due. It is never negative.
func (p Policy) OverdueDays(due, now time.Time) int {
	days := int(DateOf(now).Sub(DateOf(due)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func (p Policy) Fine(due, now time.Time) int {
	return p.OverdueDays(due, now) * p.FinePerDay
}
