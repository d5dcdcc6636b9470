package circulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the only date format accepted from input and shown on output.
const DateLayout = "2006-01-02"

type Book struct {
	ID              string
	Title           string
	Author          string
	TotalCopies     int
	AvailableCopies int
}

type Member struct {
	ID   string
	Name string
}

// BorrowRecord is one loan in the ledger. It is appended on borrow and
// mutated exactly once, on return.
type BorrowRecord struct {
	ID         uuid.UUID
	BookID     string
	MemberID   string
	BorrowDate time.Time
	DueDate    time.Time
	Returned   bool
	ReturnDate time.Time
}

type AddBookRequest struct {
	ID     string
	Title  string
	Author string
	Copies int
}

type AddMemberRequest struct {
	ID   string
	Name string
}

/* Verifies the entry before the book reaches the catalog. */
func ValidBookEntry(req AddBookRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return ErrResponseBlankID
	}
	if req.Copies <= 0 {
		return fmt.Errorf("%d copies: %w", req.Copies, ErrResponseInvalidCopies)
	}
	return nil
}

/* Verifies the entry before the member reaches the roster. */
func ValidMemberEntry(req AddMemberRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return ErrResponseBlankID
	}
	return nil
}

// MemberSummary is a roster entry annotated with its current loans.
type MemberSummary struct {
	Member        Member
	ActiveBorrows int
	Limit         int
}

// Loan is what a successful borrow hands back for display.
type Loan struct {
	Record BorrowRecord
	Book   Book
	Member Member
}

// LoanView is an open record joined with its book and member, evaluated
// against a single "now".
type LoanView struct {
	Record      BorrowRecord
	Book        Book
	Member      Member
	OverdueDays int
	Fine        int
}

// Receipt is what a successful return hands back: the closed record with the
// fine it was assessed.
type Receipt = LoanView

type OverdueReport struct {
	Items     []LoanView
	TotalFine int
}

type Statement struct {
	Member        Member
	Loans         []LoanView
	ActiveBorrows int
	Limit         int
	TotalFine     int
}

/* Parses a YYYY-MM-DD string into a calendar date. */
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrResponseInvalidDate)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf returns the calendar day of t, as UTC midnight, so that day
// arithmetic is exact.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
