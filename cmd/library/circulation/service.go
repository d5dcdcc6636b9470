package circulation

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/library-circulation/cmd/library/circulation Repository,Notifier
//go:generate mockgen -destination=mocks/mock_tx.go -package=mocks -mock_names=Tx=MockTx database/sql/driver Tx
//go:generate mockgen -destination=../menu/mocks/mock_serviceapi.go -package=mocks github.com/library-circulation/cmd/library/circulation ServiceAPI

type ServiceAPI interface {
	AddBook(ctx context.Context, req AddBookRequest) (Book, error)
	GetBook(ctx context.Context, id string) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	AddMember(ctx context.Context, req AddMemberRequest) (Member, error)
	GetMember(ctx context.Context, id string) (Member, error)
	ListMembers(ctx context.Context) ([]MemberSummary, error)
	Borrow(ctx context.Context, bookID, memberID string) (Loan, error)
	Return(ctx context.Context, bookID, memberID string) (Receipt, error)
	ActiveBorrowCount(ctx context.Context, memberID string) (int, error)
	ListOpenLoans(ctx context.Context) ([]LoanView, error)
	ListOverdue(ctx context.Context) (OverdueReport, error)
	MemberStatement(ctx context.Context, memberID string) (Statement, error)
	Policy() Policy
}

// RecordFilter narrows a ledger scan. Empty fields match everything.
type RecordFilter struct {
	BookID   string
	MemberID string
	OpenOnly bool
}

type Repository interface {
	CreateBook(ctx context.Context, b Book) (Book, error)
	GetBookByID(ctx context.Context, id string) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	SetAvailableCopies(ctx context.Context, id string, available int) (Book, error)

	CreateMember(ctx context.Context, member Member) (Member, error)
	GetMemberByID(ctx context.Context, id string) (Member, error)
	ListMembers(ctx context.Context) ([]Member, error)

	CreateBorrowRecord(ctx context.Context, r BorrowRecord) (BorrowRecord, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returnedOn time.Time) (BorrowRecord, error)
	ListBorrowRecords(ctx context.Context, filter RecordFilter) ([]BorrowRecord, error)
	CountActiveBorrows(ctx context.Context, memberID string) (int, error)

	BeginTx(ctx context.Context) (Repository, driver.Tx, error)
}

// LateReturnNotice describes a return that produced a fine.
type LateReturnNotice struct {
	BookTitle   string
	MemberName  string
	OverdueDays int
	Fine        int
}

type Notifier interface {
	LateReturn(ctx context.Context, notice LateReturnNotice) error
}

const DefaultNotificationsTimeout = 2 * time.Second

type ServiceConfig struct {
	Policy Policy
	// NotificationsTimeout bounds each late return notice. Defaults to
	// DefaultNotificationsTimeout.
	NotificationsTimeout time.Duration
	// Clock is read once per operation. Defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger
}

type Service struct {
	repo                 Repository
	ntfy                 Notifier
	notificationsTimeout time.Duration
	policy               Policy
	now                  func() time.Time
	log                  *slog.Logger
}

func NewService(repo Repository, ntfy Notifier, cfg ServiceConfig) *Service {
	s := &Service{
		repo:                 repo,
		ntfy:                 ntfy,
		notificationsTimeout: cfg.NotificationsTimeout,
		policy:               cfg.Policy,
		now:                  cfg.Clock,
		log:                  cfg.Logger,
	}
	if s.notificationsTimeout <= 0 {
		s.notificationsTimeout = DefaultNotificationsTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Policy() Policy {
	return s.policy
}

// -- Catalog --

func (s *Service) AddBook(ctx context.Context, req AddBookRequest) (Book, error) {
	if err := ValidBookEntry(req); err != nil {
		return Book{}, err
	}

	newBook := Book{
		ID:              req.ID,
		Title:           req.Title,
		Author:          req.Author,
		TotalCopies:     req.Copies,
		AvailableCopies: req.Copies,
	}
	return s.repo.CreateBook(ctx, newBook)
}

func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooks(ctx)
}

// -- Roster --

func (s *Service) AddMember(ctx context.Context, req AddMemberRequest) (Member, error) {
	if err := ValidMemberEntry(req); err != nil {
		return Member{}, err
	}
	return s.repo.CreateMember(ctx, Member{ID: req.ID, Name: req.Name})
}

func (s *Service) GetMember(ctx context.Context, id string) (Member, error) {
	return s.repo.GetMemberByID(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context) ([]MemberSummary, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		active, err := s.repo.CountActiveBorrows(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, MemberSummary{Member: m, ActiveBorrows: active, Limit: s.policy.MaxActiveBorrows})
	}
	return summaries, nil
}

// -- Ledger --

/* Lends one copy of the book to the member. Every precondition and both writes run in one transaction. */
func (s *Service) Borrow(ctx context.Context, bookID, memberID string) (Loan, error) {
	now := s.now()

	txRepo, tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return Loan{}, fmt.Errorf("borrowing: %w", err)
	}
	defer tx.Rollback()

	bk, err := txRepo.GetBookByID(ctx, bookID)
	if err != nil {
		return Loan{}, err
	}
	member, err := txRepo.GetMemberByID(ctx, memberID)
	if err != nil {
		return Loan{}, err
	}
	if bk.AvailableCopies <= 0 {
		return Loan{}, fmt.Errorf("%q: %w", bk.Title, ErrResponseNoCopiesAvailable)
	}
	active, err := txRepo.CountActiveBorrows(ctx, memberID)
	if err != nil {
		return Loan{}, err
	}
	if active >= s.policy.MaxActiveBorrows {
		return Loan{}, fmt.Errorf("%w: limit is %d, currently borrowing %d", ErrResponseBorrowLimitReached, s.policy.MaxActiveBorrows, active)
	}

	record, err := txRepo.CreateBorrowRecord(ctx, BorrowRecord{
		ID:         uuid.New(),
		BookID:     bk.ID,
		MemberID:   member.ID,
		BorrowDate: DateOf(now),
		DueDate:    s.policy.DueDate(now),
	})
	if err != nil {
		return Loan{}, err
	}
	bk, err = txRepo.SetAvailableCopies(ctx, bk.ID, bk.AvailableCopies-1)
	if err != nil {
		return Loan{}, err
	}

	if err := tx.Commit(); err != nil {
		return Loan{}, fmt.Errorf("borrowing, committing: %w", err)
	}

	s.log.Debug("book borrowed", "book_id", bk.ID, "member_id", member.ID, "due", FormatDate(record.DueDate))
	return Loan{Record: record, Book: bk, Member: member}, nil
}

/* Closes the most recent open loan of the book by the member and assesses its fine. */
func (s *Service) Return(ctx context.Context, bookID, memberID string) (Receipt, error) {
	now := s.now()

	txRepo, tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return Receipt{}, fmt.Errorf("returning: %w", err)
	}
	defer tx.Rollback()

	open, err := txRepo.ListBorrowRecords(ctx, RecordFilter{BookID: bookID, MemberID: memberID, OpenOnly: true})
	if err != nil {
		return Receipt{}, err
	}
	if len(open) == 0 {
		return Receipt{}, fmt.Errorf("book %q, member %q: %w", bookID, memberID, ErrResponseNotBorrowed)
	}
	active := open[len(open)-1]

	bk, err := txRepo.GetBookByID(ctx, bookID)
	if err != nil {
		return Receipt{}, err
	}
	member, err := txRepo.GetMemberByID(ctx, memberID)
	if err != nil {
		return Receipt{}, err
	}

	record, err := txRepo.MarkReturned(ctx, active.ID, DateOf(now))
	if err != nil {
		return Receipt{}, err
	}
	bk, err = txRepo.SetAvailableCopies(ctx, bk.ID, bk.AvailableCopies+1)
	if err != nil {
		return Receipt{}, err
	}

	if err := tx.Commit(); err != nil {
		return Receipt{}, fmt.Errorf("returning, committing: %w", err)
	}

	receipt := Receipt{
		Record:      record,
		Book:        bk,
		Member:      member,
		OverdueDays: s.policy.OverdueDays(record.DueDate, now),
		Fine:        s.policy.Fine(record.DueDate, now),
	}
	s.log.Debug("book returned", "book_id", bk.ID, "member_id", member.ID, "overdue_days", receipt.OverdueDays, "fine", receipt.Fine)

	if receipt.Fine > 0 {
		s.notifyLateReturn(ctx, receipt)
	}
	return receipt, nil
}

func (s *Service) notifyLateReturn(ctx context.Context, receipt Receipt) {
	if s.ntfy == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.notificationsTimeout)
	defer cancel()

	err := s.ntfy.LateReturn(ctx, LateReturnNotice{
		BookTitle:   receipt.Book.Title,
		MemberName:  receipt.Member.Name,
		OverdueDays: receipt.OverdueDays,
		Fine:        receipt.Fine,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Warn("late return notification timed out", "book_id", receipt.Book.ID, "error", err)
			return
		}
		s.log.Warn("late return notification failed", "book_id", receipt.Book.ID, "error", err)
	}
}

func (s *Service) ActiveBorrowCount(ctx context.Context, memberID string) (int, error) {
	return s.repo.CountActiveBorrows(ctx, memberID)
}

// -- Views --

func (s *Service) ListOpenLoans(ctx context.Context) ([]LoanView, error) {
	records, err := s.repo.ListBorrowRecords(ctx, RecordFilter{OpenOnly: true})
	if err != nil {
		return nil, err
	}
	return s.views(ctx, records, s.now())
}

func (s *Service) ListOverdue(ctx context.Context) (OverdueReport, error) {
	now := s.now()
	records, err := s.repo.ListBorrowRecords(ctx, RecordFilter{OpenOnly: true})
	if err != nil {
		return OverdueReport{}, err
	}
	views, err := s.views(ctx, records, now)
	if err != nil {
		return OverdueReport{}, err
	}

	report := OverdueReport{Items: []LoanView{}}
	for _, v := range views {
		if v.OverdueDays == 0 {
			continue
		}
		report.Items = append(report.Items, v)
		report.TotalFine += v.Fine
	}
	return report, nil
}

func (s *Service) MemberStatement(ctx context.Context, memberID string) (Statement, error) {
	now := s.now()
	member, err := s.repo.GetMemberByID(ctx, memberID)
	if err != nil {
		return Statement{}, err
	}
	records, err := s.repo.ListBorrowRecords(ctx, RecordFilter{MemberID: memberID, OpenOnly: true})
	if err != nil {
		return Statement{}, err
	}
	views, err := s.views(ctx, records, now)
	if err != nil {
		return Statement{}, err
	}

	statement := Statement{
		Member:        member,
		Loans:         views,
		ActiveBorrows: len(records),
		Limit:         s.policy.MaxActiveBorrows,
	}
	for _, v := range views {
		statement.TotalFine += v.Fine
	}
	return statement, nil
}

// views joins records with their book and member. Records whose book or
// member cannot be found are left out.
func (s *Service) views(ctx context.Context, records []BorrowRecord, now time.Time) ([]LoanView, error) {
	views := []LoanView{}
	for _, r := range records {
		bk, err := s.repo.GetBookByID(ctx, r.BookID)
		if errors.Is(err, ErrResponseBookNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		member, err := s.repo.GetMemberByID(ctx, r.MemberID)
		if errors.Is(err, ErrResponseMemberNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		views = append(views, LoanView{
			Record:      r,
			Book:        bk,
			Member:      member,
			OverdueDays: s.policy.OverdueDays(r.DueDate, now),
			Fine:        s.policy.Fine(r.DueDate, now),
		})
	}
	return views, nil
}
