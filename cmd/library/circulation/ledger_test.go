package circulation_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/library-circulation/cmd/library/circulation"
	"github.com/library-circulation/cmd/library/inmemory"
	"github.com/matryer/is"
)

// library wires a service to a fresh store with a clock the test can move.
type library struct {
	*circulation.Service
	today time.Time
}

func newLibrary(t *testing.T, today string) *library {
	t.Helper()
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		t.Fatal(err)
	}

	l := &library{today: mustDate(t, today)}
	l.Service = circulation.NewService(store, nil, circulation.ServiceConfig{
		Policy:               circulation.DefaultPolicy(),
		NotificationsTimeout: notificationsTimeout,
		Clock:                func() time.Time { return l.today },
	})
	return l
}

func (l *library) advance(days int) {
	l.today = l.today.AddDate(0, 0, days)
}

func (l *library) mustAddBook(t *testing.T, id, title string, copies int) {
	t.Helper()
	if _, err := l.AddBook(ctx, circulation.AddBookRequest{ID: id, Title: title, Author: "Anon", Copies: copies}); err != nil {
		t.Fatal(err)
	}
}

func (l *library) mustAddMember(t *testing.T, id, name string) {
	t.Helper()
	if _, err := l.AddMember(ctx, circulation.AddMemberRequest{ID: id, Name: name}); err != nil {
		t.Fatal(err)
	}
}

func (l *library) available(t *testing.T, bookID string) int {
	t.Helper()
	b, err := l.GetBook(ctx, bookID)
	if err != nil {
		t.Fatal(err)
	}
	return b.AvailableCopies
}

func TestLedgerScenarios(t *testing.T) {

	t.Run("one copy passes from one member to another", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")
		l.mustAddMember(t, "M2", "Hanako")

		_, err := l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(l.available(t, "B1"), 0)

		_, err = l.Borrow(ctx, "B1", "M2")
		is.True(errors.Is(err, circulation.ErrResponseNoCopiesAvailable))

		_, err = l.Return(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(l.available(t, "B1"), 1)

		_, err = l.Borrow(ctx, "B1", "M2")
		is.NoErr(err)
		is.Equal(l.available(t, "B1"), 0)

		loans, err := l.ListOpenLoans(ctx)
		is.NoErr(err)
		is.Equal(len(loans), 1)
		is.Equal(loans[0].Member.ID, "M2")
	})

	t.Run("a late return is fined per day past due", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2023-12-25")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")

		loan, err := l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(circulation.FormatDate(loan.Record.DueDate), "2024-01-01")

		l.today = mustDate(t, "2024-01-04")
		receipt, err := l.Return(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(receipt.OverdueDays, 3)
		is.Equal(receipt.Fine, 300)
		is.Equal(circulation.FormatDate(receipt.Record.ReturnDate), "2024-01-04")

		// a receipt reads like any other loan view
		var view circulation.LoanView = receipt
		is.Equal(view.Book.Title, "Kokoro")
	})

	t.Run("returning on the due date costs nothing", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")

		_, err := l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)

		l.advance(circulation.DefaultBorrowDays)
		receipt, err := l.Return(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(receipt.OverdueDays, 0)
		is.Equal(receipt.Fine, 0)
	})

	t.Run("the sixth borrow is refused", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddMember(t, "M1", "Taro")
		for i := 1; i <= 6; i++ {
			l.mustAddBook(t, fmt.Sprintf("B%d", i), fmt.Sprintf("Book %d", i), 1)
		}

		for i := 1; i <= 5; i++ {
			_, err := l.Borrow(ctx, fmt.Sprintf("B%d", i), "M1")
			is.NoErr(err)
		}

		_, err := l.Borrow(ctx, "B6", "M1")
		is.True(errors.Is(err, circulation.ErrResponseBorrowLimitReached))
		is.Equal(l.available(t, "B6"), 1)

		count, err := l.ActiveBorrowCount(ctx, "M1")
		is.NoErr(err)
		is.Equal(count, 5)

		_, err = l.Return(ctx, "B3", "M1")
		is.NoErr(err)
		_, err = l.Borrow(ctx, "B6", "M1")
		is.NoErr(err)
	})

	t.Run("a member may hold two copies of the same book", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 2)
		l.mustAddMember(t, "M1", "Taro")

		_, err := l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)
		l.advance(2)
		_, err = l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(l.available(t, "B1"), 0)

		// the later loan is due 2024-01-10, the earlier one 2024-01-08
		l.today = mustDate(t, "2024-01-12")
		receipt, err := l.Return(ctx, "B1", "M1")
		is.NoErr(err)
		is.Equal(circulation.FormatDate(receipt.Record.DueDate), "2024-01-10")
		is.Equal(receipt.Fine, 200)

		st, err := l.MemberStatement(ctx, "M1")
		is.NoErr(err)
		is.Equal(st.ActiveBorrows, 1)
		is.Equal(circulation.FormatDate(st.Loans[0].Record.DueDate), "2024-01-08")
	})
}

func TestLedgerFailuresLeaveStateUnchanged(t *testing.T) {

	t.Run("returning a pair that was never borrowed", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 2)
		l.mustAddMember(t, "M1", "Taro")
		l.mustAddMember(t, "M2", "Hanako")

		_, err := l.Borrow(ctx, "B1", "M2")
		is.NoErr(err)

		_, err = l.Return(ctx, "B1", "M1")
		is.True(errors.Is(err, circulation.ErrResponseNotBorrowed))
		is.Equal(l.available(t, "B1"), 1)

		loans, err := l.ListOpenLoans(ctx)
		is.NoErr(err)
		is.Equal(len(loans), 1)
	})

	t.Run("returning twice", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")

		_, err := l.Borrow(ctx, "B1", "M1")
		is.NoErr(err)
		_, err = l.Return(ctx, "B1", "M1")
		is.NoErr(err)

		_, err = l.Return(ctx, "B1", "M1")
		is.True(errors.Is(err, circulation.ErrResponseNotBorrowed))
		is.Equal(l.available(t, "B1"), 1)
	})

	t.Run("unknown book or member", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")

		_, err := l.Borrow(ctx, "B9", "M1")
		is.True(errors.Is(err, circulation.ErrResponseBookNotFound))

		_, err = l.Borrow(ctx, "B1", "M9")
		is.True(errors.Is(err, circulation.ErrResponseMemberNotFound))
		is.Equal(l.available(t, "B1"), 1)

		count, err := l.ActiveBorrowCount(ctx, "M1")
		is.NoErr(err)
		is.Equal(count, 0)
	})

	t.Run("duplicate ids are conflicts", func(t *testing.T) {
		is := is.New(t)
		l := newLibrary(t, "2024-01-01")
		l.mustAddBook(t, "B1", "Kokoro", 1)
		l.mustAddMember(t, "M1", "Taro")

		_, err := l.AddBook(ctx, circulation.AddBookRequest{ID: "B1", Title: "Other", Copies: 4})
		is.True(errors.Is(err, circulation.ErrResponseBookConflict))
		is.Equal(circulation.KindOf(err), circulation.KindConflict)

		_, err = l.AddMember(ctx, circulation.AddMemberRequest{ID: "M1", Name: "Other"})
		is.True(errors.Is(err, circulation.ErrResponseMemberConflict))

		b, err := l.GetBook(ctx, "B1")
		is.NoErr(err)
		is.Equal(b.Title, "Kokoro")
		is.Equal(b.TotalCopies, 1)
	})
}

// Random borrows and returns never break the copy count or the borrow limit.
func TestLedgerInvariants(t *testing.T) {
	is := is.New(t)
	l := newLibrary(t, "2024-01-01")

	books := map[string]int{"B1": 1, "B2": 2, "B3": 3, "B4": 1}
	for id, copies := range books {
		l.mustAddBook(t, id, "Title "+id, copies)
	}
	members := []string{"M1", "M2", "M3"}
	for _, id := range members {
		l.mustAddMember(t, id, "Name "+id)
	}
	bookIDs := []string{"B1", "B2", "B3", "B4"}

	r := rand.New(rand.NewSource(42))
	for step := 0; step < 500; step++ {
		bookID := bookIDs[r.Intn(len(bookIDs))]
		memberID := members[r.Intn(len(members))]
		if r.Intn(2) == 0 {
			_, err := l.Borrow(ctx, bookID, memberID)
			is.True(err == nil || circulation.KindOf(err) == circulation.KindPreconditionFailed)
		} else {
			_, err := l.Return(ctx, bookID, memberID)
			is.True(err == nil || errors.Is(err, circulation.ErrResponseNotBorrowed))
		}
		if step%7 == 0 {
			l.advance(1)
		}

		loans, err := l.ListOpenLoans(ctx)
		is.NoErr(err)
		open := map[string]int{}
		perMember := map[string]int{}
		for _, loan := range loans {
			open[loan.Book.ID]++
			perMember[loan.Member.ID]++
		}
		for id, total := range books {
			available := l.available(t, id)
			is.True(available >= 0 && available <= total)
			is.Equal(available, total-open[id])
		}
		for _, id := range members {
			is.True(perMember[id] <= circulation.DefaultMaxActiveBorrows)
			count, err := l.ActiveBorrowCount(ctx, id)
			is.NoErr(err)
			is.Equal(count, perMember[id])
		}
	}
}

func TestViews(t *testing.T) {
	is := is.New(t)
	l := newLibrary(t, "2024-01-01")
	l.mustAddBook(t, "B1", "Kokoro", 1)
	l.mustAddBook(t, "B2", "Sanshiro", 1)
	l.mustAddBook(t, "B3", "Botchan", 1)
	l.mustAddMember(t, "M1", "Taro")
	l.mustAddMember(t, "M2", "Hanako")

	_, err := l.Borrow(ctx, "B1", "M1")
	is.NoErr(err)
	l.advance(3)
	_, err = l.Borrow(ctx, "B2", "M1")
	is.NoErr(err)
	_, err = l.Borrow(ctx, "B3", "M2")
	is.NoErr(err)

	// B1 is due 2024-01-08, B2 and B3 on 2024-01-11
	l.today = mustDate(t, "2024-01-10")

	t.Run("open loans in borrowing order", func(t *testing.T) {
		is := is.New(t)

		loans, err := l.ListOpenLoans(ctx)
		is.NoErr(err)
		is.Equal(len(loans), 3)
		is.Equal(loans[0].Book.ID, "B1")
		is.Equal(loans[1].Book.ID, "B2")
		is.Equal(loans[2].Book.ID, "B3")
		is.Equal(loans[0].OverdueDays, 2)
		is.Equal(loans[1].OverdueDays, 0)
	})

	t.Run("only overdue loans are fined", func(t *testing.T) {
		is := is.New(t)

		report, err := l.ListOverdue(ctx)
		is.NoErr(err)
		is.Equal(len(report.Items), 1)
		is.Equal(report.Items[0].Member.Name, "Taro")
		is.Equal(report.TotalFine, 200)
	})

	t.Run("statement of one member", func(t *testing.T) {
		is := is.New(t)

		st, err := l.MemberStatement(ctx, "M1")
		is.NoErr(err)
		is.Equal(st.Member.Name, "Taro")
		is.Equal(st.ActiveBorrows, 2)
		is.Equal(st.Limit, circulation.DefaultMaxActiveBorrows)
		is.Equal(st.TotalFine, 200)

		_, err = l.MemberStatement(ctx, "M9")
		is.True(errors.Is(err, circulation.ErrResponseMemberNotFound))
	})

	t.Run("members with their borrow counts", func(t *testing.T) {
		is := is.New(t)

		summaries, err := l.ListMembers(ctx)
		is.NoErr(err)
		is.Equal(len(summaries), 2)
		is.Equal(summaries[0].Member.ID, "M1")
		is.Equal(summaries[0].ActiveBorrows, 2)
		is.Equal(summaries[1].ActiveBorrows, 1)
	})

	t.Run("nothing overdue once everything is back", func(t *testing.T) {
		is := is.New(t)

		for _, pair := range [][2]string{{"B1", "M1"}, {"B2", "M1"}, {"B3", "M2"}} {
			_, err := l.Return(ctx, pair[0], pair[1])
			is.NoErr(err)
		}
		report, err := l.ListOverdue(ctx)
		is.NoErr(err)
		is.Equal(len(report.Items), 0)
		is.Equal(report.TotalFine, 0)

		st, err := l.MemberStatement(ctx, "M1")
		is.NoErr(err)
		is.Equal(st.ActiveBorrows, 0)
		is.Equal(len(st.Loans), 0)
	})
}
