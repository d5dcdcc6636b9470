package menu

import (
	"context"
	"fmt"

	"github.com/library-circulation/cmd/library/circulation"
)

// -- Catalog --

/* Reads the four book fields, then adds the book. Nothing is stored if copies is not an integer. */
func (m *Menu) addBook(ctx context.Context) error {
	id, err := m.ask("Book ID: ")
	if err != nil {
		return err
	}
	title, err := m.ask("Title: ")
	if err != nil {
		return err
	}
	author, err := m.ask("Author: ")
	if err != nil {
		return err
	}
	copies, err := m.askInt("Copies: ")
	if err != nil {
		return err
	}

	b, err := m.service.AddBook(ctx, circulation.AddBookRequest{ID: id, Title: title, Author: author, Copies: copies})
	if err != nil {
		return err
	}
	m.printf("Added book %q (ID: %s, author: %s, copies: %d).\n", b.Title, b.ID, b.Author, b.TotalCopies)
	return nil
}

func (m *Menu) listBooks(ctx context.Context) error {
	books, err := m.service.ListBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		m.printf("No books are registered.\n")
		return nil
	}

	m.printf("\n--- Books ---\n")
	for _, b := range books {
		m.printBook(b)
	}
	return nil
}

func (m *Menu) searchBook(ctx context.Context) error {
	id, err := m.ask("Book ID to search: ")
	if err != nil {
		return err
	}

	b, err := m.service.GetBook(ctx, id)
	if err != nil {
		return err
	}
	m.printf("\n")
	m.printBook(b)
	return nil
}

func (m *Menu) printBook(b circulation.Book) {
	m.printf("ID: %s, Title: %s, Author: %s, Total: %d, Available: %d\n", b.ID, b.Title, b.Author, b.TotalCopies, b.AvailableCopies)
}

// -- Roster --

func (m *Menu) addMember(ctx context.Context) error {
	id, err := m.ask("Member ID: ")
	if err != nil {
		return err
	}
	name, err := m.ask("Name: ")
	if err != nil {
		return err
	}

	member, err := m.service.AddMember(ctx, circulation.AddMemberRequest{ID: id, Name: name})
	if err != nil {
		return err
	}
	m.printf("Added member %q (ID: %s).\n", member.Name, member.ID)
	return nil
}

func (m *Menu) listMembers(ctx context.Context) error {
	members, err := m.service.ListMembers(ctx)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		m.printf("No members are registered.\n")
		return nil
	}

	m.printf("\n--- Members ---\n")
	for _, s := range members {
		m.printf("ID: %s, Name: %s, Borrowing: %d/%d\n", s.Member.ID, s.Member.Name, s.ActiveBorrows, s.Limit)
	}
	return nil
}

// -- Ledger --

func (m *Menu) borrow(ctx context.Context) error {
	bookID, err := m.ask("Book ID to borrow: ")
	if err != nil {
		return err
	}
	memberID, err := m.ask("Member ID: ")
	if err != nil {
		return err
	}

	loan, err := m.service.Borrow(ctx, bookID, memberID)
	if err != nil {
		return err
	}
	m.printf("\nLent %q to %s.\n", loan.Book.Title, loan.Member.Name)
	m.printf("Borrowed: %s\n", circulation.FormatDate(loan.Record.BorrowDate))
	m.printf("Due: %s\n", circulation.FormatDate(loan.Record.DueDate))
	return nil
}

func (m *Menu) listOpenLoans(ctx context.Context) error {
	loans, err := m.service.ListOpenLoans(ctx)
	if err != nil {
		return err
	}

	m.printf("\n--- Books on loan ---\n")
	if len(loans) == 0 {
		m.printf("No books are currently on loan.\n")
		return nil
	}
	for _, l := range loans {
		status := ""
		if l.OverdueDays > 0 {
			status = fmt.Sprintf(" [overdue %d days]", l.OverdueDays)
		}
		m.printf("Book: %s (ID: %s)\n", l.Book.Title, l.Book.ID)
		m.printf("  Member: %s (ID: %s)\n", l.Member.Name, l.Member.ID)
		m.printf("  Borrowed: %s, Due: %s%s\n\n", circulation.FormatDate(l.Record.BorrowDate), circulation.FormatDate(l.Record.DueDate), status)
	}
	return nil
}

func (m *Menu) returnBook(ctx context.Context) error {
	bookID, err := m.ask("Book ID to return: ")
	if err != nil {
		return err
	}
	memberID, err := m.ask("Member ID: ")
	if err != nil {
		return err
	}

	receipt, err := m.service.Return(ctx, bookID, memberID)
	if err != nil {
		return err
	}
	m.printf("\n%q has been returned.\n", receipt.Book.Title)
	if receipt.OverdueDays > 0 {
		m.printf("Overdue days: %d\n", receipt.OverdueDays)
		m.printf("Fine: %d\n", receipt.Fine)
	} else {
		m.printf("Returned on time.\n")
	}
	return nil
}

func (m *Menu) overdueFines(ctx context.Context) error {
	report, err := m.service.ListOverdue(ctx)
	if err != nil {
		return err
	}

	m.printf("\n--- Overdue fines ---\n")
	if len(report.Items) == 0 {
		m.printf("No loans are overdue.\n")
		return nil
	}
	for _, l := range report.Items {
		m.printf("Book: %s (ID: %s)\n", l.Book.Title, l.Book.ID)
		m.printf("  Member: %s (ID: %s)\n", l.Member.Name, l.Member.ID)
		m.printf("  Due: %s\n", circulation.FormatDate(l.Record.DueDate))
		m.printf("  Overdue days: %d, Fine: %d\n\n", l.OverdueDays, l.Fine)
	}
	m.printf("Overdue loans: %d, total fines: %d\n", len(report.Items), report.TotalFine)
	return nil
}

func (m *Menu) memberStatement(ctx context.Context) error {
	memberID, err := m.ask("Member ID: ")
	if err != nil {
		return err
	}

	st, err := m.service.MemberStatement(ctx, memberID)
	if err != nil {
		return err
	}

	m.printf("\n--- Loans of %s (ID: %s) ---\n", st.Member.Name, st.Member.ID)
	for _, l := range st.Loans {
		status := " [on time]"
		if l.OverdueDays > 0 {
			status = fmt.Sprintf(" [overdue %d days, fine %d]", l.OverdueDays, l.Fine)
		}
		m.printf("Book: %s (ID: %s)\n", l.Book.Title, l.Book.ID)
		m.printf("  Borrowed: %s, Due: %s%s\n", circulation.FormatDate(l.Record.BorrowDate), circulation.FormatDate(l.Record.DueDate), status)
	}

	m.printf("\nCurrently borrowing: %d/%d\n", st.ActiveBorrows, st.Limit)
	if st.TotalFine > 0 {
		m.printf("Total fines: %d\n", st.TotalFine)
	}
	if st.ActiveBorrows == 0 {
		m.printf("This member has no books on loan.\n")
	}
	return nil
}
