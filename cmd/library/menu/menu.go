package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/library-circulation/cmd/library/circulation"
)

const (
	choiceAddBook = iota + 1
	choiceListBooks
	choiceSearchBook
	choiceAddMember
	choiceListMembers
	choiceBorrow
	choiceListOpenLoans
	choiceReturn
	choiceOverdueFines
	choiceMemberStatement
	choiceExit
)

var errEndOfInput = errors.New("end of input")

type Options struct {
	// Interactive turns on the banner, the menu listing and the prompts.
	Interactive bool
}

type Menu struct {
	service     circulation.ServiceAPI
	rd          *bufio.Reader
	readErr     error
	out         io.Writer
	interactive bool
}

func New(service circulation.ServiceAPI, in io.Reader, out io.Writer, opts Options) *Menu {
	return &Menu{
		service:     service,
		rd:          bufio.NewReader(in),
		out:         out,
		interactive: opts.Interactive,
	}
}

/* Reads choices until the exit choice or the end of input. Operation errors are printed and the loop goes on. */
func (m *Menu) Run(ctx context.Context) error {
	if m.interactive {
		p := m.service.Policy()
		m.printf("\n=== Library Circulation ===\n")
		m.printf("Loan period: %d days\n", p.BorrowDays)
		m.printf("Fine: %d per day\n", p.FinePerDay)
		m.printf("Borrow limit: %d books\n", p.MaxActiveBorrows)
	}

	for {
		m.printMenu()
		line, err := m.ask(fmt.Sprintf("\nChoose an operation (%d-%d): ", choiceAddBook, choiceExit))
		if err != nil {
			return m.readErr
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			m.report(fmt.Errorf("%w, got %q", circulation.ErrResponseInvalidInteger, line))
			continue
		}
		if choice == choiceExit {
			m.printf("\nExiting the library circulation tracker.\n")
			return nil
		}

		err = m.dispatch(ctx, choice)
		if errors.Is(err, errEndOfInput) {
			return m.readErr
		}
		if err != nil {
			m.report(err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAddBook:
		return m.addBook(ctx)
	case choiceListBooks:
		return m.listBooks(ctx)
	case choiceSearchBook:
		return m.searchBook(ctx)
	case choiceAddMember:
		return m.addMember(ctx)
	case choiceListMembers:
		return m.listMembers(ctx)
	case choiceBorrow:
		return m.borrow(ctx)
	case choiceListOpenLoans:
		return m.listOpenLoans(ctx)
	case choiceReturn:
		return m.returnBook(ctx)
	case choiceOverdueFines:
		return m.overdueFines(ctx)
	case choiceMemberStatement:
		return m.memberStatement(ctx)
	default:
		return fmt.Errorf("%w: choose a number from %d to %d", circulation.ErrResponseInvalidChoice, choiceAddBook, choiceExit)
	}
}

func (m *Menu) printMenu() {
	if !m.interactive {
		return
	}
	rule := strings.Repeat("=", 40)
	m.printf("\n%s\nLibrary Circulation Menu\n%s\n", rule, rule)
	m.printf("1: Add a book\n")
	m.printf("2: List books\n")
	m.printf("3: Search a book\n")
	m.printf("4: Add a member\n")
	m.printf("5: List members\n")
	m.printf("6: Borrow a book\n")
	m.printf("7: List books on loan\n")
	m.printf("8: Return a book\n")
	m.printf("9: Overdue fines\n")
	m.printf("10: Member statement\n")
	m.printf("11: Exit\n")
	m.printf("%s\n", rule)
}

// ask prints prompt when interactive and reads one trimmed line of any
// length. A last line without a newline still counts.
func (m *Menu) ask(prompt string) (string, error) {
	if m.interactive {
		m.printf("%s", prompt)
	}
	line, err := m.rd.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if !errors.Is(err, io.EOF) {
			m.readErr = err
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) askInt(prompt string) (int, error) {
	line, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", circulation.ErrResponseInvalidInteger, line)
	}
	return n, nil
}

func (m *Menu) report(err error) {
	switch circulation.KindOf(err) {
	case circulation.KindInputFormat:
		m.printf("\nInput error: %v\n", err)
	case circulation.KindInternal:
		m.printf("\nUnexpected error: %v\n", err)
	default:
		m.printf("\nError: %v\n", err)
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
