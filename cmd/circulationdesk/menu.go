package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/desk"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// errInputClosed unwinds all menus when the input ends.
var errInputClosed = errors.New("input closed")

const finishedLoansShown = 20

// Menu is the thin dispatcher between the terminal and the Desk. It holds no business logic.
type Menu struct {
	desk *desk.Desk
	in   *bufio.Scanner
	out  io.Writer
}

// NewMenu creates a Menu reading options and input lines from in.
func NewMenu(d *desk.Desk, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		desk: d,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is canceled.
func (m *Menu) Run(ctx context.Context) error {
	err := m.mainMenu(ctx)
	if errors.Is(err, errInputClosed) {
		return nil
	}

	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.header("MAIN MENU")
		m.printf("Today: day %d\n\n", m.desk.Today())
		m.printf("1. Manage books\n")
		m.printf("2. Manage patrons\n")
		m.printf("3. Check out a book\n")
		m.printf("4. Return a book\n")
		m.printf("5. Reports\n")
		m.printf("6. Manage time\n")
		m.printf("7. Exit\n")

		option, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.booksMenu(ctx)
		case "2":
			err = m.patronsMenu(ctx)
		case "3":
			err = m.checkOut(ctx)
		case "4":
			err = m.returnBook(ctx)
		case "5":
			err = m.reportsMenu(ctx)
		case "6":
			err = m.timeMenu()
		case "7":
			m.printf("Closing the circulation desk. See you soon!\n")
			return nil
		default:
			m.printf("Invalid option, please try again.\n")
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) booksMenu(ctx context.Context) error {
	for {
		m.header("MANAGE BOOKS")
		m.printf("1. Catalog a new book\n")
		m.printf("2. List all books\n")
		m.printf("3. Search books\n")
		m.printf("4. Back to the main menu\n")

		option, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.catalogBook(ctx)
		case "2":
			err = m.listBooks(ctx)
		case "3":
			err = m.searchBooks(ctx)
		case "4":
			return nil
		default:
			m.printf("Invalid option, please try again.\n")
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) catalogBook(ctx context.Context) error {
	m.title("Catalog a book")

	fields, err := m.promptAll("Code: ", "Title: ", "Author: ", "Genre: ", "Publication year: ", "Total copies: ")
	if err != nil {
		return err
	}

	book, err := m.desk.CatalogBookFromInput(ctx, fields[0], fields[1], fields[2], fields[4], fields[3], fields[5])
	if err != nil {
		return m.reportFailure(err)
	}

	m.printf("Book %s cataloged with %d copies.\n", book.Code, book.TotalCopies)

	return nil
}

func (m *Menu) listBooks(ctx context.Context) error {
	m.title("Catalog")

	books, err := m.desk.ListBooks(ctx)
	if err != nil {
		return m.reportFailure(err)
	}

	if len(books) == 0 {
		m.printf("No books cataloged.\n")
		return nil
	}

	m.printBooks(books)

	return nil
}

func (m *Menu) searchBooks(ctx context.Context) error {
	m.title("Search books")

	criterion, err := m.prompt("Code, title or author: ")
	if err != nil {
		return err
	}

	books, err := m.desk.SearchCatalog(ctx, criterion)
	if err != nil {
		return m.reportFailure(err)
	}

	if len(books) == 0 {
		m.printf("No book matches %q.\n", criterion)
		return nil
	}

	m.printf("%d book(s) found:\n", len(books))
	m.printBooks(books)

	return nil
}

func (m *Menu) patronsMenu(ctx context.Context) error {
	for {
		m.header("MANAGE PATRONS")
		m.printf("1. Register a new patron\n")
		m.printf("2. List all patrons\n")
		m.printf("3. Back to the main menu\n")

		option, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.registerPatron(ctx)
		case "2":
			err = m.listPatrons(ctx)
		case "3":
			return nil
		default:
			m.printf("Invalid option, please try again.\n")
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) registerPatron(ctx context.Context) error {
	m.title("Register a patron")

	fields, err := m.promptAll("Patron id: ", "Name: ", "Category (student or teacher): ")
	if err != nil {
		return err
	}

	patron, err := m.desk.RegisterPatron(ctx, fields[0], fields[1], fields[2])
	if err != nil {
		return m.reportFailure(err)
	}

	m.printf("Patron %s registered as %s.\n", patron.ID, patron.Category)

	return nil
}

func (m *Menu) listPatrons(ctx context.Context) error {
	m.title("Patrons")

	patrons, err := m.desk.ListPatrons(ctx)
	if err != nil {
		return m.reportFailure(err)
	}

	if len(patrons) == 0 {
		m.printf("No patrons registered.\n")
		return nil
	}

	for _, patron := range patrons {
		m.printf("%s | %s (%s)\n", patron.ID, patron.Name, patron.Category)
	}

	return nil
}

func (m *Menu) checkOut(ctx context.Context) error {
	m.title("Check out a book")

	fields, err := m.promptAll("Patron id: ", "Book code: ")
	if err != nil {
		return err
	}

	loan, err := m.desk.CheckOut(ctx, fields[0], fields[1])
	if err != nil {
		return m.reportFailure(err)
	}

	m.printf("Checkout recorded as %s. Due on day %d.\n", loan.LoanID, loan.DueDay)

	return nil
}

func (m *Menu) returnBook(ctx context.Context) error {
	m.title("Return a book")

	fields, err := m.promptAll("Patron id: ", "Book code: ")
	if err != nil {
		return err
	}

	receipt, err := m.desk.Return(ctx, fields[0], fields[1])
	if err != nil {
		return m.reportFailure(err)
	}

	if receipt.LateDays > 0 {
		m.printf("Returned %d day(s) late. Fine: %d\n", receipt.LateDays, receipt.Fine)
		return nil
	}

	m.printf("Returned on time. Thank you!\n")

	return nil
}

func (m *Menu) reportsMenu(ctx context.Context) error {
	for {
		m.header("REPORTS")
		m.printf("1. Active loans\n")
		m.printf("2. Overdue loans\n")
		m.printf("3. Finished loans\n")
		m.printf("4. Loans of a patron\n")
		m.printf("5. Back to the main menu\n")

		option, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.activeLoansReport(ctx)
		case "2":
			err = m.overdueLoansReport(ctx)
		case "3":
			err = m.finishedLoansReport(ctx)
		case "4":
			err = m.patronLoansReport(ctx)
		case "5":
			return nil
		default:
			m.printf("Invalid option, please try again.\n")
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) activeLoansReport(ctx context.Context) error {
	m.title("Active loans")

	report, err := m.desk.ActiveLoans(ctx)
	if err != nil {
		return m.reportFailure(err)
	}

	if report.Count == 0 {
		m.printf("No active loans.\n")
		return nil
	}

	for _, loan := range report.Loans {
		m.printf("Book: %s | Patron: %s | %s\n", loan.Title, loan.PatronName, dueStatus(loan.DaysRemaining))
	}

	return nil
}

func (m *Menu) overdueLoansReport(ctx context.Context) error {
	m.title("Overdue loans")

	report, err := m.desk.OverdueLoans(ctx)
	if err != nil {
		return m.reportFailure(err)
	}

	if report.Count == 0 {
		m.printf("No overdue loans.\n")
		return nil
	}

	for _, loan := range report.Loans {
		m.printf(
			"Book: %s (code %s) | Patron: %s | Due on day %d | %d day(s) late | Estimated fine: %d\n",
			loan.Title, loan.BookCode, loan.PatronName, loan.DueDay, loan.LateDays, loan.EstimatedFine,
		)
	}

	m.printf("Total estimated fines: %d\n", report.TotalEstimatedFine)

	return nil
}

func (m *Menu) finishedLoansReport(ctx context.Context) error {
	m.title("Finished loans")

	report, err := m.desk.FinishedLoans(ctx, finishedLoansShown)
	if err != nil {
		return m.reportFailure(err)
	}

	if report.Count == 0 {
		m.printf("No finished loans.\n")
		return nil
	}

	for _, loan := range report.Loans {
		m.printf(
			"Book: %s | Patron: %s | Days %d-%d (due %d) | %d day(s) late | Fine: %d\n",
			loan.Title, loan.PatronName, loan.StartDay, loan.ReturnDay, loan.DueDay, loan.LateDays, loan.Fine,
		)
	}

	m.printf("Showing %d of %d finished loans. Total fines: %d\n", report.Count, report.TotalCount, report.TotalFines)

	return nil
}

func (m *Menu) patronLoansReport(ctx context.Context) error {
	m.title("Loans of a patron")

	patronID, err := m.prompt("Patron id: ")
	if err != nil {
		return err
	}

	report, err := m.desk.PatronLoans(ctx, patronID)
	if err != nil {
		return m.reportFailure(err)
	}

	if report.Count == 0 {
		m.printf("%s has no books checked out.\n", report.Patron.Name)
		return nil
	}

	for _, loan := range report.Loans {
		m.printf("Book: %s (code %s) | %s\n", loan.Title, loan.BookCode, dueStatus(loan.DaysRemaining))
	}

	return nil
}

func (m *Menu) timeMenu() error {
	for {
		m.header("MANAGE TIME")
		m.printf("Today: day %d\n", m.desk.Today())
		m.printf("1. Advance 1 day\n")
		m.printf("2. Advance 7 days (1 week)\n")
		m.printf("3. Advance N days\n")
		m.printf("4. Show today\n")
		m.printf("5. Back to the main menu\n")

		option, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case "1":
			m.printf("Advanced to day %d.\n", m.desk.AdvanceOneDay())
		case "2":
			m.printf("Advanced 7 days. Today is day %d.\n", m.desk.AdvanceOneWeek())
		case "3":
			raw, promptErr := m.prompt("How many days? ")
			if promptErr != nil {
				return promptErr
			}

			today, advanceErr := m.desk.AdvanceDaysFromInput(raw)
			if advanceErr != nil {
				_ = m.reportFailure(advanceErr)
				continue
			}

			m.printf("Advanced to day %d.\n", today)
		case "4":
			m.printf("Today is day %d.\n", m.desk.Today())
		case "5":
			return nil
		default:
			m.printf("Invalid option, please try again.\n")
		}
	}
}

// reportFailure renders business errors and swallows them, other errors end the session.
func (m *Menu) reportFailure(err error) error {
	message, ok := describe(err)
	if !ok {
		return err
	}

	m.printf("%s\n", message)

	return nil
}

func describe(err error) (string, bool) {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return "Invalid input: " + err.Error(), true
	case errors.Is(err, core.ErrDuplicateKey):
		return "Already exists.", true
	case errors.Is(err, core.ErrInvalidCategory):
		return "Invalid category, use student or teacher.", true
	case errors.Is(err, core.ErrBookNotFound):
		return "Book not found.", true
	case errors.Is(err, core.ErrPatronNotFound):
		return "Patron not found.", true
	case errors.Is(err, core.ErrLoanNotFound):
		return "No active loan found for this patron and book.", true
	case errors.Is(err, core.ErrNoCopiesAvailable):
		return "No copies available.", true
	case errors.Is(err, core.ErrDuplicateActiveLoan):
		return "This patron already has this book checked out.", true
	case errors.Is(err, core.ErrDataIntegrity):
		return "Data integrity problem: " + err.Error(), true
	default:
		return "", false
	}
}

func dueStatus(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return fmt.Sprintf("overdue by %d day(s)", -daysRemaining)
	case daysRemaining == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %d day(s)", daysRemaining)
	}
}

func (m *Menu) printBooks(books []core.Book) {
	for _, book := range books {
		status := "available"
		if !book.Available() {
			status = "unavailable"
		}

		m.printf("%s | %s - %s (%d)\n", book.Code, book.Title, book.Author, book.Year)
		m.printf("    Genre: %s | %d/%d - %s\n", book.Genre, book.AvailableCopies, book.TotalCopies, status)
	}
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptAll(labels ...string) ([]string, error) {
	values := make([]string, 0, len(labels))

	for _, label := range labels {
		value, err := m.prompt(label)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

func (m *Menu) header(text string) {
	line := strings.Repeat("=", 29)
	m.printf("\n%s\n%s\n%s\n", line, centered(text, len(line)), line)
}

func (m *Menu) title(text string) {
	m.printf("\n--- %s ---\n", text)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func centered(text string, width int) string {
	if len(text) >= width {
		return text
	}

	padding := (width - len(text)) / 2

	return strings.Repeat(" ", padding) + text
}
