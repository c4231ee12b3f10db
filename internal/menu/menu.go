// Package menu is the line based shell over the catalog: one numbered choice per action,
// numbers parsed here, every result printed as the catalog phrased it.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcelsud/booklend/library"
)

var options = []string{
	"View All Books",
	"Add Book",
	"Search Book by Title",
	"Register Member",
	"Borrow Book",
	"Return Book",
	"Exit",
}

type Menu struct {
	catalog library.UseCase
	in      *bufio.Scanner
	out     io.Writer
	theme   Theme
}

func New(catalog library.UseCase, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
		theme:   NewTheme(lipgloss.NewRenderer(out)),
	}
}

// Run reads choices until Exit is picked or the input ends. Running out of input is not an error.
func Run(ctx context.Context, catalog library.UseCase, in io.Reader, out io.Writer) error {
	return New(catalog, in, out).Run(ctx)
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printOptions()
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return m.in.Err()
		}
		var more bool
		switch strings.TrimSpace(choice) {
		case "1":
			more = m.viewBooks(ctx)
		case "2":
			more = m.addBook(ctx)
		case "3":
			more = m.searchBooks(ctx)
		case "4":
			more = m.registerMember(ctx)
		case "5":
			more = m.lend(ctx, "Enter Book ID to Borrow: ", m.catalog.BorrowBook)
		case "6":
			more = m.lend(ctx, "Enter Book ID to Return: ", m.catalog.ReturnBook)
		case "7":
			m.println(m.theme.Title, "Exiting... Have a great day!")
			return nil
		default:
			m.println(m.theme.Warning, "Invalid choice, please try again.")
			more = true
		}
		if !more {
			return m.in.Err()
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out)
	m.println(m.theme.Title, "===== Library Management Menu =====")
	for i, o := range options {
		m.println(m.theme.Option, fmt.Sprintf("%d. %s", i+1, o))
	}
}

func (m *Menu) viewBooks(ctx context.Context) bool {
	m.printListing(m.catalog.ListBooks(ctx))
	return true
}

func (m *Menu) addBook(ctx context.Context) bool {
	title, ok := m.prompt("Enter Book Title: ")
	if !ok {
		return false
	}
	author, ok := m.prompt("Enter Author Name: ")
	if !ok {
		return false
	}
	quantity, ok := m.prompt("Enter Quantity: ")
	if !ok {
		return false
	}
	stock, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		m.println(m.theme.Warning, "Invalid input! Quantity must be a number.")
		return true
	}
	m.printOutcome(m.catalog.AddBook(ctx, title, author, stock))
	return true
}

func (m *Menu) searchBooks(ctx context.Context) bool {
	keyword, ok := m.prompt("Enter Book Title to Search: ")
	if !ok {
		return false
	}
	m.printListing(m.catalog.SearchBooks(ctx, keyword))
	return true
}

func (m *Menu) registerMember(ctx context.Context) bool {
	raw, ok := m.prompt("Enter Member ID: ")
	if !ok {
		return false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		m.println(m.theme.Warning, "Invalid Member ID! Please enter a numeric value.")
		return true
	}
	name, ok := m.prompt("Enter Member Name: ")
	if !ok {
		return false
	}
	o, err := m.catalog.RegisterMember(ctx, id, name)
	if err != nil {
		m.println(m.theme.Declined, fmt.Sprintf("Member could not be saved: %v", err))
		return true
	}
	m.printOutcome(o)
	return true
}

func (m *Menu) lend(ctx context.Context, bookPrompt string, apply func(ctx context.Context, memberID, bookID int64) library.Outcome) bool {
	rawMember, ok := m.prompt("Enter Member ID: ")
	if !ok {
		return false
	}
	rawBook, ok := m.prompt(bookPrompt)
	if !ok {
		return false
	}
	memberID, err := strconv.ParseInt(strings.TrimSpace(rawMember), 10, 64)
	if err != nil {
		m.println(m.theme.Warning, "Invalid input! Member ID and Book ID must be numbers.")
		return true
	}
	bookID, err := strconv.ParseInt(strings.TrimSpace(rawBook), 10, 64)
	if err != nil {
		m.println(m.theme.Warning, "Invalid input! Member ID and Book ID must be numbers.")
		return true
	}
	m.printOutcome(apply(ctx, memberID, bookID))
	return true
}

// prompt returns false once the input is exhausted
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimRight(m.in.Text(), "\r"), true
}

func (m *Menu) printListing(l library.Listing) {
	if len(l.Books) == 0 {
		m.printOutcome(l.Outcome)
		return
	}
	for _, b := range l.Books {
		fmt.Fprintln(m.out, b.String())
	}
}

func (m *Menu) printOutcome(o library.Outcome) {
	style := m.theme.Declined
	if o.OK() {
		style = m.theme.Success
	}
	m.println(style, o.Message)
}

func (m *Menu) println(style lipgloss.Style, text string) {
	fmt.Fprintln(m.out, style.Render(text))
}
