package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/marcelsud/booklend/internal/menu"
	"github.com/marcelsud/booklend/library"
	"github.com/marcelsud/booklend/library/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*library.Service, *mocks.Repository) {
	t.Helper()
	repo := mocks.NewRepository(t)
	repo.On("SelectAll", mock.Anything).Return([]library.Member{library.NewMember(1, "Alice")}, nil)
	s, err := library.NewService(context.Background(), repo, library.DefaultSeed())
	require.NoError(t, err)
	return s, repo
}

func run(t *testing.T, catalog library.UseCase, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := menu.Run(context.Background(), catalog, strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String()
}

func TestViewBooks(t *testing.T) {
	s, _ := newCatalog(t)
	out := run(t, s, "1\n7\n")
	assert.Contains(t, out, "ID: 1, Harry Potter, J.K. Rowling, Stock: 5")
	assert.Contains(t, out, "ID: 4, To Kill a Mockingbird, Harper Lee, Stock: 2")
	assert.Contains(t, out, "Exiting... Have a great day!")
}

func TestAddBook(t *testing.T) {
	s, _ := newCatalog(t)
	out := run(t, s, "2\nDune\nFrank Herbert\n7\n7\n")
	assert.Contains(t, out, "'Dune' added successfully with ID 5!")
}

func TestAddBookQuantityNotANumber(t *testing.T) {
	s, _ := newCatalog(t)
	out := run(t, s, "2\nDune\nFrank Herbert\nseven\n1\n7\n")
	assert.Contains(t, out, "Invalid input! Quantity must be a number.")
	assert.NotContains(t, out, "Dune")
}

func TestSearchBooks(t *testing.T) {
	s, _ := newCatalog(t)
	out := run(t, s, "3\nhob\n3\nxyz\n7\n")
	assert.Contains(t, out, "ID: 2, The Hobbit, J.R.R. Tolkien, Stock: 3")
	assert.Contains(t, out, "No matching books found.")
}

func TestRegisterMember(t *testing.T) {
	s, repo := newCatalog(t)
	repo.On("Insert", mock.Anything, library.MatchMember(func(m library.Member) bool {
		return m.ID == 7 && m.Name == "Smith, Jr."
	})).Return(nil)
	out := run(t, s, "4\n7\nSmith, Jr.\n4\n1\nBob\n4\nabc\n7\n")
	assert.Contains(t, out, "Member 'Smith, Jr.' registered successfully!")
	assert.Contains(t, out, "Member ID 1 already exists!")
	assert.Contains(t, out, "Invalid Member ID! Please enter a numeric value.")
	repo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestRegisterMemberStoreFailure(t *testing.T) {
	s, repo := newCatalog(t)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	out := run(t, s, "4\n9\nCarol\n7\n")
	assert.Contains(t, out, "Member could not be saved: appending member: disk full")
	assert.Len(t, s.ListMembers(context.Background()), 1)
}

func TestBorrowAndReturn(t *testing.T) {
	s, _ := newCatalog(t)
	out := run(t, s, "5\n1\n2\n6\n1\n2\n6\n1\n2\n5\n1\nx\n5\n42\n2\n7\n")
	assert.Contains(t, out, "Alice borrowed 'The Hobbit'.")
	assert.Contains(t, out, "Alice returned 'The Hobbit'.")
	assert.Contains(t, out, "Alice did not borrow 'The Hobbit'.")
	assert.Contains(t, out, "Invalid input! Member ID and Book ID must be numbers.")
	assert.Contains(t, out, "Invalid Member ID or Book ID.")
	assert.Equal(t, library.Stats{Books: 4, Stock: 14, Members: 1, Loans: 0}, s.Stats(context.Background()))
}

func TestInvalidChoice(t *testing.T) {
	out := run(t, mocks.NewUseCase(t), "9\n7\n")
	assert.Contains(t, out, "Invalid choice, please try again.")
}

func TestEndOfInput(t *testing.T) {
	uc := mocks.NewUseCase(t)
	out := run(t, uc, "")
	assert.Contains(t, out, "Enter your choice: ")
	out = run(t, uc, "2\nDune\n")
	assert.Contains(t, out, "Enter Author Name: ")
	assert.NotContains(t, out, "Enter Quantity: ")
	uc.AssertNotCalled(t, "AddBook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := menu.Run(ctx, mocks.NewUseCase(t), strings.NewReader("1\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
}
