package library

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ErrInvalidSeed is returned when the starting book list cannot form a catalog
var ErrInvalidSeed = errors.New("invalid seed")

/* Service is the catalog and lending manager.
 * Pointer semantics: it is an API, not data.
 * Books live only here; members are loaded from the Repository and appended to it.
 */

// UseCase is what the shells (menu, HTTP) call, one call per user action
type UseCase interface {
	ListBooks(ctx context.Context) Listing
	AddBook(ctx context.Context, title, author string, stock int) Outcome
	SearchBooks(ctx context.Context, keyword string) Listing
	RegisterMember(ctx context.Context, id int64, name string) (Outcome, error)
	BorrowBook(ctx context.Context, memberID, bookID int64) Outcome
	ReturnBook(ctx context.Context, memberID, bookID int64) Outcome
	ListMembers(ctx context.Context) []MemberSummary
	Stats(ctx context.Context) Stats
}

// Stats are point-in-time counters over the catalog
type Stats struct {
	Books   int
	Stock   int
	Members int
	Loans   int
}

type Service struct {
	Repo Repository

	mu       sync.Mutex
	books    []Book
	members  []Member
	log      zerolog.Logger
	recorder OutcomeRecorder
}

type Option func(*Service)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithRecorder reports every outcome to r (metrics)
func WithRecorder(r OutcomeRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService builds the catalog from seed and loads every stored member.
// A store that cannot be read is fatal: the catalog never starts half loaded.
func NewService(ctx context.Context, repo Repository, seed []Book, opts ...Option) (*Service, error) {
	s := &Service{
		Repo: repo,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.seed(seed); err != nil {
		return nil, err
	}
	members, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading members: %w", err)
	}
	s.members = append(s.members, members...)
	s.log.Info().
		Int("books", len(s.books)).
		Int("members", len(s.members)).
		Msg("catalog loaded")
	return s, nil
}

func (s *Service) seed(books []Book) error {
	seen := make(map[int64]bool, len(books))
	for _, b := range books {
		if b.ID <= 0 {
			return fmt.Errorf("%w: book %q needs a positive id", ErrInvalidSeed, b.Title)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate book id %d", ErrInvalidSeed, b.ID)
		}
		seen[b.ID] = true
		s.books = append(s.books, b)
	}
	return nil
}

// GenerateBookID returns the id the next added book will get
func (s *Service) GenerateBookID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextBookID()
}

// nextBookID is recomputed on every call; ids are never reused
func (s *Service) nextBookID() int64 {
	var highest int64
	for _, b := range s.books {
		highest = max(highest, b.ID)
	}
	return highest + 1
}

func (s *Service) AddBook(ctx context.Context, title, author string, stock int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := Book{
		ID:     s.nextBookID(),
		Title:  title,
		Author: author,
		Stock:  stock,
	}
	if err := b.Validate(); err != nil {
		return s.done(ctx, "add_book", declined(InvalidInput, "Cannot add book: %s.", err))
	}
	s.books = append(s.books, b)
	o := succeeded("'%s' added successfully with ID %d!", title, b.ID)
	o.BookID = b.ID
	return s.done(ctx, "add_book", o)
}

func (s *Service) ListBooks(ctx context.Context) Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.books) == 0 {
		return Listing{Outcome: s.done(ctx, "list_books", declined(NoBooks, "No books available in the library."))}
	}
	return Listing{
		Outcome: s.done(ctx, "list_books", succeeded("%d book(s) in the library.", len(s.books))),
		Books:   slices.Clone(s.books),
	}
}

// SearchBooks matches keyword against titles only, ignoring case
func (s *Service) SearchBooks(ctx context.Context, keyword string) Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(keyword)
	var found []Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return Listing{Outcome: s.done(ctx, "search_books", declined(NoMatches, "No matching books found."))}
	}
	return Listing{
		Outcome: s.done(ctx, "search_books", succeeded("%d matching book(s) found.", len(found))),
		Books:   found,
	}
}

// RegisterMember stores the member first and only then adds it to the catalog.
// The error return is reserved for store failures; declines come back as outcomes.
func (s *Service) RegisterMember(ctx context.Context, id int64, name string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id <= 0 {
		return s.done(ctx, "register_member", declined(InvalidInput, "Member ID must be a positive number.")), nil
	}
	if strings.ContainsAny(name, "\r\n") {
		return s.done(ctx, "register_member", declined(InvalidInput, "Member name must fit on a single line.")), nil
	}
	if s.findMember(id) != nil {
		return s.done(ctx, "register_member", declined(DuplicateID, "Member ID %d already exists!", id)), nil
	}

	m := NewMember(id, name)
	if err := s.Repo.Insert(ctx, m); err != nil {
		s.log.Error().Err(err).Int64("member_id", id).Msg("appending member")
		return Outcome{}, fmt.Errorf("appending member: %w", err)
	}
	s.members = append(s.members, m)
	return s.done(ctx, "register_member", succeeded("Member '%s' registered successfully!", name)), nil
}

func (s *Service) BorrowBook(ctx context.Context, memberID, bookID int64) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, b := s.findMember(memberID), s.findBook(bookID)
	if m == nil || b == nil {
		return s.done(ctx, "borrow_book", declined(InvalidID, "Invalid Member ID or Book ID."))
	}
	return s.done(ctx, "borrow_book", m.Borrow(b))
}

func (s *Service) ReturnBook(ctx context.Context, memberID, bookID int64) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, b := s.findMember(memberID), s.findBook(bookID)
	if m == nil || b == nil {
		return s.done(ctx, "return_book", declined(InvalidID, "Invalid Member ID or Book ID."))
	}
	return s.done(ctx, "return_book", m.Return(b))
}

func (s *Service) ListMembers(ctx context.Context) []MemberSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]MemberSummary, 0, len(s.members))
	for _, m := range s.members {
		summaries = append(summaries, MemberSummary{
			ID:       m.ID,
			Name:     m.Name,
			Borrowed: m.Borrowed(),
		})
	}
	return summaries
}

func (s *Service) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Books:   len(s.books),
		Members: len(s.members),
	}
	for _, b := range s.books {
		st.Stock += b.Stock
	}
	for _, m := range s.members {
		st.Loans += len(m.borrowed)
	}
	return st
}

// findMember and findBook return the first match, pointing into the catalog's own slices
func (s *Service) findMember(id int64) *Member {
	i := slices.IndexFunc(s.members, func(m Member) bool { return m.ID == id })
	if i < 0 {
		return nil
	}
	return &s.members[i]
}

func (s *Service) findBook(id int64) *Book {
	i := slices.IndexFunc(s.books, func(b Book) bool { return b.ID == id })
	if i < 0 {
		return nil
	}
	return &s.books[i]
}

func (s *Service) done(ctx context.Context, operation string, o Outcome) Outcome {
	s.log.Info().
		Str("operation", operation).
		Stringer("outcome", o.Kind).
		Msg(o.Message)
	if s.recorder != nil {
		s.recorder.RecordOutcome(ctx, operation, o)
	}
	return o
}
