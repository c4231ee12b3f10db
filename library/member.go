package library

import "slices"

/* Member holds book IDs, never Book copies.
 * One entry per copy held, in borrowing order.
 */
type Member struct {
	ID       int64
	Name     string
	borrowed []int64
}

func NewMember(id int64, name string) Member {
	return Member{ID: id, Name: name}
}

// Borrow takes one copy of b if any is on the shelf
func (m *Member) Borrow(b *Book) Outcome {
	if !b.IsAvailable() {
		return declined(Unavailable, "'%s' is currently unavailable.", b.Title)
	}
	m.borrowed = append(m.borrowed, b.ID)
	b.UpdateStock(-1)
	return succeeded("%s borrowed '%s'.", m.Name, b.Title)
}

// Return gives back one copy of b, if this member holds one
func (m *Member) Return(b *Book) Outcome {
	i := slices.Index(m.borrowed, b.ID)
	if i < 0 {
		return declined(NotBorrowed, "%s did not borrow '%s'.", m.Name, b.Title)
	}
	m.borrowed = slices.Delete(m.borrowed, i, i+1)
	b.UpdateStock(1)
	return succeeded("%s returned '%s'.", m.Name, b.Title)
}

// Borrowed returns the IDs of the copies currently held
func (m Member) Borrowed() []int64 {
	return slices.Clone(m.borrowed)
}

func (m Member) Holds(bookID int64) bool {
	return slices.Contains(m.borrowed, bookID)
}

// MemberSummary is a read-only view of a member for listings
type MemberSummary struct {
	ID       int64
	Name     string
	Borrowed []int64
}
