package library_test

import (
	"testing"

	"github.com/marcelsud/booklend/library"
	"github.com/stretchr/testify/assert"
)

func TestBook_IsAvailable(t *testing.T) {
	b := library.Book{ID: 1, Title: "Dune", Stock: 1}
	assert.True(t, b.IsAvailable())

	b.UpdateStock(-1)
	assert.False(t, b.IsAvailable())
	assert.Equal(t, 0, b.Stock)

	b.UpdateStock(2)
	assert.Equal(t, 2, b.Stock)
}

func TestBook_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, library.Book{ID: 1, Title: "Dune", Stock: 0}.Validate())
	})
	t.Run("empty title", func(t *testing.T) {
		err := library.Book{ID: 1, Title: "  ", Stock: 1}.Validate()
		assert.ErrorContains(t, err, "title cannot be empty")
	})
	t.Run("negative stock", func(t *testing.T) {
		err := library.Book{ID: 1, Title: "Dune", Stock: -1}.Validate()
		assert.ErrorContains(t, err, "stock cannot be negative")
	})
	t.Run("negative id", func(t *testing.T) {
		err := library.Book{ID: -3, Title: "Dune"}.Validate()
		assert.ErrorContains(t, err, "book id cannot be negative")
	})
}

func TestBook_String(t *testing.T) {
	b := library.Book{ID: 2, Title: "The Hobbit", Author: "J.R.R. Tolkien", Stock: 3}
	assert.Equal(t, "ID: 2, The Hobbit, J.R.R. Tolkien, Stock: 3", b.String())
}
