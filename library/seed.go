package library

// DefaultSeed returns the books a fresh catalog starts with when no seed file is configured
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "Harry Potter", Author: "J.K. Rowling", Stock: 5},
		{ID: 2, Title: "The Hobbit", Author: "J.R.R. Tolkien", Stock: 3},
		{ID: 3, Title: "1984", Author: "George Orwell", Stock: 4},
		{ID: 4, Title: "To Kill a Mockingbird", Author: "Harper Lee", Stock: 2},
	}
}
