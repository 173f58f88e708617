package item

// Kind discriminates the item variants in the catalog.
type Kind string

// KindBook is the only item kind currently sold.
const KindBook Kind = "book"

// Details carries the variant-specific fields of an item. The interface is
// sealed: variants live in this package so that the set of kinds is closed
// and persistence can map each one to its discriminator value.
type Details interface {
	Kind() Kind

	isDetails()
}

// Book holds the fields specific to book items.
// Author and ISBN are plain attributes with no format validation; the
// catalog accepts whatever the publisher supplies.
type Book struct {
	author string
	isbn   string
}

// NewBook creates the book variant of item details.
func NewBook(author, isbn string) Book {
	return Book{author: author, isbn: isbn}
}

// Kind returns KindBook.
func (Book) Kind() Kind {
	return KindBook
}

// Author returns the book's author.
func (b Book) Author() string {
	return b.author
}

// ISBN returns the book's ISBN.
func (b Book) ISBN() string {
	return b.isbn
}

func (Book) isDetails() {}
