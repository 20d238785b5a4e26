// Package book implements the in-memory, insertion-ordered contact store
// owned by an interactive session.
package book

import (
	"errors"
	"fmt"
	"slices"

	"github.com/smileynet/contactbook/internal/contact"
)

// ErrNotFound indicates no contact has the requested name.
var ErrNotFound = errors.New("book: contact not found")

// ErrEmptyTerm indicates a search was attempted with an empty term.
var ErrEmptyTerm = errors.New("book: search term cannot be empty")

// Book holds contacts in insertion order. Names are not unique; lookups by
// name use exact, case-sensitive comparison and take the first match.
type Book struct {
	contacts []contact.Contact
}

// New creates a Book seeded with cs in order.
func New(cs ...contact.Contact) *Book {
	return &Book{contacts: slices.Clone(cs)}
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.contacts)
}

// All returns a copy of every contact in insertion order.
func (b *Book) All() []contact.Contact {
	return slices.Clone(b.contacts)
}

// Add appends c to the end of the book.
func (b *Book) Add(c contact.Contact) {
	b.contacts = append(b.contacts, c)
}

// FindByName returns the first contact whose name equals name exactly.
func (b *Book) FindByName(name string) (contact.Contact, bool) {
	i := b.index(name)
	if i < 0 {
		return contact.Contact{}, false
	}
	return b.contacts[i], true
}

// Delete removes the first contact whose name equals name exactly.
// The book is unchanged when no contact matches.
func (b *Book) Delete(name string) error {
	i := b.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	b.contacts = slices.Delete(b.contacts, i, i+1)
	return nil
}

// Search returns every contact with term in any field, ignoring case,
// in insertion order. No match yields an empty result and a nil error.
func (b *Book) Search(term string) ([]contact.Contact, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}
	var found []contact.Contact
	for _, c := range b.contacts {
		if c.Matches(term) {
			found = append(found, c)
		}
	}
	return found, nil
}

// Update applies the non-empty fields of patch to the first contact named
// name. Each supplied field is validated first; if any is invalid the
// contact is left untouched and a *contact.FieldError is returned.
func (b *Book) Update(name string, patch contact.Contact) (contact.Contact, error) {
	i := b.index(name)
	if i < 0 {
		return contact.Contact{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	updated := b.contacts[i]
	for _, f := range contact.Fields {
		v := patch.Get(f)
		if v == "" {
			continue
		}
		if err := contact.Validate(f, v); err != nil {
			return contact.Contact{}, err
		}
		updated.Set(f, v)
	}
	b.contacts[i] = updated
	return updated, nil
}

func (b *Book) index(name string) int {
	return slices.IndexFunc(b.contacts, func(c contact.Contact) bool {
		return c.Name == name
	})
}
