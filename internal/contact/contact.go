// Package contact defines the address-book record, its field rules, and the
// display form of phone numbers.
package contact

import (
	"errors"
	"strings"
)

// Contact is a single address-book entry. All fields are free text; the
// rules in this package are applied when a value is written, not stored.
type Contact struct {
	Name      string
	Phone     string
	Email     string
	Address   string
	Birthdate string
}

// Field identifies one of the five contact fields, in table column order.
type Field int

const (
	FieldName Field = iota
	FieldPhone
	FieldEmail
	FieldAddress
	FieldBirthdate
)

// Fields lists every field in column order.
var Fields = []Field{FieldName, FieldPhone, FieldEmail, FieldAddress, FieldBirthdate}

// Label returns the table header label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "NAME"
	case FieldPhone:
		return "PHONE"
	case FieldEmail:
		return "EMAIL"
	case FieldAddress:
		return "ADDRESS"
	case FieldBirthdate:
		return "BIRTHDATE"
	default:
		return "UNKNOWN"
	}
}

// String returns the lower-case field name.
func (f Field) String() string {
	return strings.ToLower(f.Label())
}

// Get returns the value of field f in c.
func (c Contact) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	case FieldAddress:
		return c.Address
	case FieldBirthdate:
		return c.Birthdate
	default:
		return ""
	}
}

// Set assigns v to field f of c.
func (c *Contact) Set(f Field, v string) {
	switch f {
	case FieldName:
		c.Name = v
	case FieldPhone:
		c.Phone = v
	case FieldEmail:
		c.Email = v
	case FieldAddress:
		c.Address = v
	case FieldBirthdate:
		c.Birthdate = v
	}
}

// Matches reports whether term occurs in any field of c, ignoring case.
// An empty term matches nothing.
func (c Contact) Matches(term string) bool {
	if term == "" {
		return false
	}
	needle := strings.ToUpper(term)
	for _, f := range Fields {
		if strings.Contains(strings.ToUpper(c.Get(f)), needle) {
			return true
		}
	}
	return false
}

// Validate checks every field of c and joins the failures.
func (c Contact) Validate() error {
	var errs []error
	for _, f := range Fields {
		if err := Validate(f, c.Get(f)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
