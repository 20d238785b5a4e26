package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/contactbook/internal/book"
	"github.com/smileynet/contactbook/internal/console"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/table"
	"github.com/smileynet/contactbook/internal/tui"
)

// Section titles.
const (
	titleMenu   = "CONTACT BOOK MANAGEMENT SYSTEM"
	titleAdd    = "ADD NEW CONTACT"
	titleSearch = "SEARCH CONTACT"
	titleDelete = "DELETE CONTACT"
	titleModify = "MODIFY CONTACT"
	titleList   = "LIST ALL CONTACTS"
)

// addPrompts are shown when collecting a new contact.
var addPrompts = map[contact.Field]string{
	contact.FieldName:      "Enter name: ",
	contact.FieldPhone:     "Enter phone number (11 digits starting with '09'): ",
	contact.FieldEmail:     "Enter email: ",
	contact.FieldAddress:   "Enter address: ",
	contact.FieldBirthdate: "Enter birthdate (DD/MM/YYYY): ",
}

// modifyLabels prefix the current value when editing a contact.
var modifyLabels = map[contact.Field]string{
	contact.FieldName:      "Name",
	contact.FieldPhone:     "Phone",
	contact.FieldEmail:     "Email",
	contact.FieldAddress:   "Address",
	contact.FieldBirthdate: "Birthdate",
}

// Session is one interactive run of the contact book. It owns the Book for
// its lifetime.
type Session struct {
	book    *book.Book
	con     *console.Console
	viewer  tui.Viewer
	actions map[Command]func() error
}

// Option configures a Session.
type Option func(*Session)

// WithBook starts the session with an existing book.
func WithBook(b *book.Book) Option {
	return func(s *Session) { s.book = b }
}

// WithViewer sets the viewer used to list all contacts.
func WithViewer(v tui.Viewer) Option {
	return func(s *Session) { s.viewer = v }
}

// NewSession creates a session reading from and writing to con. Without
// options it starts with an empty book and a plain viewer on con's output.
func NewSession(con *console.Console, opts ...Option) *Session {
	s := &Session{con: con}
	for _, opt := range opts {
		opt(s)
	}
	if s.book == nil {
		s.book = book.New()
	}
	if s.viewer == nil {
		s.viewer = tui.NewViewer(tui.ViewerOptions{Writer: con.Out(), ForcePlain: true})
	}
	s.actions = map[Command]func() error{
		CmdAdd:    s.add,
		CmdSearch: s.search,
		CmdDelete: s.delete,
		CmdModify: s.modify,
		CmdList:   s.list,
	}
	return s
}

// Book returns the session's contact book.
func (s *Session) Book() *book.Book {
	return s.book
}

// Run shows the main menu and dispatches choices until the user exits or
// input is closed. Both end the session without error.
func (s *Session) Run() error {
	for {
		s.showMenu()
		choice, err := s.con.ReadLine()
		if err != nil {
			return endOfInput(err)
		}

		cmd := ParseCommand(choice)
		if cmd == CmdExit {
			s.con.Printf("\nThank you for using Contact Book Management System!\n")
			return nil
		}

		action, ok := s.actions[cmd]
		if !ok {
			s.con.Printf("\nInvalid choice! Press Enter to continue...")
			if _, err := s.con.ReadLine(); err != nil {
				return endOfInput(err)
			}
			continue
		}
		if err := action(); err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats closed input as a normal end of session.
func endOfInput(err error) error {
	if errors.Is(err, console.ErrClosed) {
		return nil
	}
	return err
}

func (s *Session) showMenu() {
	s.con.Header(titleMenu)
	for i, cmd := range Commands {
		s.con.Printf("\n%d. %s", i+1, cmd.Label())
	}
	s.con.Printf("\n\nEnter your choice (1-%d): ", len(Commands))
}

func (s *Session) add() error {
	s.con.Header(titleAdd)

	var c contact.Contact
	for _, f := range contact.Fields {
		v, err := s.con.PromptValid(addPrompts[f], f.Valid, f.Message())
		if err != nil {
			return err
		}
		c.Set(f, v)
	}
	s.book.Add(c)

	s.con.Printf("\nContact added successfully!\n")
	return s.con.Pause()
}

func (s *Session) search() error {
	s.con.Header(titleSearch)

	term, err := s.con.Prompt("Enter search term: ")
	if err != nil {
		return err
	}

	results, err := s.book.Search(term)
	switch {
	case errors.Is(err, book.ErrEmptyTerm):
		s.con.Printf("\nSearch term cannot be empty!\n")
	case err != nil:
		return err
	case len(results) == 0:
		s.con.Printf("\nNo contacts found matching your search.\n")
	default:
		s.con.Printf("\nFound %d matching contact(s):\n\n", len(results))
		if err := table.Render(s.con.Out(), results); err != nil {
			return fmt.Errorf("menu: rendering results: %w", err)
		}
	}
	return s.con.Pause()
}

func (s *Session) delete() error {
	return s.withSelected(titleDelete, "delete", func(name string) error {
		if err := s.book.Delete(name); err != nil {
			return err
		}
		s.con.Printf("\nContact deleted successfully!\n")
		return s.con.Pause()
	})
}

func (s *Session) modify() error {
	return s.withSelected(titleModify, "modify", func(name string) error {
		current, _ := s.book.FindByName(name)

		s.con.Printf("\nSelected contact details:\n")
		if err := table.Render(s.con.Out(), []contact.Contact{current}); err != nil {
			return fmt.Errorf("menu: rendering contact: %w", err)
		}
		s.con.Printf("\nEnter new details (press Enter to keep current value):\n")

		var patch contact.Contact
		for _, f := range contact.Fields {
			prompt := fmt.Sprintf("%s [%s]: ", modifyLabels[f], current.Get(f))
			keepOrValid := func(v string) bool { return v == "" || f.Valid(v) }
			v, err := s.con.PromptValid(prompt, keepOrValid, f.Message())
			if err != nil {
				return err
			}
			patch.Set(f, v)
		}

		if _, err := s.book.Update(name, patch); err != nil {
			return err
		}
		s.con.Printf("\nContact modified successfully!\n")
		return s.con.Pause()
	})
}

// withSelected shows the current contacts and asks for a name until fn can be
// applied to an existing contact, the user enters Q, or declines to retry.
func (s *Session) withSelected(title, verb string, fn func(name string) error) error {
	for {
		s.con.Header(title)

		if s.book.Len() == 0 {
			s.con.Printf("\nNo contacts in address book!\n")
			return s.con.Pause()
		}

		s.con.Printf("\nCurrent Contacts:\n\n")
		if err := table.Render(s.con.Out(), s.book.All()); err != nil {
			return fmt.Errorf("menu: rendering contacts: %w", err)
		}

		name, err := s.con.Prompt(fmt.Sprintf("\nEnter contact name to %s (or 'Q' to go back): ", verb))
		if err != nil {
			return err
		}
		if strings.EqualFold(name, "Q") {
			return nil
		}

		if _, ok := s.book.FindByName(name); ok {
			return fn(name)
		}

		s.con.Printf("\nContact not found!\n")
		retry, err := s.con.Confirm("Would you like to try again? (Y/N): ")
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
}

func (s *Session) list() error {
	s.con.Header(titleList)

	if s.book.Len() == 0 {
		s.con.Printf("\nNo contacts in address book!\n")
		return s.con.Pause()
	}

	paged, err := s.viewer.View(titleList, table.String(s.book.All()))
	if err != nil {
		return fmt.Errorf("menu: listing contacts: %w", err)
	}
	if paged {
		return nil
	}
	return s.con.Pause()
}
