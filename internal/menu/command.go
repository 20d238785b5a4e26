// Package menu runs the interactive contact book session: it parses menu
// choices into commands and dispatches them against a Book.
package menu

import "strings"

// Command is a main-menu selection.
type Command int

const (
	CmdInvalid Command = iota
	CmdAdd
	CmdSearch
	CmdDelete
	CmdModify
	CmdList
	CmdExit
)

// Commands lists the selectable commands in menu order.
var Commands = []Command{CmdAdd, CmdSearch, CmdDelete, CmdModify, CmdList, CmdExit}

// ParseCommand maps a menu choice ("1" through "6", surrounding whitespace
// ignored) to its Command. Anything else is CmdInvalid.
func ParseCommand(choice string) Command {
	switch strings.TrimSpace(choice) {
	case "1":
		return CmdAdd
	case "2":
		return CmdSearch
	case "3":
		return CmdDelete
	case "4":
		return CmdModify
	case "5":
		return CmdList
	case "6":
		return CmdExit
	default:
		return CmdInvalid
	}
}

// Label returns the menu text for c.
func (c Command) Label() string {
	switch c {
	case CmdAdd:
		return "Add Contact"
	case CmdSearch:
		return "Search Contact"
	case CmdDelete:
		return "Delete Contact"
	case CmdModify:
		return "Modify Contact"
	case CmdList:
		return "List All Contacts"
	case CmdExit:
		return "Exit"
	default:
		return "Invalid"
	}
}

// String returns the label.
func (c Command) String() string {
	return c.Label()
}
