// Package session is tabbed's session manager. A session is a named set of
// open files, persisted as a YAML file in the sessions directory.
package session

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultName is the name of the session used when none is specified.
const DefaultName = "default"

var (
	ErrInvalidName   = errors.New("invalid session name")
	ErrActiveSession = errors.New("cannot remove the active session")
	ErrNotFound      = errors.New("session not found")
	ErrExists        = errors.New("session already exists")

	validName = regexp.MustCompile(`^[\w][\w.\- ]*$`)
)

// file is the on-disk representation of a session. Files are recorded in
// sorted order: a session captures which files are open, not how they are
// arranged.
type file struct {
	Files   []string `yaml:"files"`
	Current string   `yaml:"current,omitempty"`
}

// Renamed is the payload of the session renamed notification.
type Renamed struct {
	OldName string
	NewName string
}

func validate(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
