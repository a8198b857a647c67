package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/pubsub"
	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// EditorManager is the subset of the editor manager that sessions drive.
type EditorManager interface {
	Editors() []*editor.Editor
	CurrentEditor() *editor.Editor
	CloseAll()
	OpenSuspended(path string) (*editor.Editor, error)
	ActivateEditor(ed *editor.Editor, flags editor.ActivateFlag) error
}

type ServiceOptions struct {
	// Dir is the directory in which session files are stored.
	Dir     string
	Editors EditorManager
	Logger  logging.Interface
}

// Service loads and saves sessions. Like the editor manager it is driven
// from the TUI's update loop and notifies listeners synchronously.
type Service struct {
	dir     string
	active  string
	editors EditorManager
	logger  logging.Interface

	loaded      pubsub.Signal[string]
	aboutToSave pubsub.Signal[struct{}]
	renamed     pubsub.Signal[Renamed]
	removed     pubsub.Signal[string]
}

func NewService(opts ServiceOptions) (*Service, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating sessions directory: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Service{
		dir:     opts.Dir,
		active:  DefaultName,
		editors: opts.Editors,
		logger:  opts.Logger,
	}, nil
}

// OnSessionLoaded registers fn to be called once a session's files have been
// opened.
func (s *Service) OnSessionLoaded(fn func(name string)) (disconnect func()) {
	return s.loaded.Connect(fn)
}

// OnAboutToSaveSession registers fn to be called before the active session
// is written.
func (s *Service) OnAboutToSaveSession(fn func()) (disconnect func()) {
	return s.aboutToSave.Connect(func(struct{}) { fn() })
}

// OnSessionRenamed registers fn to be called after a session is renamed.
func (s *Service) OnSessionRenamed(fn func(oldName, newName string)) (disconnect func()) {
	return s.renamed.Connect(func(r Renamed) { fn(r.OldName, r.NewName) })
}

// OnSessionRemoved registers fn to be called after a session is removed.
func (s *Service) OnSessionRemoved(fn func(name string)) (disconnect func()) {
	return s.removed.Connect(fn)
}

// ActiveSession returns the name of the active session.
func (s *Service) ActiveSession() string {
	return s.active
}

// List returns the names of the saved sessions, sorted.
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	slices.Sort(names)
	return names, nil
}

// Exists reports whether a session has been saved under name.
func (s *Service) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Load makes name the active session: all editors are closed and the
// session's files are reopened. Loading a session that has never been saved
// starts it empty.
func (s *Service) Load(name string) error {
	if err := validate(name); err != nil {
		return err
	}
	sf, err := s.read(name)
	if err != nil {
		return err
	}

	s.editors.CloseAll()
	s.active = name

	var current *editor.Editor
	for _, path := range sf.Files {
		ed, err := s.editors.OpenSuspended(path)
		if err != nil {
			s.logger.Warn("restoring session file", "session", name, "path", path, "error", err)
			continue
		}
		if path == sf.Current {
			current = ed
		}
	}
	if current != nil {
		if err := s.editors.ActivateEditor(current, 0); err != nil {
			s.logger.Warn("activating session editor", "session", name, "error", err)
		}
	}
	s.logger.Info("loaded session", "session", name, "files", len(sf.Files))

	s.loaded.Emit(name)
	return nil
}

// Save writes the active session.
func (s *Service) Save() error {
	s.aboutToSave.Emit(struct{}{})

	var sf file
	for _, ed := range s.editors.Editors() {
		if path := ed.Document().FilePath(); path != "" {
			sf.Files = append(sf.Files, path)
		}
	}
	slices.Sort(sf.Files)
	if current := s.editors.CurrentEditor(); current != nil {
		sf.Current = current.Document().FilePath()
	}
	if err := s.write(s.active, sf); err != nil {
		return err
	}
	s.logger.Info("saved session", "session", s.active, "files", len(sf.Files))
	return nil
}

// SaveAs makes name the active session and saves it.
func (s *Service) SaveAs(name string) error {
	if err := validate(name); err != nil {
		return err
	}
	s.active = name
	return s.Save()
}

// Rename renames a saved session. Renaming the active session renames it in
// place.
func (s *Service) Rename(oldName, newName string) error {
	if err := validate(oldName); err != nil {
		return err
	}
	if err := validate(newName); err != nil {
		return err
	}
	if s.Exists(newName) {
		return fmt.Errorf("%w: %s", ErrExists, newName)
	}
	if err := os.Rename(s.path(oldName), s.path(newName)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || oldName != s.active {
			return fmt.Errorf("renaming session: %w", err)
		}
		// the active session is yet to be saved
	}
	if s.active == oldName {
		s.active = newName
	}
	s.renamed.Emit(Renamed{OldName: oldName, NewName: newName})
	return nil
}

// Remove deletes a saved session. The active session cannot be removed.
func (s *Service) Remove(name string) error {
	if err := validate(name); err != nil {
		return err
	}
	if name == s.active {
		return ErrActiveSession
	}
	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("removing session: %w", err)
	}
	s.removed.Emit(name)
	return nil
}

func (s *Service) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

func (s *Service) read(name string) (file, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return file{}, nil
	} else if err != nil {
		return file{}, fmt.Errorf("reading session: %w", err)
	}
	var sf file
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return file{}, fmt.Errorf("parsing session %s: %w", name, err)
	}
	return sf, nil
}

func (s *Service) write(name string, sf file) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return err
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return os.Rename(tmp, s.path(name))
}
