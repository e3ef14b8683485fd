package session

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/kanata-dev/pagegen/internal/model"
	"github.com/kanata-dev/pagegen/internal/render"
	"github.com/kanata-dev/pagegen/internal/site"
)

// DefaultTemplateName is the template file looked up inside a scanned
// project root when no override is configured.
const DefaultTemplateName = "default.html"

// ErrNoProjectSelected is returned when generation is requested before
// any successful scan has established a project root.
var ErrNoProjectSelected = errors.New("no project selected: scan a directory first")

// Session holds the currently selected project and serializes renders.
//
// Design decision: The last-scanned root lives in an explicitly owned
// field rather than package-level state, guarded by a mutex so the
// session stays correct if callers ever invoke it from multiple
// goroutines. Renders additionally take a per-template-path lock,
// guaranteeing at most one in-flight render per template.
type Session struct {
	// mu guards structure and templateName.
	mu sync.Mutex

	// structure is the snapshot from the last successful scan, or nil
	// if no scan has succeeded yet. Replaced in full on each scan.
	structure *model.Structure

	// templateName is the template file name resolved against the
	// project root. Empty means DefaultTemplateName.
	templateName string

	// renderMu guards renderLocks.
	renderMu sync.Mutex

	// renderLocks holds one lock per template path.
	renderLocks map[string]*sync.Mutex
}

// New creates an empty Session with no project selected.
func New() *Session {
	return &Session{
		renderLocks: make(map[string]*sync.Mutex),
	}
}

// Scan classifies the directory at path and, on success, replaces the
// session's current project with the new snapshot. A failed scan
// leaves the previous selection untouched.
func (s *Session) Scan(path string) (*model.Structure, error) {
	structure, err := site.Scan(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.structure = structure
	s.mu.Unlock()

	return structure, nil
}

// Current returns the last successfully scanned structure, or false if
// no scan has succeeded yet.
func (s *Session) Current() (*model.Structure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.structure, s.structure != nil
}

// SetTemplateName overrides the template file name used for
// generation. The name is resolved against the project root at render
// time. An empty name restores the default.
func (s *Session) SetTemplateName(name string) {
	s.mu.Lock()
	s.templateName = name
	s.mu.Unlock()
}

// TemplatePath returns the template path associated with the current
// project, or ErrNoProjectSelected if no scan has succeeded yet.
func (s *Session) TemplatePath() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.structure == nil {
		return "", ErrNoProjectSelected
	}
	name := s.templateName
	if name == "" {
		name = DefaultTemplateName
	}
	return filepath.Join(s.structure.RootPath, name), nil
}

// Generate renders the current project's template with the given title
// and content and returns the generated page record. It fails with
// ErrNoProjectSelected if no scan has succeeded yet; render failures
// are passed through from the render package.
func (s *Session) Generate(title, content string) (*model.GeneratedPage, error) {
	templatePath, err := s.TemplatePath()
	if err != nil {
		return nil, err
	}

	lock := s.lockFor(templatePath)
	lock.Lock()
	defer lock.Unlock()

	htmlText, err := render.Render(templatePath, title, content)
	if err != nil {
		return nil, err
	}
	return model.NewGeneratedPage(title, htmlText), nil
}

// lockFor returns the render lock for a template path, creating it on
// first use.
func (s *Session) lockFor(templatePath string) *sync.Mutex {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	lock, ok := s.renderLocks[templatePath]
	if !ok {
		lock = &sync.Mutex{}
		s.renderLocks[templatePath] = lock
	}
	return lock
}
