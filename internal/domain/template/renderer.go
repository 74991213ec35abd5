// Where: cli/internal/domain/template/renderer.go
// What: Template store that renders workflow and setup-notes variants.
// Why: Resolve variant identifiers to parsed templates once and reuse them.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/mobile-ci/cli/assets"
)

// Variant identifier namespaces.
const (
	NamespaceWorkflows = "workflows"
	NamespaceInfo      = "info"
)

const (
	templateExt = ".tmpl"
	partialsDir = "partials"
	// GitHub Actions expressions use ${{ }}, so templates use [[ ]].
	leftDelim  = "[["
	rightDelim = "]]"
)

var (
	ErrTemplateNotFound = errors.New("template variant not found")
	ErrInvalidVariantID = errors.New("invalid template variant id")
)

// Store renders templates from a filesystem. It is safe for concurrent use.
type Store struct {
	fsys  fs.FS
	root  string
	cache sync.Map
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the store backed by the embedded assets.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore(assets.TemplatesFS, assets.TemplatesRoot)
	})
	return defaultStore
}

// NewStore creates a store reading <root>/<namespace>/<name>.tmpl from fsys.
func NewStore(fsys fs.FS, root string) *Store {
	return &Store{fsys: fsys, root: root}
}

// Render executes the template registered under id with params.
func (s *Store) Render(id string, params any) (string, error) {
	tmpl, err := s.load(id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("execute %s: %w", id, err)
	}
	return buf.String(), nil
}

// Has reports whether id names a template file in the store.
func (s *Store) Has(id string) bool {
	file, err := s.file(id)
	if err != nil {
		return false
	}
	info, err := fs.Stat(s.fsys, file)
	return err == nil && !info.IsDir()
}

// IDs lists every registered variant identifier, sorted.
func (s *Store) IDs() ([]string, error) {
	var ids []string
	for _, namespace := range []string{NamespaceWorkflows, NamespaceInfo} {
		matches, err := fs.Glob(s.fsys, path.Join(s.root, namespace, "*"+templateExt))
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			name := strings.TrimSuffix(path.Base(match), templateExt)
			ids = append(ids, namespace+"/"+name)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) load(id string) (*template.Template, error) {
	if value, ok := s.cache.Load(id); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", id)
		}
		return cached, nil
	}
	if !s.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	file, err := s.file(id)
	if err != nil {
		return nil, err
	}

	patterns := []string{file}
	partials, err := fs.Glob(s.fsys, path.Join(s.root, partialsDir, "*"+templateExt))
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, partials...)

	tmpl, err := template.New(path.Base(file)).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(s.fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", id, err)
	}
	actual, _ := s.cache.LoadOrStore(id, tmpl)
	return actual.(*template.Template), nil
}

func (s *Store) file(id string) (string, error) {
	namespace, name, ok := strings.Cut(id, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariantID, id)
	}
	if namespace != NamespaceWorkflows && namespace != NamespaceInfo {
		return "", fmt.Errorf("%w: unknown namespace in %q", ErrInvalidVariantID, id)
	}
	file := path.Join(s.root, namespace, name+templateExt)
	if !fs.ValidPath(file) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariantID, id)
	}
	return file, nil
}
