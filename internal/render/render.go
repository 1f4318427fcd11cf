// internal/render/render.go
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/Annany2002/servo-panel/internal/logger"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateRender   = errors.New("template render failed")
	customLog           = logger.NewLogger()
)

// Renderer executes HTML templates parsed from a filesystem.
// With reload set the files are parsed again on every call, so edits show up
// without a restart.
type Renderer struct {
	fsys    fs.FS
	pattern string
	reload  bool
	tmpl    *template.Template
}

// New creates a Renderer for the templates in fsys matching pattern.
// Without reload the templates are parsed once, here.
func New(fsys fs.FS, pattern string, reload bool) (*Renderer, error) {
	r := &Renderer{fsys: fsys, pattern: pattern, reload: reload}
	if reload {
		customLog.Debugf("Render: templates matching %q reload on every request", pattern)
		return r, nil
	}

	tmpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) parse() (*template.Template, error) {
	tmpl, err := template.ParseFS(r.fsys, r.pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %w", ErrTemplateRender, r.pattern, err)
	}
	return tmpl, nil
}

// Render executes the named template into memory. Nothing is returned on
// failure, so callers never emit a partial page.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	tmpl := r.tmpl
	if r.reload {
		var err error
		if tmpl, err = r.parse(); err != nil {
			return nil, err
		}
	}

	t := tmpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateRender, name, err)
	}
	return buf.Bytes(), nil
}
