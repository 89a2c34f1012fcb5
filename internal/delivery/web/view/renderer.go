package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"socksflow/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Renderer implements echo.Renderer. Each page is parsed together with the
// layout and partials into its own template set.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page template.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, layoutFile, partialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse layout")
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}

		set, err := base.Clone()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := set.ParseFS(templateFS, file); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", file)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = set
	}

	return r, nil
}

// Render implements echo.Renderer. The page is executed into a buffer first so
// a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	set, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.Wrapf(err, "failed to render %s", name)
	}
	_, err := buf.WriteTo(w)

	return errors.WithStack(err)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]

	return ok
}
