package handler

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes page templates. Every page shares the layout and the
// partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	base := template.Must(template.New("").ParseFS(templateFS,
		"templates/layout.html", "templates/partials.html"))

	pages := map[string]*template.Template{}
	for _, name := range []string{"home.html", "login.html", "admin.html"} {
		t := template.Must(base.Clone())
		pages[name] = template.Must(t.ParseFS(templateFS, path.Join("templates", name)))
	}
	return &Renderer{pages: pages}
}

// Render writes the named page with status. Output is buffered so a
// template error never produces half a page.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	t, ok := rd.pages[name]
	if !ok {
		log.Error().Str("page", name).Msg("unknown template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("page", name).Msg("render failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Page carries what the layout needs on every view. Category is kept by
// the header search so a search stays inside the selected category.
type Page struct {
	Title         string
	Search        string
	Category      string
	Toast         string
	ToastMS       int64
	Authenticated bool // shows the admin shortcuts in the storefront header
}
