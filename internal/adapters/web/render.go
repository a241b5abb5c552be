package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"signalsite/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type renderer struct {
	tmpl   *template.Template
	logger *zap.Logger
}

// page renders the landing page with status. The body is buffered so a
// template failure still yields a clean 500.
func (rd *renderer) page(w http.ResponseWriter, status int, page *entities.Page) {
	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, "page.html", page); err != nil {
		rd.logger.Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
