package views

import (
	"net/http"

	"github.com/a-h/templ"
)

// Site carries the per-deployment labels every page shows.
type Site struct {
	Name     string
	Currency string
}

func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// RenderStatus is Render with a non-200 status, used when a form is shown
// again with an error.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return component.Render(r.Context(), w)
}
