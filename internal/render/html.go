package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pbaille/blueprint/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// FormData fills the birth form. A zero value is the empty form.
type FormData struct {
	Input domain.BirthInput
	Error string
}

// Form writes the birth form page
func Form(w io.Writer, data FormData) error {
	if err := pages.ExecuteTemplate(w, "form.html", data); err != nil {
		return fmt.Errorf("render form: %w", err)
	}
	return nil
}

// Result writes the reading page
func Result(w io.Writer, r *domain.Reading) error {
	if err := pages.ExecuteTemplate(w, "result.html", NewView(r)); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}
