// Package view embeds the HTML pages served by the handlers.
package view

import (
	"embed"
	"html/template"

	"online_tuition/internal/model"
	"online_tuition/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by gin's c.HTML once Templates is installed with SetHTMLTemplate
const (
	PageIndex          = "index.html"
	PageLogin          = "login.html"
	PageAdminSignup    = "admin_signup.html"
	PageAdminTimetable = "admin_timetable.html"
	PageTimetable      = "timetable.html"
)

// Page is the data every template renders
type Page struct {
	Title      string
	Error      string
	Fields     validation.Errors
	Form       map[string]string
	Action     string
	SignupPath string
	Entries    []model.TimetableEntry
}

// Templates parses every embedded page together so they share the layout blocks
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
