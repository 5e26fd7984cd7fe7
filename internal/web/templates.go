// Package web renders the server-side HTML surface: the login form, the
// enquiry listing table, and the small static fragments the handlers serve.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Static fragments served as-is.
const (
	SuccessFragment      = "<h1>Thank you for your enquiry!</h1>"
	LoginFailedFragment  = `Invalid username or password. <a href="/login">Try again</a>`
	UnauthorizedFragment = `Unauthorized: Please <a href='/login'>login</a> first.`
)

// EnquiryRow is the view model for one row of the listing table. EnquiryDate
// is preformatted as YYYY-MM-DD by the enquiry service.
type EnquiryRow struct {
	ID                    uint
	Email                 string
	FullName              string
	EnquiryDate           string
	ContactNo             string
	ResidentialArea       string
	ReferencedBy          string
	AcademicQualification string
	OtherCourse           string
	Remarks               string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) render(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

func (r *Renderer) LoginPage() (string, error) {
	return r.render("login.tmpl", nil)
}

func (r *Renderer) EnquiriesPage(rows []EnquiryRow) (string, error) {
	return r.render("enquiries.tmpl", struct{ Enquiries []EnquiryRow }{Enquiries: rows})
}
