package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/user-admin/internal/flash"
	"github.com/MKhiriev/user-admin/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names. Each one is parsed together with the shared layout.
const (
	pageUserList   = "user_list.html"
	pageUserForm   = "user_form.html"
	pageUserDetail = "user_detail.html"
)

// layoutTemplate is the entry point every page is executed through.
const layoutTemplate = "layout"

type views struct {
	pages map[string]*template.Template
}

func mustParseViews() *views {
	v := &views{pages: make(map[string]*template.Template)}
	for _, page := range []string{pageUserList, pageUserForm, pageUserDetail} {
		v.pages[page] = template.Must(
			template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page),
		)
	}
	return v
}

// basePage carries what the layout renders on every page.
type basePage struct {
	Title    string
	Messages []flash.Message
}

type userListPage struct {
	basePage
	Users []models.User
}

type userFormPage struct {
	basePage
	Form   models.UserForm
	Errors map[string]string
}

type userDetailPage struct {
	basePage
	User models.User
}
