// Package views renders the server-side HTML pages of the web client.
package views

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	SignInPage    = "signin.html"
	SignUpPage    = "signup.html"
	DashboardPage = "dashboard.html"
)

var pages = template.Must(
	template.New("").Funcs(template.FuncMap{"resultLabel": ResultLabel}).ParseFS(templateFS, "templates/*.html"),
)

// AuthData feeds the sign-in and sign-up pages.
type AuthData struct {
	Error    string
	Notice   string
	Email    string
	FullName string
}

// DashboardData feeds the dashboard page.
type DashboardData struct {
	View models.DashboardView
}

// Render executes the named page into w.
func Render(w io.Writer, page string, data any) error {
	return pages.ExecuteTemplate(w, page, data)
}

// ResultLabel formats a successful conversion as "<TO>: <value>" with the
// value in its shortest exact form.
func ResultLabel(v models.DashboardView) string {
	if v.Result == nil {
		return ""
	}
	return v.ResultCurrency + ": " + strconv.FormatFloat(*v.Result, 'f', -1, 64)
}
