package web

import (
	"net/http"

	"github.com/qaflow/qaflow/app/gate"
)

// publicPage is a static page available without a session.
type publicPage struct {
	Path  string
	Title string
	Body  []string // paragraphs
}

var publicPages = []publicPage{
	{Path: "/docs", Title: "Documentation", Body: []string{
		"Create an account and open the API token page in the dashboard to get your bearer token.",
		"Submit a test run with POST /api/tests and the header Authorization: Bearer <token>. " +
			"The JSON body needs name and status, and may carry description, startTime and endTime " +
			"in epoch milliseconds, duration, tester, environment and steps.",
		"Steps with a screenshot are shown with the image on the report page.",
	}},
	{Path: "/about", Title: "About", Body: []string{
		"QA Flow collects test runs from your pipelines and shows them in one dashboard.",
	}},
	{Path: "/contact", Title: "Contact", Body: []string{"Reach the team at support@qaflow.dev."}},
	{Path: "/privacy", Title: "Privacy", Body: []string{
		"We store your account details and the test reports you submit. Nothing is shared with third parties.",
	}},
	{Path: "/terms", Title: "Terms", Body: []string{
		"Use the service for your own test results and keep your API token secret.",
	}},
	{Path: "/blog", Title: "Blog", Body: []string{"No posts yet."}},
	{Path: "/faq", Title: "FAQ", Body: []string{
		"Lost your token? Regenerate it on the API token page, the old one stops working immediately.",
	}},
}

// handleHome renders the landing page.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home.html", h.newData(r, "QA Flow"))
}

// publicPageHandler returns a handler rendering the given static page.
func (h *Handler) publicPageHandler(p publicPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.newData(r, p.Title)
		data.Page = p
		h.render(w, http.StatusOK, "page.html", data)
	}
}

// handleThemeToggle toggles the theme between light and dark and goes back to the page it came from.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := h.getTheme(r).Toggle()
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    newTheme.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	back := r.FormValue("back")
	if back == "" || !gate.IsLocalRedirect(back) {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
