package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"casaromana/internal/adapters/storage"
	"casaromana/internal/application/orchestrators"
	"casaromana/internal/i18n"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is relative to the repo root; tests override it.
var templatesDir = "internal/adapters/http/templates"

func renderPage(w http.ResponseWriter, r *http.Request, locale, templateName string, data map[string]any) {
	_, loggedIn := sessionFrom(r)

	funcMap := template.FuncMap{
		"t":          func(key string) string { return i18n.T(locale, key) },
		"localePath": func(path string) string { return i18n.PathFor(locale, path) },
		"locale":     func() string { return locale },
		"locales":    func() []string { return i18n.Locales },
		"isLoggedIn": func() bool { return loggedIn },
		"csrfToken":  func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatPrice": func(price float64) string {
			return fmt.Sprintf("%.0f kr", price)
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Locale"] = locale
	data["NewsletterFlag"] = r.URL.Query().Get("newsletter")
	data["ReturnTo"] = r.URL.Path

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		internalError(w, err)
		return
	}
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("template_render_failed", "template", templateName, "error", err.Error())
	}
}

// orgJSONLD builds the schema.org Organization snippet for the home page,
// localized per request.
func orgJSONLD(locale string) template.HTML {
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        i18n.T(locale, "site.name"),
		"description": i18n.T(locale, "site.tagline"),
		"url":         "https://casaromana.no" + i18n.PathFor(locale, "/"),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return template.HTML(`<script type="application/ld+json">` + string(raw) + `</script>`)
}

// submitStateData flattens a SubmitState for the form templates.
func submitStateData(state orchestrators.SubmitState) map[string]any {
	return map[string]any{
		"Success":     state.Success,
		"Error":       state.Error,
		"FieldErrors": state.FieldErrors,
	}
}

// --- Public pages ---

// handleHome handles GET for /, /en and /ro.
func handleHome(w http.ResponseWriter, r *http.Request) {
	locale, rest := i18n.FromPath(r.URL.Path)
	if rest != "/" {
		// An unsupported language prefix sends the visitor to the closest
		// supported locale's version of the same page.
		if tail, ok := i18n.StripUnknownLocale(r.URL.Path); ok {
			target := i18n.PathFor(i18n.Match(r.Header.Get("Accept-Language")), tail)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Events run oldest-first, products newest-first, both capped for the
	// landing page teasers.
	events, err := stores.EventStore.List(r.Context(), storage.OrderAsc)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(events) > 3 {
		events = events[:3]
	}
	products, err := stores.ProductStore.List(r.Context(), storage.OrderDesc)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(products) > 3 {
		products = products[:3]
	}

	renderPage(w, r, locale, "home.html", map[string]any{
		"Events":   events,
		"Products": products,
		"JSONLD":   orgJSONLD(locale),
	})
}

// handleAbout handles GET for the about page.
func handleAbout(w http.ResponseWriter, r *http.Request) {
	locale, _ := i18n.FromPath(r.URL.Path)
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderPage(w, r, locale, "about.html", nil)
}

// handleStore handles GET (product list) and POST (product inquiry) for the
// store page.
func handleStore(w http.ResponseWriter, r *http.Request) {
	locale, _ := i18n.FromPath(r.URL.Path)

	var state orchestrators.SubmitState
	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		state = orchestrators.ExecuteSubmitInquiry(r.Context(), orchestrators.SubmitInquiryInput{
			ProductID:  r.FormValue("productId"),
			Name:       r.FormValue("name"),
			Email:      r.FormValue("email"),
			Message:    r.FormValue("message"),
			Phone:      r.FormValue("phone"),
			Address:    r.FormValue("address"),
			PostalCode: r.FormValue("postalCode"),
			City:       r.FormValue("city"),
		}, orchestrators.SubmitInquiryDeps{
			InquiryStore: stores.InquiryStore,
			ProductStore: stores.ProductStore,
			GenerateID:   generateID,
			Now:          timeNow,
		})
	} else if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	products, err := stores.ProductStore.List(r.Context(), storage.OrderDesc)
	if err != nil {
		internalError(w, err)
		return
	}

	data := submitStateData(state)
	data["Products"] = products
	renderPage(w, r, locale, "store.html", data)
}

// handleEvents handles GET (event list) and POST (registration) for the
// events page.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	locale, _ := i18n.FromPath(r.URL.Path)

	var state orchestrators.SubmitState
	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		attendees, _ := parsePositiveInt(r.FormValue("numberOfAttendees"))

		state = orchestrators.ExecuteRegisterEvent(r.Context(), orchestrators.RegisterEventInput{
			EventID:             r.FormValue("eventId"),
			FirstName:           r.FormValue("firstName"),
			LastName:            r.FormValue("lastName"),
			Email:               r.FormValue("email"),
			Phone:               r.FormValue("phone"),
			NumberOfAttendees:   attendees,
			SpecialRequirements: r.FormValue("specialRequirements"),
			AgreeToTerms:        r.FormValue("agreeToTerms") != "",
		}, orchestrators.RegisterEventDeps{
			RegistrationStore: stores.RegistrationStore,
			EventStore:        stores.EventStore,
			GenerateID:        generateID,
			Now:               timeNow,
		})
	} else if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	events, err := stores.EventStore.List(r.Context(), storage.OrderAsc)
	if err != nil {
		internalError(w, err)
		return
	}

	data := submitStateData(state)
	data["Events"] = events
	renderPage(w, r, locale, "events.html", data)
}

// handleContact handles GET (form) and POST (submission) for the contact page.
func handleContact(w http.ResponseWriter, r *http.Request) {
	locale, _ := i18n.FromPath(r.URL.Path)

	var state orchestrators.SubmitState
	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		state = orchestrators.ExecuteSubmitContact(r.Context(), orchestrators.SubmitContactInput{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Phone:   r.FormValue("phone"),
			Subject: r.FormValue("subject"),
			Message: r.FormValue("message"),
		}, orchestrators.SubmitContactDeps{
			ContactStore: stores.ContactStore,
			Sender:       emailSender,
			NotifyTo:     notifyToAddress,
			GenerateID:   generateID,
			Now:          timeNow,
		})
	} else if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	renderPage(w, r, locale, "contact.html", submitStateData(state))
}

// handleJoin handles GET (form) and POST (application) for the membership
// page.
func handleJoin(w http.ResponseWriter, r *http.Request) {
	locale, _ := i18n.FromPath(r.URL.Path)

	var state orchestrators.SubmitState
	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		state = orchestrators.ExecuteSubmitMembership(r.Context(), orchestrators.SubmitMembershipInput{
			FirstName:      r.FormValue("firstName"),
			LastName:       r.FormValue("lastName"),
			Email:          r.FormValue("email"),
			Phone:          r.FormValue("phone"),
			Address:        r.FormValue("address"),
			PostalCode:     r.FormValue("postalCode"),
			City:           r.FormValue("city"),
			MembershipType: r.FormValue("membershipType"),
			Message:        r.FormValue("message"),
		}, orchestrators.SubmitMembershipDeps{
			ApplicationStore: stores.ApplicationStore,
			Sender:           emailSender,
			NotifyTo:         notifyToAddress,
			GenerateID:       generateID,
			Now:              timeNow,
		})
	} else if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	renderPage(w, r, locale, "join.html", submitStateData(state))
}

// handleNewsletter handles POST for the footer newsletter signup. The form
// lives on every page, so the handler redirects back to where it came from
// with a status flag instead of rendering its own page.
func handleNewsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	state := orchestrators.ExecuteSubscribeNewsletter(r.Context(), orchestrators.SubscribeNewsletterInput{
		Email: r.FormValue("email"),
		Name:  r.FormValue("name"),
	}, orchestrators.SubscribeNewsletterDeps{
		NewsletterStore: stores.NewsletterStore,
		GenerateID:      generateID,
		Now:             timeNow,
	})

	back := r.FormValue("returnTo")
	if back == "" || back[0] != '/' {
		back = "/"
	}
	flag := "ok"
	if !state.Success {
		flag = "invalid"
	}
	sep := "?"
	if strings.Contains(back, "?") {
		sep = "&"
	}
	http.Redirect(w, r, back+sep+"newsletter="+flag, http.StatusSeeOther)
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}
