package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"casaromana/internal/adapters/http/middleware"
	"casaromana/internal/application/listutil"
	"casaromana/internal/application/orchestrators"
	"casaromana/internal/application/projections"
	eventDomain "casaromana/internal/domain/event"
	"casaromana/internal/forms"
)

// maxUploadBytes caps admin image uploads at 10 MB.
const maxUploadBytes = 10 << 20

// adminLocale fixes the back office to one language; only the public site is
// trilingual.
const adminLocale = "en"

func sessionFrom(r *http.Request) (middleware.Session, bool) {
	return middleware.GetSessionFromContext(r.Context())
}

// handleAdminLogin handles GET (form) and POST (authenticate) for /admin/login.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, go straight to the dashboard
		if _, ok := sessionFrom(r); ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderPage(w, r, adminLocale, "admin_login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			renderPage(w, r, adminLocale, "admin_login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout handles POST /admin/logout.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// validTabs are the dashboard sections; the tab only selects what the
// template shows, the projection always loads everything.
var validTabs = map[string]bool{
	"applications": true,
	"products":     true,
	"inquiries":    true,
	"contacts":     true,
	"events":       true,
}

// renderDashboard loads the full dashboard projection and renders it with
// any extra form state merged in.
func renderDashboard(w http.ResponseWriter, r *http.Request, extra map[string]any) {
	dashboard, err := projections.GetDashboard(r.Context(), projections.GetDashboardDeps{
		ApplicationStore: stores.ApplicationStore,
		ProductStore:     stores.ProductStore,
		InquiryStore:     stores.InquiryStore,
		ContactStore:     stores.ContactStore,
		EventStore:       stores.EventStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	tab := r.URL.Query().Get("tab")
	if !validTabs[tab] {
		tab = "applications"
	}

	// Only the active tab is paginated; the stat counts cover all rows.
	pageParams := listutil.ParsePageParams(r.URL.Query())
	var pageInfo listutil.PageInfo
	switch tab {
	case "applications":
		dashboard.Applications, pageInfo = listutil.Page(dashboard.Applications, pageParams)
	case "products":
		dashboard.Products, pageInfo = listutil.Page(dashboard.Products, pageParams)
	case "inquiries":
		dashboard.Inquiries, pageInfo = listutil.Page(dashboard.Inquiries, pageParams)
	case "contacts":
		dashboard.Contacts, pageInfo = listutil.Page(dashboard.Contacts, pageParams)
	case "events":
		dashboard.Events, pageInfo = listutil.Page(dashboard.Events, pageParams)
	}

	// The events tab also shows who signed up for each visible event.
	registrations := map[string][]eventDomain.Registration{}
	if tab == "events" {
		for _, e := range dashboard.Events {
			rows, err := stores.RegistrationStore.ListByEvent(r.Context(), e.ID)
			if err != nil {
				internalError(w, err)
				return
			}
			registrations[e.ID] = rows
		}
	}

	data := map[string]any{
		"Dashboard":     dashboard,
		"Tab":           tab,
		"PageInfo":      pageInfo,
		"Registrations": registrations,
		"CSRFToken":     csrf.Token(r),
		"FieldErrors":   forms.FieldErrors(nil),
	}
	for k, v := range extra {
		data[k] = v
	}
	renderPage(w, r, adminLocale, "admin_dashboard.html", data)
}

// handleAdminDashboard handles GET /admin.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/admin" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderDashboard(w, r, nil)
}

// handleAdminApplicationStatus handles POST /admin/applications/status.
func handleAdminApplicationStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteChangeStatus(r.Context(), r.FormValue("id"), r.FormValue("status"), orchestrators.ChangeStatusDeps{
		ApplicationStore: stores.ApplicationStore,
	})
	if err != nil {
		renderDashboard(w, r, map[string]any{"Error": orchestrators.ErrMsgGeneric})
		return
	}
	http.Redirect(w, r, "/admin?tab=applications", http.StatusSeeOther)
}

// stagedFile pulls the optional image file out of a multipart form. A form
// submitted without a file yields (nil, "", nil).
func stagedFile(r *http.Request, field string) (io.Reader, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	if header.Filename == "" || header.Size == 0 {
		file.Close()
		return nil, "", nil
	}
	return file, header.Filename, nil
}

// handleAdminProductSave handles POST /admin/products/save (create and edit).
func handleAdminProductSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	// An unparseable price fails validation the same way a negative one does.
	price, err := strconv.ParseFloat(r.FormValue("productPrice"), 64)
	if err != nil {
		price = -1
	}
	image, filename, err := stagedFile(r, "productImage")
	if err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, state := orchestrators.ExecuteSaveProduct(r.Context(), orchestrators.SaveProductInput{
		ID:            r.FormValue("id"),
		Name:          r.FormValue("productName"),
		Description:   r.FormValue("productDescription"),
		Price:         price,
		ImageFilename: filename,
		Image:         image,
	}, orchestrators.SaveProductDeps{
		ProductStore: stores.ProductStore,
		Uploader:     uploader,
		GenerateID:   generateID,
		Now:          timeNow,
	})
	if !state.Success {
		extra := submitStateData(state)
		extra["ProductFormOpen"] = true
		renderDashboard(w, r, extra)
		return
	}
	http.Redirect(w, r, "/admin?tab=products", http.StatusSeeOther)
}

// handleAdminProductDelete handles POST /admin/products/delete.
func handleAdminProductDelete(w http.ResponseWriter, r *http.Request) {
	deleteAndRedirect(w, r, "products", stores.ProductStore)
}

// handleAdminEventSave handles POST /admin/events/save (create and edit).
func handleAdminEventSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	image, filename, err := stagedFile(r, "eventImage")
	if err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	_, state := orchestrators.ExecuteSaveEvent(r.Context(), orchestrators.SaveEventInput{
		ID:            r.FormValue("id"),
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Day:           r.FormValue("day"),
		Date:          r.FormValue("date"),
		Time:          r.FormValue("time"),
		ImageFilename: filename,
		Image:         image,
	}, orchestrators.SaveEventDeps{
		EventStore: stores.EventStore,
		Uploader:   uploader,
		GenerateID: generateID,
		Now:        timeNow,
	})
	if !state.Success {
		extra := submitStateData(state)
		extra["EventFormOpen"] = true
		renderDashboard(w, r, extra)
		return
	}
	http.Redirect(w, r, "/admin?tab=events", http.StatusSeeOther)
}

// handleAdminEventDelete handles POST /admin/events/delete.
func handleAdminEventDelete(w http.ResponseWriter, r *http.Request) {
	deleteAndRedirect(w, r, "events", stores.EventStore)
}

// handleAdminInquiryDelete handles POST /admin/inquiries/delete.
func handleAdminInquiryDelete(w http.ResponseWriter, r *http.Request) {
	deleteAndRedirect(w, r, "inquiries", stores.InquiryStore)
}

// handleAdminContactDelete handles POST /admin/contacts/delete.
func handleAdminContactDelete(w http.ResponseWriter, r *http.Request) {
	deleteAndRedirect(w, r, "contacts", stores.ContactStore)
}

// deleteAndRedirect runs the shared delete flow for one admin collection.
// Membership applications have no delete route; they only change status.
func deleteAndRedirect(w http.ResponseWriter, r *http.Request, collection string, store orchestrators.Deleter) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	if err := orchestrators.ExecuteDeleteRecord(r.Context(), collection, id, store); err != nil {
		renderDashboard(w, r, map[string]any{"Error": orchestrators.ErrMsgGeneric})
		return
	}
	http.Redirect(w, r, "/admin?tab="+collection, http.StatusSeeOther)
}
