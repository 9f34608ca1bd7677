package web

import (
	"net/http"

	"casaromana/internal/adapters/http/middleware"
)

// registerLocalized registers a handler at the default-locale path plus the
// /en and /ro prefixed variants. The handler reads the locale back out of the
// request path.
func registerLocalized(mux *http.ServeMux, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, h)
	mux.HandleFunc("/en"+path, h)
	mux.HandleFunc("/ro"+path, h)
}

// registerRoutes wires all site and admin routes onto the mux.
func registerRoutes(mux *http.ServeMux) {
	// Public site. "/" also catches /en/ and /ro/ plus anything unknown;
	// handleHome 404s the latter.
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/en", handleHome)
	mux.HandleFunc("/ro", handleHome)
	registerLocalized(mux, "/about", handleAbout)
	registerLocalized(mux, "/store", handleStore)
	registerLocalized(mux, "/events", handleEvents)
	registerLocalized(mux, "/contact", handleContact)
	registerLocalized(mux, "/join", handleJoin)
	mux.HandleFunc("/newsletter", handleNewsletter)

	// Back office. Login/logout stay outside RequireAuth.
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)
	mux.Handle("/admin", middleware.RequireAuth(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/admin/applications/status", middleware.RequireAuth(http.HandlerFunc(handleAdminApplicationStatus)))
	mux.Handle("/admin/products/save", middleware.RequireAuth(http.HandlerFunc(handleAdminProductSave)))
	mux.Handle("/admin/products/delete", middleware.RequireAuth(http.HandlerFunc(handleAdminProductDelete)))
	mux.Handle("/admin/events/save", middleware.RequireAuth(http.HandlerFunc(handleAdminEventSave)))
	mux.Handle("/admin/events/delete", middleware.RequireAuth(http.HandlerFunc(handleAdminEventDelete)))
	mux.Handle("/admin/inquiries/delete", middleware.RequireAuth(http.HandlerFunc(handleAdminInquiryDelete)))
	mux.Handle("/admin/contacts/delete", middleware.RequireAuth(http.HandlerFunc(handleAdminContactDelete)))
}
