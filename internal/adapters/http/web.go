package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"

	"casaromana/internal/adapters/email"
	"casaromana/internal/adapters/http/middleware"
	accountStore "casaromana/internal/adapters/storage/account"
	applicationStore "casaromana/internal/adapters/storage/application"
	contactStore "casaromana/internal/adapters/storage/contact"
	eventStore "casaromana/internal/adapters/storage/event"
	inquiryStore "casaromana/internal/adapters/storage/inquiry"
	newsletterStore "casaromana/internal/adapters/storage/newsletter"
	productStore "casaromana/internal/adapters/storage/product"
	"casaromana/internal/adapters/upload"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore      accountStore.Store
	ApplicationStore  applicationStore.Store
	ProductStore      productStore.Store
	InquiryStore      inquiryStore.Store
	ContactStore      contactStore.Store
	EventStore        eventStore.Store
	RegistrationStore eventStore.RegistrationStore
	NewsletterStore   newsletterStore.Store
}

// loadCSRFKey reads the CSRF secret from CASA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CASA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CASA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CASA_ENV") == "production" {
		log.Fatal("CASA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CASA_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global uploader for admin image handling (set by SetUploader)
var uploader upload.Uploader

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// notifyToAddress receives admin notifications for new submissions.
var notifyToAddress string

// SetEmailSender sets the global email sender and notification recipient.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	notifyToAddress = notifyTo
}

// SetUploader sets the global image uploader.
func SetUploader(u upload.Uploader) {
	uploader = u
}

// NewMux wires HTTP handlers for the site. uploadsDir is served at /uploads/
// when non-empty (local uploader mode); with Cloudinary it stays empty.
func NewMux(staticDir, uploadsDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	secure := os.Getenv("CASA_ENV") == "production"
	middleware.SecureCookies = secure

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	if uploadsDir != "" {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Apply middleware: Recover -> Timing -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, secure),
		middleware.Auth(sessions),
		middleware.Timing,
		middleware.Recover,
	)
}
