package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "casaromana/internal/adapters/email"
	web "casaromana/internal/adapters/http"
	"casaromana/internal/adapters/storage"
	accountStore "casaromana/internal/adapters/storage/account"
	applicationStore "casaromana/internal/adapters/storage/application"
	contactStore "casaromana/internal/adapters/storage/contact"
	eventStore "casaromana/internal/adapters/storage/event"
	inquiryStore "casaromana/internal/adapters/storage/inquiry"
	newsletterStore "casaromana/internal/adapters/storage/newsletter"
	productStore "casaromana/internal/adapters/storage/product"
	"casaromana/internal/adapters/upload"
	"casaromana/internal/application/orchestrators"
	"casaromana/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize database with WAL mode and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Wrap the DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:      acctStore,
		ApplicationStore:  applicationStore.NewSQLiteStore(timedDB),
		ProductStore:      productStore.NewSQLiteStore(timedDB),
		InquiryStore:      inquiryStore.NewSQLiteStore(timedDB),
		ContactStore:      contactStore.NewSQLiteStore(timedDB),
		EventStore:        eventStore.NewSQLiteStore(timedDB),
		RegistrationStore: eventStore.NewRegistrationSQLiteStore(timedDB),
		NewsletterStore:   newsletterStore.NewSQLiteStore(timedDB),
	}

	// Seed the admin account on first startup
	if cfg.AdminPassword == "" && cfg.IsProduction() {
		log.Fatal("CASA_ADMIN_PASSWORD is required in production")
	}
	adminPassword := cfg.AdminPassword
	if adminPassword == "" {
		adminPassword = "development-only"
	}
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), cfg.AdminEmail, adminPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Image storage: Cloudinary when configured, local disk otherwise
	uploadsDir := ""
	if cfg.CloudinaryURL != "" {
		cld, err := upload.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatalf("failed to configure Cloudinary: %v", err)
		}
		web.SetUploader(cld)
		log.Println("Image uploads configured (Cloudinary)")
	} else {
		local, err := upload.NewLocalUploader(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Fatalf("failed to configure local uploads: %v", err)
		}
		web.SetUploader(local)
		uploadsDir = local.Dir()
		log.Println("Image uploads configured (local disk — set CLOUDINARY_URL for production)")
	}

	// Notifications: Resend when configured, logged otherwise
	if cfg.ResendAPIKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom), cfg.NotifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.NotifyTo)
		if cfg.IsProduction() {
			log.Println("WARNING: RESEND_API_KEY is not set — admin notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set RESEND_API_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", uploadsDir, stores)

	addr := ":" + cfg.Port
	log.Printf("Casa Română %s starting on %s (env=%s)", version, addr, cfg.Env)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
