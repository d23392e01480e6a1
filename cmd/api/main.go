package main

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/hitaishi/buildmart-api/internal/config"
	"github.com/hitaishi/buildmart-api/internal/database"
	"github.com/hitaishi/buildmart-api/internal/email"
	"github.com/hitaishi/buildmart-api/internal/handlers"
	"github.com/hitaishi/buildmart-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	mailer := email.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	h := &handlers.Handlers{
		DB:       db,
		Mailer:   mailer,
		Sessions: sessionStore,
		Cfg:      cfg,
	}

	router := routes.Setup(h, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
