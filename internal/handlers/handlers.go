package handlers

import (
	"context"
	"database/sql"
	"log"

	"github.com/gorilla/sessions"

	"github.com/hitaishi/buildmart-api/internal/config"
	"github.com/hitaishi/buildmart-api/internal/email"
)

// Handlers holds every dependency the route handlers need. Constructed in
// main and injected, so tests can swap in a throwaway DB and mailer.
type Handlers struct {
	DB       *sql.DB
	Mailer   email.Mailer
	Sessions *sessions.CookieStore
	Cfg      *config.Config
}

// notify sends a best-effort email after a committed write. The returned
// status feeds the response's emailStatus field; a failure never changes
// the response's status code and never unwinds the write.
func (h *Handlers) notify(ctx context.Context, msg email.Message) string {
	if err := h.Mailer.Send(ctx, msg); err != nil {
		log.Printf("WARNING: email to %s failed (record already saved): %v", msg.To, err)
		return "pending"
	}
	return "sent"
}
