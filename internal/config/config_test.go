package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Clear anything the surrounding environment may carry; an empty
	// value reads as unset.
	for _, key := range []string{
		"PORT", "DB_DSN", "SESSION_SECRET", "BASE_URL", "UPLOADS_DIR",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "ADMIN_EMAIL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Contains(t, cfg.DSN, "parseTime=true")
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.NotEmpty(t, cfg.UploadsDir)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SESSION_SECRET", "another-secret")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "another-secret", cfg.SessionSecret)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 587, cfg.SMTPPort)
}
