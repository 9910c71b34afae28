package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_KEY", "")
	t.Setenv("ALLOW_UNROSTERED", "")

	cfg, err := ParseFlags([]string{"-d", "sessiondesk.db", "-admin-key", "secret"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 4170 {
		t.Errorf("Expected default port 4170, got %d", cfg.Port)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("Expected default backend sqlite, got %q", cfg.Backend)
	}
	if cfg.AllowUnrostered {
		t.Error("Expected strict roster validation by default")
	}
	if cfg.UploadDir == "" {
		t.Error("Expected a default upload dir")
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/sessiondesk")
	t.Setenv("ADMIN_KEY", "env-secret")
	t.Setenv("ALLOW_UNROSTERED", "true")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080 from env, got %d", cfg.Port)
	}
	if cfg.Backend != BackendPostgres {
		t.Errorf("Expected postgres backend, got %q", cfg.Backend)
	}
	if cfg.AdminKey != "env-secret" {
		t.Errorf("Expected admin key from env, got %q", cfg.AdminKey)
	}
	if !cfg.AllowUnrostered {
		t.Error("Expected ALLOW_UNROSTERED=true to take effect")
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
	t.Setenv("ADMIN_KEY", "")

	tests := []struct {
		name string
		args []string
	}{
		{"missing database URL", []string{"-admin-key", "secret"}},
		{"missing admin key", []string{"-d", "sessiondesk.db"}},
		{"unknown backend", []string{"-b", "mongodb", "-d", "x", "-admin-key", "secret"}},
		{"google without spreadsheet", []string{"-b", "google", "-c", "creds.json", "-admin-key", "secret"}},
		{"google without credentials", []string{"-b", "google", "-s", "sheet-id", "-admin-key", "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DATABASE_URL", "sessiondesk.db")
	t.Setenv("ADMIN_KEY", "secret")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected an error for an invalid PORT")
	}
}
