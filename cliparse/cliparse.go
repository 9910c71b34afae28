package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port            int
	Backend         string
	DatabaseURL     string
	SpreadsheetID   string
	CredentialsFile string
	AdminKey        string
	UploadDir       string
	AllowUnrostered bool
}

// Store backend names
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendGoogle   = "google"
)

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("sessiondesk", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Backend, "b", "", "Store backend (sqlite, postgres, or google)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite/postgres backends)")
	fs.StringVar(&cfg.SpreadsheetID, "s", "", "Spreadsheet ID (google backend)")
	fs.StringVar(&cfg.CredentialsFile, "c", "", "Service account credentials file (google backend)")
	fs.StringVar(&cfg.UploadDir, "u", "", "Directory for uploaded roster files")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Upload admin key (prefer env)")

	fs.BoolVar(&cfg.AllowUnrostered, "allow-unrostered", false,
		"Append a new attendance row for feedback from emails not on the roster")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4170 // default
		}
	}

	if cfg.Backend == "" {
		cfg.Backend = os.Getenv("STORE_BACKEND")
		if cfg.Backend == "" {
			cfg.Backend = BackendSQLite
		}
	}
	switch cfg.Backend {
	case BackendSQLite, BackendPostgres, BackendGoogle:
	default:
		return Config{}, errors.New("store backend must be sqlite, postgres, or google")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv("SPREADSHEET_ID")
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}

	// Backend-specific requirements
	switch cfg.Backend {
	case BackendGoogle:
		if cfg.SpreadsheetID == "" {
			return Config{}, errors.New("spreadsheet ID required (use -s or SPREADSHEET_ID env)")
		}
		if cfg.CredentialsFile == "" {
			return Config{}, errors.New("credentials file required (use -c or GOOGLE_CREDENTIALS_FILE env)")
		}
	default:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.Getenv("UPLOAD_DIR")
		if cfg.UploadDir == "" {
			cfg.UploadDir = os.TempDir()
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if !cfg.AllowUnrostered {
		cfg.AllowUnrostered = os.Getenv("ALLOW_UNROSTERED") == "true"
	}

	return cfg, nil
}
