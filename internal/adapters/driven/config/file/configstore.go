package file

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Default credential file locations, relative to the working directory.
const (
	DefaultTokenPath          = "token.json"
	DefaultClientSecretsPath  = "credentials.json"
	DefaultServiceAccountPath = "service_account.json"
)

// Config holds every setting the server recognises.
type Config struct {
	// CredentialsConfig is an inline service-account credentials blob.
	CredentialsConfig string `toml:"credentials_config"`
	// ServiceAccountPath points at a service-account key file.
	ServiceAccountPath string `toml:"service_account_path"`
	// TokenPath points at a stored user authorization.
	TokenPath string `toml:"token_path"`
	// ClientSecretsPath points at the OAuth client secrets file.
	ClientSecretsPath string `toml:"client_secrets_path"`
	// DefaultSpreadsheetID backs operations that omit an explicit ID.
	DefaultSpreadsheetID string `toml:"default_spreadsheet_id"`
	// DriveFolderID is the Drive working folder for new and listed
	// spreadsheets. Empty means the drive root.
	DriveFolderID string `toml:"drive_folder_id"`
	// HTTP switches the server from stdio to streamable HTTP.
	HTTP bool `toml:"http"`
	// Port is the HTTP listen port. 0 picks an available one.
	Port int `toml:"port"`
}

// Load reads configuration from the TOML file at path, then applies
// environment variable overrides. A missing file is not an error — the
// server can run on environment variables and defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServiceAccountPath: DefaultServiceAccountPath,
		TokenPath:          DefaultTokenPath,
		ClientSecretsPath:  DefaultClientSecretsPath,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with the environment variables the
// server has always recognised.
func (c *Config) applyEnv() {
	setString(&c.CredentialsConfig, "CREDENTIALS_CONFIG")
	setString(&c.ServiceAccountPath, "SERVICE_ACCOUNT_PATH")
	setString(&c.TokenPath, "TOKEN_PATH")
	setString(&c.ClientSecretsPath, "CREDENTIALS_PATH")
	setString(&c.DefaultSpreadsheetID, "DEFAULT_SPREADSHEET_ID")
	setString(&c.DriveFolderID, "DRIVE_FOLDER_ID")

	if v := os.Getenv("USE_SHTTP"); v != "" {
		c.HTTP = true
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
