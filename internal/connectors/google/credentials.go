package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
	"github.com/custodia-labs/sheetbridge/internal/logger"
)

// Scopes requested for every credential, regardless of strategy.
var Scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// CredentialKind identifies which strategy produced a credential.
type CredentialKind string

const (
	// KindInlineServiceAccount is a service-account blob supplied
	// directly via configuration.
	KindInlineServiceAccount CredentialKind = "inline-service-account"
	// KindServiceAccountFile is a service-account key file on disk.
	KindServiceAccountFile CredentialKind = "service-account-file"
	// KindStoredUser is a previously stored user authorization,
	// refreshed transparently when expired.
	KindStoredUser CredentialKind = "stored-user-oauth"
	// KindApplicationDefault is the environment's ambient credential
	// discovery (env var, gcloud, metadata server).
	KindApplicationDefault CredentialKind = "application-default"
)

// Credential is an authenticated handle to the Google APIs.
type Credential struct {
	Kind        CredentialKind
	TokenSource oauth2.TokenSource
}

// CredentialConfig carries everything the strategy chain may consult.
// Empty fields simply make their strategy fail over to the next one.
type CredentialConfig struct {
	// InlineJSON is a raw service-account credentials blob.
	InlineJSON string
	// ServiceAccountPath points at a service-account key file.
	ServiceAccountPath string
	// TokenPath points at a stored user authorization.
	TokenPath string
	// ClientSecretsPath points at the OAuth client secrets file, used
	// when the stored token does not embed its client ID and secret.
	ClientSecretsPath string
}

type strategy struct {
	kind    CredentialKind
	resolve func(ctx context.Context, cfg CredentialConfig) (oauth2.TokenSource, error)
}

// The chain order is policy: explicit configuration beats implicit
// discovery. First success wins.
var strategies = []strategy{
	{KindInlineServiceAccount, resolveInline},
	{KindServiceAccountFile, resolveServiceAccountFile},
	{KindStoredUser, resolveStoredUser},
	{KindApplicationDefault, resolveApplicationDefault},
}

// ResolveCredential walks the strategy chain and returns the first
// credential that resolves. When every strategy fails the returned error is
// a *domain.AuthenticationError listing the attempted kinds and wrapping
// the last cause.
func ResolveCredential(ctx context.Context, cfg CredentialConfig) (*Credential, error) {
	var attempted []string
	var lastErr error

	for _, s := range strategies {
		ts, err := s.resolve(ctx, cfg)
		if err != nil {
			logger.Debug("credential strategy %s: %v", s.kind, err)
			attempted = append(attempted, string(s.kind))
			lastErr = err
			continue
		}
		logger.Info("authenticated via %s", s.kind)
		return &Credential{Kind: s.kind, TokenSource: ts}, nil
	}

	return nil, &domain.AuthenticationError{Attempted: attempted, Cause: lastErr}
}

func resolveInline(ctx context.Context, cfg CredentialConfig) (oauth2.TokenSource, error) {
	if cfg.InlineJSON == "" {
		return nil, errors.New("no inline credentials configured")
	}
	creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.InlineJSON), Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse inline credentials: %w", err)
	}
	return creds.TokenSource, nil
}

func resolveServiceAccountFile(ctx context.Context, cfg CredentialConfig) (oauth2.TokenSource, error) {
	if cfg.ServiceAccountPath == "" {
		return nil, errors.New("no service account file configured")
	}
	data, err := os.ReadFile(cfg.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account file: %w", err)
	}
	return creds.TokenSource, nil
}

// storedToken is the stored user authorization format: the token fields
// plus, usually, the OAuth client that issued them.
type storedToken struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Expiry       string `json:"expiry"`
}

// resolveStoredUser loads a previously stored user authorization. An
// expired token with a refresh token is refreshed transparently by the
// token source. There is deliberately no interactive consent fallback:
// this process may be a long-running server with no browser to open, so an
// absent or irrecoverable authorization fails over to ambient discovery.
func resolveStoredUser(ctx context.Context, cfg CredentialConfig) (oauth2.TokenSource, error) {
	if cfg.TokenPath == "" {
		return nil, errors.New("no token path configured")
	}
	data, err := os.ReadFile(cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("read stored authorization: %w", err)
	}

	var st storedToken
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse stored authorization: %w", err)
	}

	conf := &oauth2.Config{
		ClientID:     st.ClientID,
		ClientSecret: st.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}
	if conf.ClientID == "" || conf.ClientSecret == "" {
		secrets, err := os.ReadFile(cfg.ClientSecretsPath)
		if err != nil {
			return nil, fmt.Errorf("stored authorization has no client, read client secrets: %w", err)
		}
		conf, err = google.ConfigFromJSON(secrets, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("parse client secrets: %w", err)
		}
	}

	token := &oauth2.Token{
		AccessToken:  st.Token,
		RefreshToken: st.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       parseExpiry(st.Expiry),
	}
	if !token.Valid() && token.RefreshToken == "" {
		return nil, errors.New("stored authorization expired and not refreshable")
	}

	return conf.TokenSource(ctx, token), nil
}

func resolveApplicationDefault(ctx context.Context, _ CredentialConfig) (oauth2.TokenSource, error) {
	creds, err := google.FindDefaultCredentials(ctx, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("application default credentials: %w", err)
	}
	return creds.TokenSource, nil
}

// parseExpiry accepts RFC 3339 with or without a zone designator; stored
// authorizations written by other tooling use both. A zero time means the
// token is treated as non-expiring until the backend says otherwise.
func parseExpiry(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
