package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetbridge/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.BackendConnector = (*Connector)(nil)

// NewSheetsService creates a Sheets API service using the provided TokenSource.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// Connector resolves credentials and builds the Sheets and Drive backends.
// It carries no state between calls: at-most-once semantics belong to the
// session manager, not here.
type Connector struct {
	cfg CredentialConfig
}

// NewConnector creates a connector for the given credential configuration.
func NewConnector(cfg CredentialConfig) *Connector {
	return &Connector{cfg: cfg}
}

// Connect runs the credential chain and constructs both API clients bound
// to the resolved credential. Client construction does not fail
// independently of credential validity.
func (c *Connector) Connect(ctx context.Context) (driven.SheetsBackend, driven.DriveBackend, error) {
	cred, err := ResolveCredential(ctx, c.cfg)
	if err != nil {
		return nil, nil, err
	}

	sheetsSvc, err := NewSheetsService(ctx, cred.TokenSource)
	if err != nil {
		return nil, nil, fmt.Errorf("create sheets service: %w", err)
	}
	driveSvc, err := NewDriveService(ctx, cred.TokenSource)
	if err != nil {
		return nil, nil, fmt.Errorf("create drive service: %w", err)
	}

	return &SheetsClient{svc: sheetsSvc}, &DriveClient{svc: driveSvc}, nil
}
