package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
	"github.com/custodia-labs/sheetbridge/internal/core/ports/driven"
)

// Ensure DriveClient implements the interface.
var _ driven.DriveBackend = (*DriveClient)(nil)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// DriveClient implements driven.DriveBackend against the Drive v3 API.
type DriveClient struct {
	svc *drive.Service
}

// NewDriveClient wraps an authenticated Drive service.
func NewDriveClient(svc *drive.Service) *DriveClient {
	return &DriveClient{svc: svc}
}

// ListSpreadsheets lists spreadsheet files, most recently modified first.
// A non-empty folderID restricts the listing to that folder.
func (c *DriveClient) ListSpreadsheets(ctx context.Context, folderID string) ([]domain.FileRef, error) {
	query := fmt.Sprintf("mimeType='%s'", spreadsheetMimeType)
	if folderID != "" {
		query += fmt.Sprintf(" and '%s' in parents", folderID)
	}

	resp, err := c.svc.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id, name)").
		OrderBy("modifiedTime desc").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list spreadsheets: %w", WrapError(err))
	}

	refs := make([]domain.FileRef, len(resp.Files))
	for i, f := range resp.Files {
		refs[i] = domain.FileRef{ID: f.Id, Name: f.Name}
	}
	return refs, nil
}

// MoveToFolder reparents a file into the given folder, detaching it from
// all current parents.
func (c *DriveClient) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	file, err := c.svc.Files.Get(fileID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get file parents: %w", WrapError(err))
	}

	_, err = c.svc.Files.Update(fileID, nil).
		AddParents(folderID).
		RemoveParents(strings.Join(file.Parents, ",")).
		Fields("id, parents").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("move file: %w", WrapError(err))
	}
	return nil
}

// CreatePermission grants a user access to a file.
func (c *DriveClient) CreatePermission(ctx context.Context, fileID string, perm domain.Permission) (string, error) {
	body := &drive.Permission{
		Type:         "user",
		Role:         perm.Role,
		EmailAddress: perm.EmailAddress,
	}

	resp, err := c.svc.Permissions.Create(fileID, body).
		SendNotificationEmail(perm.SendNotification).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create permission: %w", WrapError(err))
	}
	return resp.Id, nil
}
