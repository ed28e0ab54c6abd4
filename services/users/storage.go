package users

import (
	"context"

	"github.com/antarin-app/antarin/internal/pkg/storage"
)

// FileStore abstracts the presigned-URL file storage used for profile
// images and onboarding documents
//
//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/antarin-app/antarin/services/users FileStore
type FileStore interface {
	GenerateUploadURL(ctx context.Context, key, contentType string) (*storage.UploadTicket, error)
	GetURL(ctx context.Context, storageRef string) (string, error)
}
