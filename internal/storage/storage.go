package storage

import (
	"context"
	"mime/multipart"

	"github.com/nimblelabs/inquiry-api/internal/models"
)

const (
	// MaxAttachments bounds the number of file parts per submission.
	MaxAttachments = 5
	// MaxFileSize bounds a single uploaded file (10 MiB).
	MaxFileSize = 10 << 20
)

type Store interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (models.Attachment, error)
}
