package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nimblelabs/inquiry-api/internal/models"
	"github.com/nimblelabs/inquiry-api/internal/utils"
)

// DiskStore writes uploads into a single directory, created on first use.
// Stored names are "<unix-epoch-ms>-<sanitized original name>" so concurrent
// requests cannot collide under normal clock behavior.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) Save(ctx context.Context, fh *multipart.FileHeader) (models.Attachment, error) {
	const op = "DiskStore.Save"

	// Size violations surface as the generic server error; only missing
	// required fields produce a 400.
	if fh.Size > MaxFileSize {
		return models.Attachment{}, utils.E(utils.CodeInternal, op, "file exceeds 10MiB limit", nil)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return models.Attachment{}, utils.E(utils.CodeUnavailable, op, "failed to create upload dir", err)
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + SanitizeFilename(fh.Filename)
	dst := filepath.Join(s.dir, name)

	src, err := fh.Open()
	if err != nil {
		return models.Attachment{}, utils.E(utils.CodeUnavailable, op, "failed to open upload", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return models.Attachment{}, utils.E(utils.CodeUnavailable, op, "failed to create file", err)
	}

	written, err := io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return models.Attachment{}, utils.E(utils.CodeUnavailable, op, "failed to write file", err)
	}

	return models.Attachment{
		OriginalName: fh.Filename,
		FileName:     name,
		Path:         dst,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         written,
	}, nil
}

// SanitizeFilename keeps ASCII letters, digits, '.', '_' and '-'; every other
// byte becomes '_'. The original extension survives as part of the name.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
