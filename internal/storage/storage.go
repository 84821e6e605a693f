package storage

import (
	"context"
)

type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, prefix, filename string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	GetFile(ctx context.Context, fileURL string) ([]byte, error)
}
