package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"mainstreet/internal/domain"
)

// MaxUploadSize is the hard cap on an uploaded image.
const MaxUploadSize = 5 << 20

const thumbnailWidth = 480

// rasterExts are formats that must decode and get a thumbnail. svg, avif and
// webp are accepted but stored byte-for-byte.
var rasterExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
}

var passthroughExts = map[string]bool{
	".svg": true, ".avif": true, ".webp": true,
}

type uploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(dir, baseURL string) domain.UploadService {
	return &uploadService{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *uploadService) Save(ctx context.Context, filename string, data []byte) (*domain.Upload, error) {
	if len(data) == 0 {
		return nil, domain.FieldErrors{{Field: "file", Message: "file is required"}}
	}
	if len(data) > MaxUploadSize {
		return nil, domain.FieldErrors{{Field: "file", Message: fmt.Sprintf("file exceeds %d bytes", MaxUploadSize)}}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !rasterExts[ext] && !passthroughExts[ext] {
		return nil, domain.FieldErrors{{Field: "file", Message: fmt.Sprintf("file type %q is not allowed", ext)}}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	if passthroughExts[ext] {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write upload: %w", err)
		}
		return &domain.Upload{URL: s.baseURL + "/" + name}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.FieldErrors{{Field: "file", Message: "file is not a decodable image"}}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	thumbName := strings.TrimSuffix(name, ext) + "_thumb" + ext
	thumb := img
	if img.Bounds().Dx() > thumbnailWidth {
		thumb = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Save(thumb, filepath.Join(s.dir, thumbName)); err != nil {
		return nil, fmt.Errorf("write thumbnail: %w", err)
	}

	return &domain.Upload{
		URL:          s.baseURL + "/" + name,
		ThumbnailURL: s.baseURL + "/" + thumbName,
	}, nil
}
