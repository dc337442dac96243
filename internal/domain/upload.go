package domain

import "context"

// Upload is the stored result of an image upload.
type Upload struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// UploadService stores admin-uploaded images and produces thumbnails for
// raster formats.
type UploadService interface {
	Save(ctx context.Context, filename string, data []byte) (*Upload, error)
}
