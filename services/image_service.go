package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"
	"strings"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrUploadsDisabled = fmt.Errorf("%w: image uploads are not configured", ErrInvalidInput)

type ImageService struct {
	db    *sql.DB
	ids   *storage.Allocator
	blobs BlobStore
}

// NewImageService builds the service; blobs may be nil, which disables uploads.
func NewImageService(db *sql.DB, ids *storage.Allocator, blobs BlobStore) *ImageService {
	return &ImageService{db: db, ids: ids, blobs: blobs}
}

func (s *ImageService) List(ctx context.Context, filter models.ImageFilter) ([]models.Image, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("crop_id", filter.CropID)
	rows, err := s.db.QueryContext(ctx,
		`SELECT image_id, crop_id, image_url, created_at FROM images`+cond.where()+` ORDER BY created_at DESC`,
		cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ImageID, &img.CropID, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Add records an image that is already hosted at req.ImageURL.
func (s *ImageService) Add(ctx context.Context, req models.ImageRequest) (*models.Image, error) {
	if req.ImageURL == "" {
		return nil, invalid("image_url is required")
	}
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	img := models.Image{CropID: req.CropID, ImageURL: req.ImageURL}
	err := s.ids.RetryOnCollision(ctx, func() error {
		return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			if err := storage.RefCrop.Check(ctx, tx, req.CropID); err != nil {
				return err
			}
			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return err
			}
			img.ImageID = key.Int()
			return tx.QueryRowContext(ctx,
				`INSERT INTO images (image_id, crop_id, image_url) VALUES ($1, $2, $3) RETURNING created_at`,
				key, req.CropID, req.ImageURL).Scan(&img.CreatedAt)
		})
	})
	if err != nil {
		return nil, classifyWrite(err)
	}
	return &img, nil
}

// Upload stores the file in object storage and records its URL against the crop.
func (s *ImageService) Upload(ctx context.Context, cropID, filename, contentType string, size int64, body io.Reader) (*models.Image, error) {
	if s.blobs == nil {
		return nil, ErrUploadsDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("content type %q is not an image", contentType)
	}
	if err := s.checkCrop(ctx, cropID); err != nil {
		return nil, classifyWrite(err)
	}

	key := fmt.Sprintf("crops/%s/%s%s", cropID, uuid.New().String(), strings.ToLower(path.Ext(filename)))
	url, err := s.blobs.Put(ctx, key, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	fields := log.Fields{"crop_id": cropID, "key": key}
	log.WithFields(fields).Info("crop image uploaded")

	img, err := s.Add(ctx, models.ImageRequest{CropID: cropID, ImageURL: url})
	if err != nil {
		// The row was never written, so the object would be unreachable.
		if derr := s.blobs.Delete(context.WithoutCancel(ctx), key); derr != nil {
			log.WithFields(fields).WithError(derr).Error("failed to remove orphaned crop image")
		}
		return nil, err
	}
	return img, nil
}

func (s *ImageService) checkCrop(ctx context.Context, cropID string) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()
	return storage.RefCrop.Check(ctx, s.db, cropID)
}
