package utils

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/rehanpathan0801/PGFinder/models"
)

// Storage wraps the Cloudinary uploader. When credentials are absent it stays
// disabled and image uploads degrade to a no-op instead of failing requests.
type Storage struct {
	client  *cloudinary.Cloudinary
	Enabled bool
}

var ImageStorage *Storage

func InitStorage() {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	ImageStorage = &Storage{}

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Cloudinary credentials not found, image uploads disabled")
		return
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("Cloudinary init failed, image uploads disabled: %v", err)
		return
	}

	ImageStorage.client = client
	ImageStorage.Enabled = true
}

func (s *Storage) Upload(ctx context.Context, file io.Reader) (models.Image, error) {
	if !s.Enabled {
		return models.Image{}, errors.New("image storage disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "pgfinder"})
	if err != nil {
		return models.Image{}, err
	}
	return models.Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Delete removes an uploaded asset. Callers treat this as best-effort and only
// log failures.
func (s *Storage) Delete(ctx context.Context, publicID string) error {
	if !s.Enabled || publicID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// DeleteImages destroys every asset of a listing, logging failures instead of
// propagating them.
func (s *Storage) DeleteImages(ctx context.Context, images []models.Image) {
	for _, image := range images {
		if err := s.Delete(ctx, image.PublicID); err != nil {
			log.Printf("Failed to delete image %s: %v", image.PublicID, err)
		}
	}
}
