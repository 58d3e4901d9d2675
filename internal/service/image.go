package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sipwell/hydrokit-backend/config"
)

// ImageService stores staff-uploaded kit artwork in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// UploadKitArtwork uploads artwork bytes and returns the public URL. The
// object key is namespaced by kit name with a random suffix so re-uploads
// never clobber a cached URL.
func (s *ImageService) UploadKitArtwork(ctx context.Context, kitName, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported artwork format %q", ext)
	}

	key := fmt.Sprintf("kits/%s/%s%s",
		strings.ToLower(strings.ReplaceAll(kitName, " ", "-")),
		uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] uploaded kit artwork: %s", publicURL)
	return publicURL, nil
}
