package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxPhotoSizeBytes bounds profile photo uploads to 5MB
const MaxPhotoSizeBytes = 5 * 1024 * 1024

// ErrPhotoTooLarge is returned when an upload exceeds MaxPhotoSizeBytes
var ErrPhotoTooLarge = errors.New("photo exceeds the 5MB upload limit")

// S3Service issues presigned URLs for profile photo storage
type S3Service struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// NewS3Service initializes the S3 presign client
func NewS3Service(region, bucket string) *S3Service {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config for S3: %v", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Service{
		Presigner: s3.NewPresignClient(client),
		Bucket:    bucket,
	}
}

// GenerateUploadURL generates a presigned URL for uploading a profile photo
// under a per-user key. fileSize is validated against the upload bound before
// any URL is issued.
func (s *S3Service) GenerateUploadURL(ctx context.Context, userID, fileName, fileType string, fileSize int64) (string, string, error) {
	if fileSize > MaxPhotoSizeBytes {
		return "", "", ErrPhotoTooLarge
	}

	key := "profile-pics/" + userID + "/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presignedURL, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored photo
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	presignedURL, err := s.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
