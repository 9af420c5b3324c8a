package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/timeslot-matcher/internal/config"
	"github.com/BruksfildServices01/timeslot-matcher/internal/domain/profile"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3AvatarStore struct {
	client  putObjectAPI
	bucket  string
	baseURL string
}

func NewS3AvatarStore(cfg config.S3Config) *S3AvatarStore {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return newS3AvatarStore(s3.New(opts), cfg)
}

func newS3AvatarStore(client putObjectAPI, cfg config.S3Config) *S3AvatarStore {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3AvatarStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: base,
	}
}

func avatarKey(userID uint) string {
	return fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())
}

func (s *S3AvatarStore) PutAvatar(
	ctx context.Context,
	userID uint,
	img io.Reader,
) (string, error) {

	data, err := EncodeAvatar(img)
	if err != nil {
		return "", err
	}

	key := avatarKey(userID)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	}); err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}

// Compile-time check
var _ profile.AvatarStore = (*S3AvatarStore)(nil)
