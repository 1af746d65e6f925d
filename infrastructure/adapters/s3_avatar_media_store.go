package adapters

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/config"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type s3AvatarMediaStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3AvatarMediaStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.AvatarMediaStorePort {
	return &s3AvatarMediaStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3AvatarMediaStore) Save(ctx context.Context, params outbound.SaveAvatarVideoParams) (string, error) {
	itemPath := s.getS3ItemPath(params)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(itemPath),
		Body:          bytes.NewReader(params.Content),
		ContentLength: aws.Int64(int64(len(params.Content))),
		ContentType:   aws.String(params.ContentType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", itemPath).
			Msg("Failed to upload avatar video to S3")
		return "", &domain.StoreError{Op: "save avatar video", Err: err}
	}

	s3Url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, itemPath)
	log.Debug().
		Str("s3Url", s3Url).
		Msg("Successfully uploaded avatar video to S3")

	return s3Url, nil
}

func (s *s3AvatarMediaStore) getS3ItemPath(params outbound.SaveAvatarVideoParams) string {
	ext := path.Ext(params.FileName)
	return fmt.Sprintf("user/%s/avatar/%s%s", params.UserID, uuid.NewString(), ext)
}
