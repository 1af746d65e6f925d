package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type avatarRequestService struct {
	logger outbound.LoggerPort
	store  outbound.AvatarRequestStorePort
	media  outbound.AvatarMediaStorePort
	now    func() time.Time
}

func NewAvatarRequestService(logger outbound.LoggerPort, store outbound.AvatarRequestStorePort,
	media outbound.AvatarMediaStorePort) inbound.AvatarRequestServicePort {
	return &avatarRequestService{
		logger: logger,
		store:  store,
		media:  media,
		now:    time.Now,
	}
}

// Create uploads the source video and files a pending request for admin
// review. The upload happens first; a store failure leaves an orphaned
// object, never a request without its video.
func (s *avatarRequestService) Create(ctx context.Context, params inbound.CreateAvatarRequestParams) (*domain.AvatarRequest, error) {
	if params.UserID == "" {
		return nil, domain.NewValidationError("user_id", "user id is required")
	}
	if params.Name == "" {
		return nil, domain.NewValidationError("name", "avatar name is required")
	}
	if len(params.Video) == 0 {
		return nil, domain.NewValidationError("video", "source video is required")
	}

	sourceURL, err := s.media.Save(ctx, outbound.SaveAvatarVideoParams{
		UserID:      params.UserID,
		FileName:    params.FileName,
		ContentType: params.ContentType,
		Content:     params.Video,
	})
	if err != nil {
		s.logger.Error(err, "failed to store avatar source video")
		return nil, err
	}

	now := s.now().UTC()
	request := domain.AvatarRequest{
		ID:             uuid.NewString(),
		UserID:         params.UserID,
		Name:           params.Name,
		Status:         domain.StatusPending,
		SourceVideoURL: sourceURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Insert(ctx, request); err != nil {
		s.logger.ErrorWithFields(err, "failed to persist avatar request", map[string]interface{}{
			"user_id": params.UserID,
		})
		return nil, err
	}

	s.logger.InfoWithFields("avatar request created", map[string]interface{}{
		"request_id": request.ID,
		"user_id":    request.UserID,
	})

	return &request, nil
}

func (s *avatarRequestService) ListByUser(ctx context.Context, userID string) ([]domain.AvatarRequest, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id", "user id is required")
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *avatarRequestService) ListPending(ctx context.Context) ([]domain.AvatarRequest, error) {
	return s.store.ListPending(ctx)
}

func (s *avatarRequestService) Approve(ctx context.Context, id string, vendorAvatarID string) (*domain.AvatarRequest, error) {
	if vendorAvatarID == "" {
		return nil, domain.NewValidationError("vendor_avatar_id", "vendor avatar id is required")
	}

	updated, err := s.store.Update(ctx, id, outbound.AvatarRequestUpdate{
		Status:         domain.StatusCompleted,
		VendorAvatarID: &vendorAvatarID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("avatar request approved", map[string]interface{}{
		"request_id":       id,
		"vendor_avatar_id": vendorAvatarID,
	})

	return updated, nil
}

func (s *avatarRequestService) Reject(ctx context.Context, id string, reason string) (*domain.AvatarRequest, error) {
	if reason == "" {
		reason = "rejected by administrator"
	}

	updated, err := s.store.Update(ctx, id, outbound.AvatarRequestUpdate{
		Status: domain.StatusFailed,
		Error:  &reason,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("avatar request rejected", map[string]interface{}{
		"request_id": id,
	})

	return updated, nil
}
