package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type projectRequestService struct {
	logger outbound.LoggerPort
	store  outbound.ProjectStorePort
	now    func() time.Time
}

func NewProjectRequestService(logger outbound.LoggerPort, store outbound.ProjectStorePort) inbound.ProjectRequestServicePort {
	return &projectRequestService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

func (s *projectRequestService) Create(ctx context.Context, params inbound.CreateProjectRequestParams) (*domain.ProjectRequest, error) {
	if params.UserID == "" {
		return nil, domain.NewValidationError("user_id", "user id is required")
	}
	if params.Name == "" {
		return nil, domain.NewValidationError("name", "project name is required")
	}
	if params.AvatarID == "" {
		return nil, domain.NewValidationError("avatar_id", "avatar id is required")
	}
	if params.Script == "" {
		return nil, domain.NewValidationError("script", "script is required")
	}

	now := s.now().UTC()
	request := domain.ProjectRequest{
		ID:        uuid.NewString(),
		UserID:    params.UserID,
		Name:      params.Name,
		AvatarID:  params.AvatarID,
		Script:    params.Script,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.InsertRequest(ctx, request); err != nil {
		s.logger.ErrorWithFields(err, "failed to persist project request", map[string]interface{}{
			"user_id": params.UserID,
		})
		return nil, err
	}

	s.logger.InfoWithFields("project request created", map[string]interface{}{
		"request_id": request.ID,
		"user_id":    request.UserID,
	})

	return &request, nil
}

func (s *projectRequestService) ListByUser(ctx context.Context, userID string) ([]domain.ProjectRequest, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id", "user id is required")
	}
	return s.store.ListRequestsByUser(ctx, userID)
}

func (s *projectRequestService) ListPending(ctx context.Context) ([]domain.ProjectRequest, error) {
	return s.store.ListPendingRequests(ctx)
}

// Approve marks the request completed and provisions the active project the
// poller and campaign sender operate on. The request survives as the audit
// trail of who asked for what.
func (s *projectRequestService) Approve(ctx context.Context, id string, vendorProjectID string) (*domain.VideoProject, error) {
	request, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, domain.NewValidationError("status", "request already resolved")
	}

	update := outbound.ProjectRequestUpdate{Status: domain.StatusCompleted}
	if vendorProjectID != "" {
		update.VendorProjectID = &vendorProjectID
	}
	if _, err := s.store.UpdateRequest(ctx, id, update); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	project := domain.VideoProject{
		ID:              uuid.NewString(),
		UserID:          request.UserID,
		Name:            request.Name,
		AvatarID:        request.AvatarID,
		Script:          request.Script,
		IsActive:        true,
		VendorProjectID: vendorProjectID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.InsertProject(ctx, project); err != nil {
		s.logger.ErrorWithFields(err, "failed to provision project from approved request", map[string]interface{}{
			"request_id": id,
		})
		return nil, err
	}

	s.logger.InfoWithFields("project request approved", map[string]interface{}{
		"request_id": id,
		"project_id": project.ID,
	})

	return &project, nil
}

func (s *projectRequestService) Reject(ctx context.Context, id string, reason string) (*domain.ProjectRequest, error) {
	request, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, domain.NewValidationError("status", "request already resolved")
	}

	if reason == "" {
		reason = "rejected by administrator"
	}

	updated, err := s.store.UpdateRequest(ctx, id, outbound.ProjectRequestUpdate{
		Status: domain.StatusFailed,
		Error:  &reason,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("project request rejected", map[string]interface{}{
		"request_id": id,
	})

	return updated, nil
}
