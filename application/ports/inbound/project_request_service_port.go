package inbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type CreateProjectRequestParams struct {
	UserID   string
	Name     string
	AvatarID string
	Script   string
}

// ProjectRequestServicePort handles the request/approve lifecycle: a user
// files a request, an admin approves it against the vendor, and approval
// provisions an active project eligible for generation.
type ProjectRequestServicePort interface {
	Create(ctx context.Context, params CreateProjectRequestParams) (*domain.ProjectRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ProjectRequest, error)
	ListPending(ctx context.Context) ([]domain.ProjectRequest, error)
	Approve(ctx context.Context, id string, vendorProjectID string) (*domain.VideoProject, error)
	Reject(ctx context.Context, id string, reason string) (*domain.ProjectRequest, error)
}
