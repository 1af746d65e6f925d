package outbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type ProjectRequestUpdate struct {
	Status          domain.GenerationStatus
	VendorProjectID *string
	Error           *string
}

// ProjectStorePort persists project requests and the projects provisioned
// from approved ones.
type ProjectStorePort interface {
	InsertRequest(ctx context.Context, request domain.ProjectRequest) error
	UpdateRequest(ctx context.Context, id string, update ProjectRequestUpdate) (*domain.ProjectRequest, error)
	GetRequest(ctx context.Context, id string) (*domain.ProjectRequest, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]domain.ProjectRequest, error)
	ListPendingRequests(ctx context.Context) ([]domain.ProjectRequest, error)

	InsertProject(ctx context.Context, project domain.VideoProject) error
	GetProject(ctx context.Context, id string) (*domain.VideoProject, error)
	ListActiveProjects(ctx context.Context) ([]domain.VideoProject, error)
}
