package outbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type AvatarRequestUpdate struct {
	Status         domain.GenerationStatus
	VendorAvatarID *string
	Error          *string
}

type AvatarRequestStorePort interface {
	Insert(ctx context.Context, request domain.AvatarRequest) error
	Update(ctx context.Context, id string, update AvatarRequestUpdate) (*domain.AvatarRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.AvatarRequest, error)
	ListPending(ctx context.Context) ([]domain.AvatarRequest, error)
}
