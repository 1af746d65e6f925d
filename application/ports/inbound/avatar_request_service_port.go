package inbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type CreateAvatarRequestParams struct {
	UserID      string
	Name        string
	FileName    string
	ContentType string
	Video       []byte
}

type AvatarRequestServicePort interface {
	Create(ctx context.Context, params CreateAvatarRequestParams) (*domain.AvatarRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.AvatarRequest, error)
	ListPending(ctx context.Context) ([]domain.AvatarRequest, error)
	Approve(ctx context.Context, id string, vendorAvatarID string) (*domain.AvatarRequest, error)
	Reject(ctx context.Context, id string, reason string) (*domain.AvatarRequest, error)
}
