package outbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type CreateVideoParams struct {
	AvatarID string
	Script   string
	Test     bool
}

// VendorVideo is the vendor's acknowledgement of a newly created video job.
type VendorVideo struct {
	ID     string
	Status domain.GenerationStatus
}

// VendorVideoStatus is a point-in-time view of a vendor job.
type VendorVideoStatus struct {
	Status   domain.GenerationStatus
	VideoURL string
	Error    string
}

// VideoVendorPort is the boundary to the external video-generation API.
// Calls are single round trips; retry policy belongs to the caller.
type VideoVendorPort interface {
	CreateVideo(ctx context.Context, params CreateVideoParams) (*VendorVideo, error)
	GetVideoStatus(ctx context.Context, videoID string) (*VendorVideoStatus, error)
	ListAvatars(ctx context.Context) ([]domain.VendorAvatar, error)
}
