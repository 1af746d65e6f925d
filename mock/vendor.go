package mock_vendor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

// Vendor is an in-process stand-in for the real video API, used for local
// development without an API key. Jobs move pending -> processing ->
// completed on a timer so the poller has real transitions to observe.
type Vendor struct {
	logger         outbound.LoggerPort
	processingTime time.Duration
	renderTime     time.Duration

	mu   sync.Mutex
	jobs map[string]time.Time
}

func NewVendor(logger outbound.LoggerPort) *Vendor {
	return &Vendor{
		logger:         logger,
		processingTime: 5 * time.Second,
		renderTime:     20 * time.Second,
		jobs:           make(map[string]time.Time),
	}
}

func (v *Vendor) CreateVideo(ctx context.Context, params outbound.CreateVideoParams) (*outbound.VendorVideo, error) {
	if params.AvatarID == "" {
		return nil, domain.NewValidationError("avatar_id", "avatar id is required")
	}
	if params.Script == "" {
		return nil, domain.NewValidationError("script", "script is required")
	}

	id := "mock-" + uuid.NewString()

	v.mu.Lock()
	v.jobs[id] = time.Now()
	v.mu.Unlock()

	v.logger.InfoWithFields("mock video created", map[string]interface{}{
		"video_id": id,
	})

	return &outbound.VendorVideo{ID: id, Status: domain.StatusPending}, nil
}

func (v *Vendor) GetVideoStatus(ctx context.Context, videoID string) (*outbound.VendorVideoStatus, error) {
	v.mu.Lock()
	createdAt, ok := v.jobs[videoID]
	v.mu.Unlock()

	if !ok {
		return nil, &domain.VendorError{Op: "get video status", StatusCode: 404, Payload: `{"error":"video not found"}`}
	}

	age := time.Since(createdAt)
	switch {
	case age < v.processingTime:
		return &outbound.VendorVideoStatus{Status: domain.StatusPending}, nil
	case age < v.renderTime:
		return &outbound.VendorVideoStatus{Status: domain.StatusProcessing}, nil
	default:
		return &outbound.VendorVideoStatus{
			Status:   domain.StatusCompleted,
			VideoURL: "https://mock-videos.local/" + videoID + ".mp4",
		}, nil
	}
}

func (v *Vendor) ListAvatars(ctx context.Context) ([]domain.VendorAvatar, error) {
	return []domain.VendorAvatar{
		{ID: "mock-avatar-1", Name: "Mock Presenter", Status: "ready"},
		{ID: "mock-avatar-2", Name: "Mock Host", Status: "ready"},
	}, nil
}
