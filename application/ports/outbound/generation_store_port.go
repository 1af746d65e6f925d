package outbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

// GenerationStorePort persists generation tracking records. Updates are
// partial: only status, video URL, error and the updated-at timestamp are
// ever rewritten; metadata and the vendor video id stay as inserted.
type GenerationStorePort interface {
	Insert(ctx context.Context, record domain.GenerationRecord) error
	Update(ctx context.Context, id string, update domain.GenerationUpdate) (*domain.GenerationRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.GenerationRecord, error)
	ListNonTerminal(ctx context.Context, projectID string) ([]domain.GenerationRecord, error)
}
