package outbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

// ContactProviderPort is the boundary to the CRM.
type ContactProviderPort interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	ValidateToken(ctx context.Context) bool
}
