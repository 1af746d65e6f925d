package inbound

import (
	"context"

	"github.com/Jfrancis347/personalised-video-2/domain"
)

type SubmitGenerationParams struct {
	Project domain.VideoProject
	Contact domain.Contact
	// Test marks the vendor job as a test send (synthetic contact ids allowed).
	Test bool
}

// GenerationOrchestratorPort owns the generation state machine: Submit
// creates the vendor job and the pending tracking record, Reconcile merges
// current vendor status into a stored record.
type GenerationOrchestratorPort interface {
	Submit(ctx context.Context, params SubmitGenerationParams) (*domain.GenerationRecord, error)
	Reconcile(ctx context.Context, record domain.GenerationRecord) (*domain.GenerationRecord, error)
}
