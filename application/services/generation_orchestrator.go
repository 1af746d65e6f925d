package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

type generationOrchestrator struct {
	logger outbound.LoggerPort
	vendor outbound.VideoVendorPort
	store  outbound.GenerationStorePort
	now    func() time.Time
}

func NewGenerationOrchestrator(logger outbound.LoggerPort, vendor outbound.VideoVendorPort,
	store outbound.GenerationStorePort) inbound.GenerationOrchestratorPort {
	return &generationOrchestrator{
		logger: logger,
		vendor: vendor,
		store:  store,
		now:    time.Now,
	}
}

// Submit personalizes the script, creates the vendor job and persists the
// pending tracking record. When the vendor call fails nothing is persisted
// and the error propagates to the caller.
func (g *generationOrchestrator) Submit(ctx context.Context, params inbound.SubmitGenerationParams) (*domain.GenerationRecord, error) {
	if params.Project.AvatarID == "" {
		return nil, domain.NewValidationError("avatar_id", "project has no avatar")
	}
	if params.Project.Script == "" {
		return nil, domain.NewValidationError("script", "project has no script")
	}
	if params.Contact.ID == "" {
		return nil, domain.NewValidationError("contact", "contact id is required")
	}

	personalized := domain.PersonalizeScript(params.Project.Script, params.Contact.Fields())

	video, err := g.vendor.CreateVideo(ctx, outbound.CreateVideoParams{
		AvatarID: params.Project.AvatarID,
		Script:   personalized,
		Test:     params.Test,
	})
	if err != nil {
		g.logger.ErrorWithFields(err, "vendor video creation failed", map[string]interface{}{
			"project_id": params.Project.ID,
			"contact_id": params.Contact.ID,
		})
		return nil, err
	}

	now := g.now().UTC()
	record := domain.GenerationRecord{
		ID:            uuid.NewString(),
		ProjectID:     params.Project.ID,
		ContactID:     params.Contact.ID,
		Status:        domain.StatusPending,
		VendorVideoID: video.ID,
		Metadata: domain.GenerationMetadata{
			Contact:            params.Contact,
			PersonalizedScript: personalized,
			VendorVideoID:      video.ID,
			ProjectName:        params.Project.Name,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := g.store.Insert(ctx, record); err != nil {
		// The vendor job exists but the record does not; the job is orphaned
		// at the vendor. Log the vendor id for manual cleanup.
		g.logger.ErrorWithFields(err, "failed to persist generation record", map[string]interface{}{
			"vendor_video_id": video.ID,
		})
		return nil, err
	}

	generationsSubmittedTotal.Inc()
	g.logger.InfoWithFields("generation submitted", map[string]interface{}{
		"generation_id":   record.ID,
		"project_id":      record.ProjectID,
		"contact_id":      record.ContactID,
		"vendor_video_id": record.VendorVideoID,
	})

	return &record, nil
}

// Reconcile fetches current vendor status and merges it into the stored
// record. Terminal records are returned unchanged without a vendor round
// trip, regardless of how the caller selected them. A vendor failure leaves
// the record untouched; the next poll tick retries.
func (g *generationOrchestrator) Reconcile(ctx context.Context, record domain.GenerationRecord) (*domain.GenerationRecord, error) {
	if record.Status.IsTerminal() {
		return &record, nil
	}
	if record.VendorVideoID == "" {
		return nil, domain.NewValidationError("vendor_video_id", "record has no vendor video id")
	}

	status, err := g.vendor.GetVideoStatus(ctx, record.VendorVideoID)
	if err != nil {
		g.logger.ErrorWithFields(err, "vendor status check failed", map[string]interface{}{
			"generation_id":   record.ID,
			"vendor_video_id": record.VendorVideoID,
		})
		return nil, err
	}

	if !status.Status.IsKnown() {
		g.logger.WarnWithFields("vendor returned unknown status, skipping", map[string]interface{}{
			"generation_id": record.ID,
			"status":        string(status.Status),
		})
		return &record, nil
	}

	changed := status.Status != record.Status ||
		(status.VideoURL != "" && status.VideoURL != record.VideoURL) ||
		(status.Error != "" && status.Error != record.Error)
	if !changed {
		return &record, nil
	}

	// Same-rank statuses (completed vs failed) cannot both be reported for
	// one job; anything behind the stored status is a stale read.
	if status.Status != record.Status && !record.Status.Advances(status.Status) {
		g.logger.WarnWithFields("vendor status behind stored status, skipping", map[string]interface{}{
			"generation_id": record.ID,
			"stored":        string(record.Status),
			"vendor":        string(status.Status),
		})
		return &record, nil
	}

	if err := ctx.Err(); err != nil {
		// The owning poller was torn down while the vendor call was in
		// flight; do not write against a dead scope.
		return nil, err
	}

	update := domain.GenerationUpdate{
		Status:    status.Status,
		UpdatedAt: g.now().UTC(),
	}
	if status.VideoURL != "" {
		update.VideoURL = &status.VideoURL
	}
	if status.Error != "" {
		update.Error = &status.Error
	}

	updated, err := g.store.Update(ctx, record.ID, update)
	if err != nil {
		g.logger.ErrorWithFields(err, "failed to apply reconciled status", map[string]interface{}{
			"generation_id": record.ID,
		})
		return nil, err
	}

	if updated.Status.IsTerminal() {
		generationsCompletedTotal.WithLabelValues(string(updated.Status)).Inc()
	}
	g.logger.InfoWithFields("generation reconciled", map[string]interface{}{
		"generation_id": updated.ID,
		"from":          string(record.Status),
		"to":            string(updated.Status),
	})

	return updated, nil
}
