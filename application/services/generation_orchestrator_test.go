package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/adapters"
)

func testProject() domain.VideoProject {
	return domain.VideoProject{
		ID:       "proj-1",
		Name:     "Spring Launch",
		AvatarID: "avatar-1",
		Script:   "Hi {{firstName}}, welcome to {{company}}!",
		IsActive: true,
	}
}

func testContact() domain.Contact {
	return domain.Contact{
		ID:        "contact-1",
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@acme.com",
		Company:   "Acme",
	}
}

func TestGenerationOrchestrator_Submit(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	vendor.On("CreateVideo", mock.Anything, outbound.CreateVideoParams{
		AvatarID: "avatar-1",
		Script:   "Hi John, welcome to Acme!",
	}).Return(&outbound.VendorVideo{ID: "v123", Status: domain.StatusPending}, nil)

	var inserted domain.GenerationRecord
	store.On("Insert", mock.Anything, mock.AnythingOfType("domain.GenerationRecord")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(domain.GenerationRecord)
		}).Return(nil)

	record, err := orchestrator.Submit(context.Background(), inbound.SubmitGenerationParams{
		Project: testProject(),
		Contact: testContact(),
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, domain.StatusPending, record.Status)
	assert.Equal(t, "v123", record.VendorVideoID)
	assert.Equal(t, "Hi John, welcome to Acme!", record.Metadata.PersonalizedScript)
	assert.Equal(t, testContact(), record.Metadata.Contact)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, *record, inserted)

	vendor.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestGenerationOrchestrator_SubmitVendorFailurePersistsNothing(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	vendorErr := &domain.VendorError{Op: "create video", StatusCode: 500, Payload: `{"error":"quota exceeded"}`}
	vendor.On("CreateVideo", mock.Anything, mock.Anything).Return(nil, vendorErr)

	record, err := orchestrator.Submit(context.Background(), inbound.SubmitGenerationParams{
		Project: testProject(),
		Contact: testContact(),
	})
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "quota exceeded")

	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_SubmitValidation(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	project := testProject()
	project.Script = ""

	_, err := orchestrator.Submit(context.Background(), inbound.SubmitGenerationParams{
		Project: project,
		Contact: testContact(),
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	vendor.AssertNotCalled(t, "CreateVideo", mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_ReconcileAdvancesStatus(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		ProjectID:     "proj-1",
		Status:        domain.StatusProcessing,
		VendorVideoID: "v123",
	}

	videoURL := "https://cdn.example.com/v123.mp4"
	vendor.On("GetVideoStatus", mock.Anything, "v123").
		Return(&outbound.VendorVideoStatus{Status: domain.StatusCompleted, VideoURL: videoURL}, nil)

	completed := record
	completed.Status = domain.StatusCompleted
	completed.VideoURL = videoURL
	store.On("Update", mock.Anything, "gen-1", mock.AnythingOfType("domain.GenerationUpdate")).
		Run(func(args mock.Arguments) {
			update := args.Get(2).(domain.GenerationUpdate)
			assert.Equal(t, domain.StatusCompleted, update.Status)
			require.NotNil(t, update.VideoURL)
			assert.Equal(t, videoURL, *update.VideoURL)
			assert.Nil(t, update.Error)
			assert.False(t, update.UpdatedAt.IsZero())
		}).Return(&completed, nil)

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, videoURL, updated.VideoURL)

	vendor.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestGenerationOrchestrator_ReconcileTerminalIsNoOp(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		Status:        domain.StatusCompleted,
		VendorVideoID: "v123",
		VideoURL:      "https://cdn.example.com/v123.mp4",
	}

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, record, *updated)

	vendor.AssertNotCalled(t, "GetVideoStatus", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_ReconcileUnchangedStatusSkipsWrite(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		Status:        domain.StatusProcessing,
		VendorVideoID: "v123",
	}

	vendor.On("GetVideoStatus", mock.Anything, "v123").
		Return(&outbound.VendorVideoStatus{Status: domain.StatusProcessing}, nil)

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, record, *updated)

	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_ReconcileIgnoresBackwardsStatus(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		Status:        domain.StatusProcessing,
		VendorVideoID: "v123",
	}

	vendor.On("GetVideoStatus", mock.Anything, "v123").
		Return(&outbound.VendorVideoStatus{Status: domain.StatusPending}, nil)

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)

	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_ReconcileVendorFailureLeavesRecord(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		Status:        domain.StatusProcessing,
		VendorVideoID: "v123",
	}

	vendor.On("GetVideoStatus", mock.Anything, "v123").
		Return(nil, errors.New("connection reset"))

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.Error(t, err)
	assert.Nil(t, updated)

	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerationOrchestrator_ReconcileRecordsFailure(t *testing.T) {
	vendor := new(mockVideoVendor)
	store := new(mockGenerationStore)
	orchestrator := NewGenerationOrchestrator(adapters.NewZerologWrapper(), vendor, store)

	record := domain.GenerationRecord{
		ID:            "gen-1",
		Status:        domain.StatusProcessing,
		VendorVideoID: "v123",
		CreatedAt:     time.Now().Add(-time.Minute),
	}

	vendor.On("GetVideoStatus", mock.Anything, "v123").
		Return(&outbound.VendorVideoStatus{Status: domain.StatusFailed, Error: "render error"}, nil)

	failed := record
	failed.Status = domain.StatusFailed
	failed.Error = "render error"
	store.On("Update", mock.Anything, "gen-1", mock.AnythingOfType("domain.GenerationUpdate")).
		Run(func(args mock.Arguments) {
			update := args.Get(2).(domain.GenerationUpdate)
			assert.Equal(t, domain.StatusFailed, update.Status)
			require.NotNil(t, update.Error)
			assert.Equal(t, "render error", *update.Error)
		}).Return(&failed, nil)

	updated, err := orchestrator.Reconcile(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, updated.Status)
	assert.Equal(t, "render error", updated.Error)

	store.AssertExpectations(t)
}
