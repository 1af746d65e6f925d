package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jfrancis347/personalised-video-2/application/ports/inbound"
	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

// syncDispatcher runs submitted tasks inline so tests stay deterministic.
type syncDispatcher struct{}

func (syncDispatcher) Submit(task func()) error {
	task()
	return nil
}

type mockVideoVendor struct {
	mock.Mock
}

func (m *mockVideoVendor) CreateVideo(ctx context.Context, params outbound.CreateVideoParams) (*outbound.VendorVideo, error) {
	ret := m.Called(ctx, params)
	var video *outbound.VendorVideo
	if ret.Get(0) != nil {
		video = ret.Get(0).(*outbound.VendorVideo)
	}
	return video, ret.Error(1)
}

func (m *mockVideoVendor) GetVideoStatus(ctx context.Context, videoID string) (*outbound.VendorVideoStatus, error) {
	ret := m.Called(ctx, videoID)
	var status *outbound.VendorVideoStatus
	if ret.Get(0) != nil {
		status = ret.Get(0).(*outbound.VendorVideoStatus)
	}
	return status, ret.Error(1)
}

func (m *mockVideoVendor) ListAvatars(ctx context.Context) ([]domain.VendorAvatar, error) {
	ret := m.Called(ctx)
	var avatars []domain.VendorAvatar
	if ret.Get(0) != nil {
		avatars = ret.Get(0).([]domain.VendorAvatar)
	}
	return avatars, ret.Error(1)
}

type mockGenerationStore struct {
	mock.Mock
}

func (m *mockGenerationStore) Insert(ctx context.Context, record domain.GenerationRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockGenerationStore) Update(ctx context.Context, id string, update domain.GenerationUpdate) (*domain.GenerationRecord, error) {
	ret := m.Called(ctx, id, update)
	var record *domain.GenerationRecord
	if ret.Get(0) != nil {
		record = ret.Get(0).(*domain.GenerationRecord)
	}
	return record, ret.Error(1)
}

func (m *mockGenerationStore) ListByProject(ctx context.Context, projectID string) ([]domain.GenerationRecord, error) {
	ret := m.Called(ctx, projectID)
	var records []domain.GenerationRecord
	if ret.Get(0) != nil {
		records = ret.Get(0).([]domain.GenerationRecord)
	}
	return records, ret.Error(1)
}

func (m *mockGenerationStore) ListNonTerminal(ctx context.Context, projectID string) ([]domain.GenerationRecord, error) {
	ret := m.Called(ctx, projectID)
	var records []domain.GenerationRecord
	if ret.Get(0) != nil {
		records = ret.Get(0).([]domain.GenerationRecord)
	}
	return records, ret.Error(1)
}

type mockProjectStore struct {
	mock.Mock
}

func (m *mockProjectStore) InsertRequest(ctx context.Context, request domain.ProjectRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockProjectStore) UpdateRequest(ctx context.Context, id string, update outbound.ProjectRequestUpdate) (*domain.ProjectRequest, error) {
	ret := m.Called(ctx, id, update)
	var request *domain.ProjectRequest
	if ret.Get(0) != nil {
		request = ret.Get(0).(*domain.ProjectRequest)
	}
	return request, ret.Error(1)
}

func (m *mockProjectStore) GetRequest(ctx context.Context, id string) (*domain.ProjectRequest, error) {
	ret := m.Called(ctx, id)
	var request *domain.ProjectRequest
	if ret.Get(0) != nil {
		request = ret.Get(0).(*domain.ProjectRequest)
	}
	return request, ret.Error(1)
}

func (m *mockProjectStore) ListRequestsByUser(ctx context.Context, userID string) ([]domain.ProjectRequest, error) {
	ret := m.Called(ctx, userID)
	var requests []domain.ProjectRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]domain.ProjectRequest)
	}
	return requests, ret.Error(1)
}

func (m *mockProjectStore) ListPendingRequests(ctx context.Context) ([]domain.ProjectRequest, error) {
	ret := m.Called(ctx)
	var requests []domain.ProjectRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]domain.ProjectRequest)
	}
	return requests, ret.Error(1)
}

func (m *mockProjectStore) InsertProject(ctx context.Context, project domain.VideoProject) error {
	return m.Called(ctx, project).Error(0)
}

func (m *mockProjectStore) GetProject(ctx context.Context, id string) (*domain.VideoProject, error) {
	ret := m.Called(ctx, id)
	var project *domain.VideoProject
	if ret.Get(0) != nil {
		project = ret.Get(0).(*domain.VideoProject)
	}
	return project, ret.Error(1)
}

func (m *mockProjectStore) ListActiveProjects(ctx context.Context) ([]domain.VideoProject, error) {
	ret := m.Called(ctx)
	var projects []domain.VideoProject
	if ret.Get(0) != nil {
		projects = ret.Get(0).([]domain.VideoProject)
	}
	return projects, ret.Error(1)
}

type mockOrchestrator struct {
	mock.Mock
}

func (m *mockOrchestrator) Submit(ctx context.Context, params inbound.SubmitGenerationParams) (*domain.GenerationRecord, error) {
	ret := m.Called(ctx, params)
	var record *domain.GenerationRecord
	if ret.Get(0) != nil {
		record = ret.Get(0).(*domain.GenerationRecord)
	}
	return record, ret.Error(1)
}

func (m *mockOrchestrator) Reconcile(ctx context.Context, record domain.GenerationRecord) (*domain.GenerationRecord, error) {
	ret := m.Called(ctx, record)
	var updated *domain.GenerationRecord
	if ret.Get(0) != nil {
		updated = ret.Get(0).(*domain.GenerationRecord)
	}
	return updated, ret.Error(1)
}

type mockAdsInsights struct {
	mock.Mock
}

func (m *mockAdsInsights) FetchAccountInsights(ctx context.Context, accessToken string) ([]outbound.AccountInsights, error) {
	ret := m.Called(ctx, accessToken)
	var accounts []outbound.AccountInsights
	if ret.Get(0) != nil {
		accounts = ret.Get(0).([]outbound.AccountInsights)
	}
	return accounts, ret.Error(1)
}

type mockAvatarRequestStore struct {
	mock.Mock
}

func (m *mockAvatarRequestStore) Insert(ctx context.Context, request domain.AvatarRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockAvatarRequestStore) Update(ctx context.Context, id string, update outbound.AvatarRequestUpdate) (*domain.AvatarRequest, error) {
	ret := m.Called(ctx, id, update)
	var request *domain.AvatarRequest
	if ret.Get(0) != nil {
		request = ret.Get(0).(*domain.AvatarRequest)
	}
	return request, ret.Error(1)
}

func (m *mockAvatarRequestStore) ListByUser(ctx context.Context, userID string) ([]domain.AvatarRequest, error) {
	ret := m.Called(ctx, userID)
	var requests []domain.AvatarRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]domain.AvatarRequest)
	}
	return requests, ret.Error(1)
}

func (m *mockAvatarRequestStore) ListPending(ctx context.Context) ([]domain.AvatarRequest, error) {
	ret := m.Called(ctx)
	var requests []domain.AvatarRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]domain.AvatarRequest)
	}
	return requests, ret.Error(1)
}

type mockAvatarMediaStore struct {
	mock.Mock
}

func (m *mockAvatarMediaStore) Save(ctx context.Context, params outbound.SaveAvatarVideoParams) (string, error) {
	ret := m.Called(ctx, params)
	return ret.String(0), ret.Error(1)
}
