package adapters

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/config"
	"github.com/Jfrancis347/personalised-video-2/domain"
)

// The projects table holds both project requests and provisioned projects,
// discriminated by item_type ("request" | "project") in the sort key.
const (
	projectItemTypeRequest = "request"
	projectItemTypeProject = "project"
)

type dynamoProjectItem struct {
	ItemID          string `dynamodbav:"item_id"`
	ItemType        string `dynamodbav:"item_type"`
	UserID          string `dynamodbav:"user_id"`
	Name            string `dynamodbav:"name"`
	AvatarID        string `dynamodbav:"avatar_id"`
	Script          string `dynamodbav:"script"`
	Status          string `dynamodbav:"status,omitempty"`
	IsActive        bool   `dynamodbav:"is_active"`
	VendorProjectID string `dynamodbav:"vendor_project_id,omitempty"`
	Error           string `dynamodbav:"error,omitempty"`
	CreatedAt       int64  `dynamodbav:"created_at"`
	UpdatedAt       int64  `dynamodbav:"updated_at"`
}

func (i dynamoProjectItem) toRequest() domain.ProjectRequest {
	return domain.ProjectRequest{
		ID:              i.ItemID,
		UserID:          i.UserID,
		Name:            i.Name,
		AvatarID:        i.AvatarID,
		Script:          i.Script,
		Status:          domain.GenerationStatus(i.Status),
		VendorProjectID: i.VendorProjectID,
		Error:           i.Error,
		CreatedAt:       time.Unix(i.CreatedAt, 0).UTC(),
		UpdatedAt:       time.Unix(i.UpdatedAt, 0).UTC(),
	}
}

func (i dynamoProjectItem) toProject() domain.VideoProject {
	return domain.VideoProject{
		ID:              i.ItemID,
		UserID:          i.UserID,
		Name:            i.Name,
		AvatarID:        i.AvatarID,
		Script:          i.Script,
		IsActive:        i.IsActive,
		VendorProjectID: i.VendorProjectID,
		CreatedAt:       time.Unix(i.CreatedAt, 0).UTC(),
		UpdatedAt:       time.Unix(i.UpdatedAt, 0).UTC(),
	}
}

type dynamoProjectStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoProjectStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.ProjectStorePort {
	return &dynamoProjectStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoProjectStore) InsertRequest(ctx context.Context, request domain.ProjectRequest) error {
	item := dynamoProjectItem{
		ItemID:          request.ID,
		ItemType:        projectItemTypeRequest,
		UserID:          request.UserID,
		Name:            request.Name,
		AvatarID:        request.AvatarID,
		Script:          request.Script,
		Status:          string(request.Status),
		VendorProjectID: request.VendorProjectID,
		Error:           request.Error,
		CreatedAt:       request.CreatedAt.Unix(),
		UpdatedAt:       request.UpdatedAt.Unix(),
	}
	return s.put(ctx, item, "insert project request")
}

func (s *dynamoProjectStore) UpdateRequest(ctx context.Context, id string, update outbound.ProjectRequestUpdate) (*domain.ProjectRequest, error) {
	names := map[string]*string{
		"#status": aws.String("status"),
	}
	values := map[string]*dynamodb.AttributeValue{
		":status":     {S: aws.String(string(update.Status))},
		":updated_at": {N: aws.String(formatUnix(time.Now()))},
	}
	expr := "SET #status = :status, updated_at = :updated_at"

	if update.VendorProjectID != nil {
		expr += ", vendor_project_id = :vendor_project_id"
		values[":vendor_project_id"] = &dynamodb.AttributeValue{S: aws.String(*update.VendorProjectID)}
	}
	if update.Error != nil {
		expr += ", #error = :error"
		names["#error"] = aws.String("error")
		values[":error"] = &dynamodb.AttributeValue{S: aws.String(*update.Error)}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.ProjectsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"item_id":   {S: aws.String(id)},
			"item_type": {S: aws.String(projectItemTypeRequest)},
		},
		ConditionExpression:       aws.String("attribute_exists(item_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              aws.String(dynamodb.ReturnValueAllNew),
	}

	out, err := s.dynamoSvc.UpdateItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to update project request", map[string]interface{}{
			"request_id": id,
		})
		return nil, &domain.StoreError{Op: "update project request", Err: err}
	}

	var item dynamoProjectItem
	if err := dynamodbattribute.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, &domain.StoreError{Op: "update project request", Err: err}
	}
	request := item.toRequest()
	return &request, nil
}

func (s *dynamoProjectStore) GetRequest(ctx context.Context, id string) (*domain.ProjectRequest, error) {
	item, err := s.get(ctx, id, projectItemTypeRequest, "get project request")
	if err != nil {
		return nil, err
	}
	request := item.toRequest()
	return &request, nil
}

func (s *dynamoProjectStore) ListRequestsByUser(ctx context.Context, userID string) ([]domain.ProjectRequest, error) {
	items, err := s.scanByType(ctx, projectItemTypeRequest, "list project requests")
	if err != nil {
		return nil, err
	}

	requests := make([]domain.ProjectRequest, 0, len(items))
	for _, item := range items {
		if item.UserID == userID {
			requests = append(requests, item.toRequest())
		}
	}
	sortRequestsNewestFirst(requests)

	return requests, nil
}

func (s *dynamoProjectStore) ListPendingRequests(ctx context.Context) ([]domain.ProjectRequest, error) {
	items, err := s.scanByType(ctx, projectItemTypeRequest, "list pending project requests")
	if err != nil {
		return nil, err
	}

	requests := make([]domain.ProjectRequest, 0, len(items))
	for _, item := range items {
		if domain.GenerationStatus(item.Status) == domain.StatusPending {
			requests = append(requests, item.toRequest())
		}
	}
	sortRequestsNewestFirst(requests)

	return requests, nil
}

func (s *dynamoProjectStore) InsertProject(ctx context.Context, project domain.VideoProject) error {
	item := dynamoProjectItem{
		ItemID:          project.ID,
		ItemType:        projectItemTypeProject,
		UserID:          project.UserID,
		Name:            project.Name,
		AvatarID:        project.AvatarID,
		Script:          project.Script,
		IsActive:        project.IsActive,
		VendorProjectID: project.VendorProjectID,
		CreatedAt:       project.CreatedAt.Unix(),
		UpdatedAt:       project.UpdatedAt.Unix(),
	}
	return s.put(ctx, item, "insert project")
}

func (s *dynamoProjectStore) GetProject(ctx context.Context, id string) (*domain.VideoProject, error) {
	item, err := s.get(ctx, id, projectItemTypeProject, "get project")
	if err != nil {
		return nil, err
	}
	project := item.toProject()
	return &project, nil
}

func (s *dynamoProjectStore) ListActiveProjects(ctx context.Context) ([]domain.VideoProject, error) {
	items, err := s.scanByType(ctx, projectItemTypeProject, "list active projects")
	if err != nil {
		return nil, err
	}

	projects := make([]domain.VideoProject, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			projects = append(projects, item.toProject())
		}
	}

	return projects, nil
}

func (s *dynamoProjectStore) put(ctx context.Context, item dynamoProjectItem, op string) error {
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal project item", map[string]interface{}{
			"item_id": item.ItemID,
		})
		return &domain.StoreError{Op: op, Err: err}
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.ProjectsTable),
	}

	if _, err := s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to save project item", map[string]interface{}{
			"item_id": item.ItemID,
		})
		return &domain.StoreError{Op: op, Err: err}
	}

	return nil
}

func (s *dynamoProjectStore) get(ctx context.Context, id string, itemType string, op string) (*dynamoProjectItem, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.ProjectsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"item_id":   {S: aws.String(id)},
			"item_type": {S: aws.String(itemType)},
		},
	}

	out, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}
	if out.Item == nil {
		return nil, &domain.StoreError{Op: op, Err: errNotFound}
	}

	var item dynamoProjectItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	return &item, nil
}

func (s *dynamoProjectStore) scanByType(ctx context.Context, itemType string, op string) ([]dynamoProjectItem, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.dynamoConfig.ProjectsTable),
		FilterExpression: aws.String("item_type = :item_type"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":item_type": {S: aws.String(itemType)},
		},
	}

	out, err := s.dynamoSvc.ScanWithContext(ctx, input)
	if err != nil {
		s.logger.Error(err, "Failed to scan project items")
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	var items []dynamoProjectItem
	if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	return items, nil
}

func sortRequestsNewestFirst(requests []domain.ProjectRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
