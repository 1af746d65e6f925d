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

type dynamoAvatarRequestItem struct {
	RequestID      string `dynamodbav:"request_id"`
	UserID         string `dynamodbav:"user_id"`
	Name           string `dynamodbav:"name"`
	Status         string `dynamodbav:"status"`
	SourceVideoURL string `dynamodbav:"source_video_url"`
	VendorAvatarID string `dynamodbav:"vendor_avatar_id,omitempty"`
	Error          string `dynamodbav:"error,omitempty"`
	CreatedAt      int64  `dynamodbav:"created_at"`
	UpdatedAt      int64  `dynamodbav:"updated_at"`
}

func (i dynamoAvatarRequestItem) toRequest() domain.AvatarRequest {
	return domain.AvatarRequest{
		ID:             i.RequestID,
		UserID:         i.UserID,
		Name:           i.Name,
		Status:         domain.GenerationStatus(i.Status),
		SourceVideoURL: i.SourceVideoURL,
		VendorAvatarID: i.VendorAvatarID,
		Error:          i.Error,
		CreatedAt:      time.Unix(i.CreatedAt, 0).UTC(),
		UpdatedAt:      time.Unix(i.UpdatedAt, 0).UTC(),
	}
}

type dynamoAvatarRequestStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoAvatarRequestStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.AvatarRequestStorePort {
	return &dynamoAvatarRequestStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoAvatarRequestStore) Insert(ctx context.Context, request domain.AvatarRequest) error {
	item := dynamoAvatarRequestItem{
		RequestID:      request.ID,
		UserID:         request.UserID,
		Name:           request.Name,
		Status:         string(request.Status),
		SourceVideoURL: request.SourceVideoURL,
		VendorAvatarID: request.VendorAvatarID,
		Error:          request.Error,
		CreatedAt:      request.CreatedAt.Unix(),
		UpdatedAt:      request.UpdatedAt.Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal avatar request item", map[string]interface{}{
			"request_id": request.ID,
		})
		return &domain.StoreError{Op: "insert avatar request", Err: err}
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.AvatarRequestsTable),
	}

	if _, err := s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to save avatar request item", map[string]interface{}{
			"request_id": request.ID,
		})
		return &domain.StoreError{Op: "insert avatar request", Err: err}
	}

	return nil
}

func (s *dynamoAvatarRequestStore) Update(ctx context.Context, id string, update outbound.AvatarRequestUpdate) (*domain.AvatarRequest, error) {
	names := map[string]*string{
		"#status": aws.String("status"),
	}
	values := map[string]*dynamodb.AttributeValue{
		":status":     {S: aws.String(string(update.Status))},
		":updated_at": {N: aws.String(formatUnix(time.Now()))},
	}
	expr := "SET #status = :status, updated_at = :updated_at"

	if update.VendorAvatarID != nil {
		expr += ", vendor_avatar_id = :vendor_avatar_id"
		values[":vendor_avatar_id"] = &dynamodb.AttributeValue{S: aws.String(*update.VendorAvatarID)}
	}
	if update.Error != nil {
		expr += ", #error = :error"
		names["#error"] = aws.String("error")
		values[":error"] = &dynamodb.AttributeValue{S: aws.String(*update.Error)}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.AvatarRequestsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"request_id": {S: aws.String(id)},
		},
		ConditionExpression:       aws.String("attribute_exists(request_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              aws.String(dynamodb.ReturnValueAllNew),
	}

	out, err := s.dynamoSvc.UpdateItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to update avatar request item", map[string]interface{}{
			"request_id": id,
		})
		return nil, &domain.StoreError{Op: "update avatar request", Err: err}
	}

	var item dynamoAvatarRequestItem
	if err := dynamodbattribute.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, &domain.StoreError{Op: "update avatar request", Err: err}
	}
	request := item.toRequest()
	return &request, nil
}

func (s *dynamoAvatarRequestStore) ListByUser(ctx context.Context, userID string) ([]domain.AvatarRequest, error) {
	items, err := s.scan(ctx, "list avatar requests")
	if err != nil {
		return nil, err
	}

	requests := make([]domain.AvatarRequest, 0, len(items))
	for _, item := range items {
		if item.UserID == userID {
			requests = append(requests, item.toRequest())
		}
	}
	sortAvatarRequestsNewestFirst(requests)

	return requests, nil
}

func (s *dynamoAvatarRequestStore) ListPending(ctx context.Context) ([]domain.AvatarRequest, error) {
	items, err := s.scan(ctx, "list pending avatar requests")
	if err != nil {
		return nil, err
	}

	requests := make([]domain.AvatarRequest, 0, len(items))
	for _, item := range items {
		if domain.GenerationStatus(item.Status) == domain.StatusPending {
			requests = append(requests, item.toRequest())
		}
	}
	sortAvatarRequestsNewestFirst(requests)

	return requests, nil
}

func (s *dynamoAvatarRequestStore) scan(ctx context.Context, op string) ([]dynamoAvatarRequestItem, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.dynamoConfig.AvatarRequestsTable),
	}

	out, err := s.dynamoSvc.ScanWithContext(ctx, input)
	if err != nil {
		s.logger.Error(err, "Failed to scan avatar request items")
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	var items []dynamoAvatarRequestItem
	if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	return items, nil
}

func sortAvatarRequestsNewestFirst(requests []domain.AvatarRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
