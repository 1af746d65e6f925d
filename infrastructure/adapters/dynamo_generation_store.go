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

type dynamoGenerationItem struct {
	ProjectID     string                    `dynamodbav:"project_id"`
	GenerationID  string                    `dynamodbav:"generation_id"`
	ContactID     string                    `dynamodbav:"contact_id"`
	Status        string                    `dynamodbav:"status"`
	VendorVideoID string                    `dynamodbav:"vendor_video_id"`
	VideoURL      string                    `dynamodbav:"video_url,omitempty"`
	Error         string                    `dynamodbav:"error,omitempty"`
	Metadata      domain.GenerationMetadata `dynamodbav:"metadata"`
	CreatedAt     int64                     `dynamodbav:"created_at"`
	UpdatedAt     int64                     `dynamodbav:"updated_at"`
}

func (i dynamoGenerationItem) toRecord() domain.GenerationRecord {
	return domain.GenerationRecord{
		ID:            i.GenerationID,
		ProjectID:     i.ProjectID,
		ContactID:     i.ContactID,
		Status:        domain.GenerationStatus(i.Status),
		VendorVideoID: i.VendorVideoID,
		VideoURL:      i.VideoURL,
		Error:         i.Error,
		Metadata:      i.Metadata,
		CreatedAt:     time.Unix(i.CreatedAt, 0).UTC(),
		UpdatedAt:     time.Unix(i.UpdatedAt, 0).UTC(),
	}
}

type dynamoGenerationStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoGenerationStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.GenerationStorePort {
	return &dynamoGenerationStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoGenerationStore) Insert(ctx context.Context, record domain.GenerationRecord) error {
	item := dynamoGenerationItem{
		ProjectID:     record.ProjectID,
		GenerationID:  record.ID,
		ContactID:     record.ContactID,
		Status:        string(record.Status),
		VendorVideoID: record.VendorVideoID,
		VideoURL:      record.VideoURL,
		Error:         record.Error,
		Metadata:      record.Metadata,
		CreatedAt:     record.CreatedAt.Unix(),
		UpdatedAt:     record.UpdatedAt.Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal generation item", map[string]interface{}{
			"generation_id": record.ID,
		})
		return &domain.StoreError{Op: "insert generation", Err: err}
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.GenerationsTable),
		// A generation id is minted once per submission; never overwrite.
		ConditionExpression: aws.String("attribute_not_exists(generation_id)"),
	}

	_, err = s.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save generation item", map[string]interface{}{
			"generation_id": record.ID,
		})
		return &domain.StoreError{Op: "insert generation", Err: err}
	}

	return nil
}

func (s *dynamoGenerationStore) Update(ctx context.Context, id string, update domain.GenerationUpdate) (*domain.GenerationRecord, error) {
	names := map[string]*string{
		"#status": aws.String("status"),
	}
	values := map[string]*dynamodb.AttributeValue{
		":status":     {S: aws.String(string(update.Status))},
		":updated_at": {N: aws.String(formatUnix(update.UpdatedAt))},
	}
	expr := "SET #status = :status, updated_at = :updated_at"

	if update.VideoURL != nil {
		expr += ", video_url = :video_url"
		values[":video_url"] = &dynamodb.AttributeValue{S: aws.String(*update.VideoURL)}
	}
	if update.Error != nil {
		expr += ", #error = :error"
		names["#error"] = aws.String("error")
		values[":error"] = &dynamodb.AttributeValue{S: aws.String(*update.Error)}
	}

	record, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.GenerationsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"project_id":    {S: aws.String(record.ProjectID)},
			"generation_id": {S: aws.String(id)},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              aws.String(dynamodb.ReturnValueAllNew),
	}

	out, err := s.dynamoSvc.UpdateItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to update generation item", map[string]interface{}{
			"generation_id": id,
		})
		return nil, &domain.StoreError{Op: "update generation", Err: err}
	}

	var item dynamoGenerationItem
	if err := dynamodbattribute.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, &domain.StoreError{Op: "update generation", Err: err}
	}
	updated := item.toRecord()
	return &updated, nil
}

func (s *dynamoGenerationStore) ListByProject(ctx context.Context, projectID string) ([]domain.GenerationRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.dynamoConfig.GenerationsTable),
		KeyConditionExpression: aws.String("project_id = :project_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":project_id": {S: aws.String(projectID)},
		},
	}

	out, err := s.dynamoSvc.QueryWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to query generation items", map[string]interface{}{
			"project_id": projectID,
		})
		return nil, &domain.StoreError{Op: "list generations", Err: err}
	}

	var items []dynamoGenerationItem
	if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, &domain.StoreError{Op: "list generations", Err: err}
	}

	records := make([]domain.GenerationRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.toRecord())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (s *dynamoGenerationStore) ListNonTerminal(ctx context.Context, projectID string) ([]domain.GenerationRecord, error) {
	records, err := s.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	nonTerminal := records[:0]
	for _, record := range records {
		if !record.Status.IsTerminal() {
			nonTerminal = append(nonTerminal, record)
		}
	}

	return nonTerminal, nil
}

// lookup resolves a record by its id through the generation_id GSI; the
// table itself is keyed on (project_id, generation_id).
func (s *dynamoGenerationStore) lookup(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.dynamoConfig.GenerationsTable),
		IndexName:              aws.String("generation_id-index"),
		KeyConditionExpression: aws.String("generation_id = :generation_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":generation_id": {S: aws.String(id)},
		},
	}

	out, err := s.dynamoSvc.QueryWithContext(ctx, input)
	if err != nil {
		return nil, &domain.StoreError{Op: "lookup generation", Err: err}
	}
	if len(out.Items) == 0 {
		return nil, &domain.StoreError{Op: "lookup generation", Err: errNotFound}
	}

	var item dynamoGenerationItem
	if err := dynamodbattribute.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, &domain.StoreError{Op: "lookup generation", Err: err}
	}
	record := item.toRecord()
	return &record, nil
}
