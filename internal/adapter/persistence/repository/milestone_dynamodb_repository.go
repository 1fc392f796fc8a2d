package repository

import (
	"context"
	"errors"
	"time"

	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMilestonesTableName = "milestones"
	milestonesProjectIDIndex   = "project_id-index"
)

type milestoneItem struct {
	ID              string `dynamodbav:"id"`
	ProjectID       string `dynamodbav:"project_id"`
	Title           string `dynamodbav:"title"`
	Details         string `dynamodbav:"details,omitempty"`
	ProgressStatus  string `dynamodbav:"progress_status"`
	CompletionPhoto string `dynamodbav:"completion_photo,omitempty"`
	StartDate       string `dynamodbav:"start_date,omitempty"`
	DueDate         string `dynamodbav:"due_date,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// MilestoneDynamoRepository persists Milestone entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

func (r *MilestoneDynamoRepository) Create(ctx context.Context, milestone entities.Milestone) (entities.Milestone, error) {
	it := toMilestoneItem(milestone)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Milestone{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Milestone{}, err
	}
	return milestone, nil
}

func (r *MilestoneDynamoRepository) GetByID(ctx context.Context, id string) (entities.Milestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Milestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.Milestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(milestonesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Milestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestoneItem(it))
	}
	return items, nil
}

// UpdateStatus writes target only when the stored progress_status still
// equals expected. A lost race or missing row comes back as a zero Milestone
// with a nil error.
func (r *MilestoneDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.MilestoneStatus, completionPhoto string) (entities.Milestone, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #progress_status = :target, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":target":     &types.AttributeValueMemberS{Value: string(target)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":              "id",
		"#progress_status": "progress_status",
		"#updated_at":      "updated_at",
	}
	if completionPhoto != "" {
		updateExpr += ", #completion_photo = :photo"
		vals[":photo"] = &types.AttributeValueMemberS{Value: completionPhoto}
		names["#completion_photo"] = "completion_photo"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #progress_status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Milestone{}, nil
		}
		return entities.Milestone{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Milestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func toMilestoneItem(m entities.Milestone) milestoneItem {
	it := milestoneItem{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		Title:           m.Title,
		Details:         m.Details,
		ProgressStatus:  string(m.ProgressStatus),
		CompletionPhoto: m.CompletionPhoto,
		CreatedAt:       m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !m.StartDate.IsZero() {
		it.StartDate = m.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if !m.DueDate.IsZero() {
		it.DueDate = m.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMilestoneItem(it milestoneItem) entities.Milestone {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Milestone{
		ID:              it.ID,
		ProjectID:       it.ProjectID,
		Title:           it.Title,
		Details:         it.Details,
		ProgressStatus:  entities.MilestoneStatus(it.ProgressStatus),
		CompletionPhoto: it.CompletionPhoto,
		StartDate:       startDate,
		DueDate:         dueDate,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
