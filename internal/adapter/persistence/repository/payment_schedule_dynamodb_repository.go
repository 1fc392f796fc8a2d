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
	defaultSchedulesTableName = "payment_schedules"
	schedulesMilestoneIDIndex = "milestone_id-index"
	schedulesProjectIDIndex   = "project_id-index"
)

type scheduleEntryItem struct {
	ID          string  `dynamodbav:"id"`
	MilestoneID string  `dynamodbav:"milestone_id"`
	ProjectID   string  `dynamodbav:"project_id"`
	PaymentName string  `dynamodbav:"payment_name"`
	Amount      float64 `dynamodbav:"amount"`
	DueDate     string  `dynamodbav:"due_date,omitempty"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// PaymentScheduleDynamoRepository persists PaymentScheduleEntry entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: milestone_id-index (PK: milestone_id)
//   - GSI: project_id-index (PK: project_id)

type PaymentScheduleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentScheduleRepository = (*PaymentScheduleDynamoRepository)(nil)

func NewPaymentScheduleDynamoRepository(ddb *dynamodb.Client) *PaymentScheduleDynamoRepository {
	return &PaymentScheduleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_SCHEDULES_TABLE", defaultSchedulesTableName),
	}
}

func (r *PaymentScheduleDynamoRepository) Create(ctx context.Context, e entities.PaymentScheduleEntry) (entities.PaymentScheduleEntry, error) {
	it := toScheduleEntryItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentScheduleEntry{}, err
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
		return entities.PaymentScheduleEntry{}, err
	}
	return e, nil
}

func (r *PaymentScheduleDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentScheduleEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentScheduleEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentScheduleEntry{}, nil
	}

	var it scheduleEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentScheduleEntry{}, err
	}
	return fromScheduleEntryItem(it), nil
}

func (r *PaymentScheduleDynamoRepository) ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.PaymentScheduleEntry, error) {
	return r.query(ctx, schedulesMilestoneIDIndex, "milestone_id = :v", milestoneID)
}

func (r *PaymentScheduleDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.PaymentScheduleEntry, error) {
	return r.query(ctx, schedulesProjectIDIndex, "project_id = :v", projectID)
}

func (r *PaymentScheduleDynamoRepository) query(ctx context.Context, index, keyCond, value string) ([]entities.PaymentScheduleEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentScheduleEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it scheduleEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromScheduleEntryItem(it))
	}
	return items, nil
}

// UpdateStatus writes target only when the stored status still equals
// expected. This conditional write is the single guard against settling the
// same entry twice.
func (r *PaymentScheduleDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.ScheduleStatus) (entities.PaymentScheduleEntry, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :target, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":target":     &types.AttributeValueMemberS{Value: string(target)},
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentScheduleEntry{}, nil
		}
		return entities.PaymentScheduleEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentScheduleEntry{}, nil
	}

	var it scheduleEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentScheduleEntry{}, err
	}
	return fromScheduleEntryItem(it), nil
}

func toScheduleEntryItem(e entities.PaymentScheduleEntry) scheduleEntryItem {
	it := scheduleEntryItem{
		ID:          e.ID,
		MilestoneID: e.MilestoneID,
		ProjectID:   e.ProjectID,
		PaymentName: e.PaymentName,
		Amount:      e.Amount,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !e.DueDate.IsZero() {
		it.DueDate = e.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromScheduleEntryItem(it scheduleEntryItem) entities.PaymentScheduleEntry {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentScheduleEntry{
		ID:          it.ID,
		MilestoneID: it.MilestoneID,
		ProjectID:   it.ProjectID,
		PaymentName: it.PaymentName,
		Amount:      it.Amount,
		DueDate:     dueDate,
		Status:      entities.ScheduleStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
