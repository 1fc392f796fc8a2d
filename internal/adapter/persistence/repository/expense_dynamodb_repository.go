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
	defaultExpensesTableName = "expenses"
	expensesMilestoneIDIndex = "milestone_id-index"
)

type expenseItem struct {
	ID          string  `dynamodbav:"id"`
	MilestoneID string  `dynamodbav:"milestone_id"`
	Type        string  `dynamodbav:"expense_type"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description,omitempty"`
	Date        string  `dynamodbav:"date,omitempty"`
	DateFrom    string  `dynamodbav:"date_from,omitempty"`
	DateTo      string  `dynamodbav:"date_to,omitempty"`
	Quantity    float64 `dynamodbav:"quantity,omitempty"`
	Unit        string  `dynamodbav:"unit,omitempty"`
	PricePerQty float64 `dynamodbav:"price_per_qty,omitempty"`
	Amount      float64 `dynamodbav:"amount"`
	Status      string  `dynamodbav:"status"`
	RejectNote  string  `dynamodbav:"reject_note,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: milestone_id-index (PK: milestone_id)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := toExpenseItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.Expense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(expensesMilestoneIDIndex),
		KeyConditionExpression: aws.String("milestone_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: milestoneID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExpenseItem(it))
	}
	return items, nil
}

// UpdateStatus writes target only when the stored status still equals
// expected. The note lands with the same write so a rejection and its reason
// are never split across two states.
func (r *ExpenseDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.ExpenseStatus, note string) (entities.Expense, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :target, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":target":     &types.AttributeValueMemberS{Value: string(target)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if note != "" {
		updateExpr += ", #reject_note = :note"
		vals[":note"] = &types.AttributeValueMemberS{Value: note}
		names["#reject_note"] = "reject_note"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Expense{}, nil
		}
		return entities.Expense{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	it := expenseItem{
		ID:          e.ID,
		MilestoneID: e.MilestoneID,
		Type:        string(e.Type),
		Title:       e.Title,
		Description: e.Description,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		PricePerQty: e.PricePerQty,
		Amount:      e.Amount,
		Status:      string(e.Status),
		RejectNote:  e.RejectNote,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !e.Date.IsZero() {
		it.Date = e.Date.UTC().Format(time.RFC3339Nano)
	}
	if !e.DateFrom.IsZero() {
		it.DateFrom = e.DateFrom.UTC().Format(time.RFC3339Nano)
	}
	if !e.DateTo.IsZero() {
		it.DateTo = e.DateTo.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromExpenseItem(it expenseItem) entities.Expense {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	dateFrom, _ := time.Parse(time.RFC3339Nano, it.DateFrom)
	dateTo, _ := time.Parse(time.RFC3339Nano, it.DateTo)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Expense{
		ID:          it.ID,
		MilestoneID: it.MilestoneID,
		Type:        entities.ExpenseType(it.Type),
		Title:       it.Title,
		Description: it.Description,
		Date:        date,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		PricePerQty: it.PricePerQty,
		Amount:      it.Amount,
		Status:      entities.ExpenseStatus(it.Status),
		RejectNote:  it.RejectNote,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
