package repository

import (
	"context"
	"time"

	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBOQItemsTableName = "boq_items"
	boqItemsMilestoneIDIndex = "milestone_id-index"
)

type mtoEntryItem struct {
	Description string  `dynamodbav:"description"`
	Unit        string  `dynamodbav:"unit,omitempty"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitCost    float64 `dynamodbav:"unit_cost"`
	TotalCost   float64 `dynamodbav:"total_cost"`
}

type ltoEntryItem struct {
	Description string  `dynamodbav:"description"`
	Remarks     string  `dynamodbav:"remarks,omitempty"`
	TotalCost   float64 `dynamodbav:"total_cost"`
}

type etoEntryItem struct {
	EquipmentName string  `dynamodbav:"equipment_name"`
	Days          float64 `dynamodbav:"days"`
	DailyRate     float64 `dynamodbav:"daily_rate"`
	TotalCost     float64 `dynamodbav:"total_cost"`
}

type boqItemItem struct {
	ID          string         `dynamodbav:"id"`
	MilestoneID string         `dynamodbav:"milestone_id"`
	ItemNo      string         `dynamodbav:"item_no,omitempty"`
	Description string         `dynamodbav:"description"`
	Quantity    float64        `dynamodbav:"quantity"`
	Unit        string         `dynamodbav:"unit,omitempty"`
	UnitCost    float64        `dynamodbav:"unit_cost"`
	TotalCost   float64        `dynamodbav:"total_cost"`
	MTO         []mtoEntryItem `dynamodbav:"mto,omitempty"`
	LTO         []ltoEntryItem `dynamodbav:"lto,omitempty"`
	ETO         []etoEntryItem `dynamodbav:"eto,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// BOQItemDynamoRepository persists BOQItem entities in DynamoDB. The MTO,
// LTO and ETO children are embedded lists on the item row; an item and its
// take-off lines always move together in one write.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: milestone_id-index (PK: milestone_id)

type BOQItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBOQItemRepository = (*BOQItemDynamoRepository)(nil)

func NewBOQItemDynamoRepository(ddb *dynamodb.Client) *BOQItemDynamoRepository {
	return &BOQItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOQ_ITEMS_TABLE", defaultBOQItemsTableName),
	}
}

func (r *BOQItemDynamoRepository) Create(ctx context.Context, item entities.BOQItem) (entities.BOQItem, error) {
	it := toBOQItemItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BOQItem{}, err
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
		return entities.BOQItem{}, err
	}
	return item, nil
}

func (r *BOQItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.BOQItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BOQItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.BOQItem{}, nil
	}

	var it boqItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BOQItem{}, err
	}
	return fromBOQItemItem(it), nil
}

func (r *BOQItemDynamoRepository) ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.BOQItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(boqItemsMilestoneIDIndex),
		KeyConditionExpression: aws.String("milestone_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: milestoneID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BOQItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it boqItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBOQItemItem(it))
	}
	return items, nil
}

// Update replaces the whole item row, children included. The write is
// guarded on the row existing so Update never upserts.
func (r *BOQItemDynamoRepository) Update(ctx context.Context, item entities.BOQItem) (entities.BOQItem, error) {
	it := toBOQItemItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BOQItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BOQItem{}, err
	}
	return item, nil
}

func toBOQItemItem(b entities.BOQItem) boqItemItem {
	it := boqItemItem{
		ID:          b.ID,
		MilestoneID: b.MilestoneID,
		ItemNo:      b.ItemNo,
		Description: b.Description,
		Quantity:    b.Quantity,
		Unit:        b.Unit,
		UnitCost:    b.UnitCost,
		TotalCost:   b.TotalCost,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, e := range b.MTO {
		it.MTO = append(it.MTO, mtoEntryItem(e))
	}
	for _, e := range b.LTO {
		it.LTO = append(it.LTO, ltoEntryItem(e))
	}
	for _, e := range b.ETO {
		it.ETO = append(it.ETO, etoEntryItem(e))
	}
	return it
}

func fromBOQItemItem(it boqItemItem) entities.BOQItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	b := entities.BOQItem{
		ID:          it.ID,
		MilestoneID: it.MilestoneID,
		ItemNo:      it.ItemNo,
		Description: it.Description,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		UnitCost:    it.UnitCost,
		TotalCost:   it.TotalCost,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	for _, e := range it.MTO {
		b.MTO = append(b.MTO, entities.MTOEntry(e))
	}
	for _, e := range it.LTO {
		b.LTO = append(b.LTO, entities.LTOEntry(e))
	}
	for _, e := range it.ETO {
		b.ETO = append(b.ETO, entities.ETOEntry(e))
	}
	return b
}
