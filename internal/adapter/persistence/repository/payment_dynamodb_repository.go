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
	defaultPaymentsTableName     = "payments"
	paymentsScheduleEntryIDIndex = "schedule_entry_id-index"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ScheduleEntryID    string                 `dynamodbav:"schedule_entry_id"`
	AmountPaid         float64                `dynamodbav:"amount_paid"`
	PaymentDate        string                 `dynamodbav:"payment_date"`
	Method             string                 `dynamodbav:"method"`
	ReferenceNumber    string                 `dynamodbav:"reference_number,omitempty"`
	ProofPhoto         string                 `dynamodbav:"proof_photo,omitempty"`
	Signature          string                 `dynamodbav:"signature,omitempty"`
	ProcessedBy        string                 `dynamodbav:"processed_by,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB. Rows are
// append-only; there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: schedule_entry_id-index (PK: schedule_entry_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByScheduleEntryID(ctx context.Context, entryID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsScheduleEntryIDIndex),
		KeyConditionExpression: aws.String("schedule_entry_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: entryID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		ScheduleEntryID:    p.ScheduleEntryID,
		AmountPaid:         p.AmountPaid,
		PaymentDate:        p.PaymentDate.UTC().Format(time.RFC3339Nano),
		Method:             string(p.Method),
		ReferenceNumber:    p.ReferenceNumber,
		ProofPhoto:         p.ProofPhoto,
		Signature:          p.Signature,
		ProcessedBy:        p.ProcessedBy,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	paymentDate, _ := time.Parse(time.RFC3339Nano, it.PaymentDate)
	return entities.Payment{
		ID:                 it.ID,
		ScheduleEntryID:    it.ScheduleEntryID,
		AmountPaid:         it.AmountPaid,
		PaymentDate:        paymentDate,
		Method:             entities.PaymentMethod(it.Method),
		ReferenceNumber:    it.ReferenceNumber,
		ProofPhoto:         it.ProofPhoto,
		Signature:          it.Signature,
		ProcessedBy:        it.ProcessedBy,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
