package repository

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConsentEventsTableName = "consent_events"
	consentCustomerPhoneIndex     = "customer_phone-index"
)

type consentEventItem struct {
	ID            string `dynamodbav:"id"`
	CustomerPhone string `dynamodbav:"customer_phone"`
	Channel       string `dynamodbav:"channel"`
	Action        string `dynamodbav:"action"`
	Source        string `dynamodbav:"source,omitempty"`
	Note          string `dynamodbav:"note,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ConsentEventDynamoRepository persists ConsentEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_phone-index (PK: customer_phone)
//
// The log is append-only: no update or delete operations exist.

type ConsentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConsentRepository = (*ConsentEventDynamoRepository)(nil)

func NewConsentEventDynamoRepository(ddb *dynamodb.Client) *ConsentEventDynamoRepository {
	return &ConsentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONSENT_EVENTS_TABLE", defaultConsentEventsTableName),
	}
}

func (r *ConsentEventDynamoRepository) Create(ctx context.Context, e entities.ConsentEvent) (entities.ConsentEvent, error) {
	av, err := attributevalue.MarshalMap(toConsentEventItem(e))
	if err != nil {
		return entities.ConsentEvent{}, err
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
		return entities.ConsentEvent{}, err
	}
	return e, nil
}

func (r *ConsentEventDynamoRepository) ListByPhone(ctx context.Context, phone string) ([]entities.ConsentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(consentCustomerPhoneIndex),
		KeyConditionExpression: aws.String("customer_phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ConsentEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it consentEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConsentEventItem(it))
	}
	return items, nil
}

func toConsentEventItem(e entities.ConsentEvent) consentEventItem {
	return consentEventItem{
		ID:            e.ID,
		CustomerPhone: e.CustomerPhone,
		Channel:       e.Channel,
		Action:        string(e.Action),
		Source:        e.Source,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromConsentEventItem(it consentEventItem) entities.ConsentEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ConsentEvent{
		ID:            it.ID,
		CustomerPhone: it.CustomerPhone,
		Channel:       it.Channel,
		Action:        entities.ConsentAction(it.Action),
		Source:        it.Source,
		Note:          it.Note,
		CreatedAt:     createdAt,
	}
}
