package repository

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVisitsTableName   = "visits"
	visitsJobIDIndex         = "job_id-index"
	visitsScheduledDayIndex  = "scheduled_day-index"
	visitScheduledDayPattern = "2006-01-02"
)

type visitItem struct {
	ID                string `dynamodbav:"id"`
	JobID             string `dynamodbav:"job_id"`
	VisitNumber       int    `dynamodbav:"visit_number"`
	ScheduledDate     string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledDay      string `dynamodbav:"scheduled_day,omitempty"`
	Status            string `dynamodbav:"status"`
	TechnicianID      string `dynamodbav:"technician_id,omitempty"`
	VehicleID         string `dynamodbav:"vehicle_id,omitempty"`
	EstimatedPrice    string `dynamodbav:"estimated_price,omitempty"`
	ActualPrice       string `dynamodbav:"actual_price,omitempty"`
	TechProposedPrice string `dynamodbav:"tech_proposed_price,omitempty"`
	RequiresDeposit   bool   `dynamodbav:"requires_deposit"`
	DepositAmount     string `dynamodbav:"deposit_amount,omitempty"`
	DepositPaidAt     string `dynamodbav:"deposit_paid_at,omitempty"`
	DepositPaymentID  string `dynamodbav:"deposit_payment_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// VisitDynamoRepository persists Visit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: scheduled_day-index (PK: scheduled_day)
//
// scheduled_day is denormalized from the scheduled date on every write so the
// dispatch board can query one day's visits without scanning.

type VisitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVisitRepository = (*VisitDynamoRepository)(nil)

func NewVisitDynamoRepository(ddb *dynamodb.Client) *VisitDynamoRepository {
	return &VisitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VISITS_TABLE", defaultVisitsTableName),
	}
}

func (r *VisitDynamoRepository) Create(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	av, err := attributevalue.MarshalMap(toVisitItem(v))
	if err != nil {
		return entities.Visit{}, err
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
		return entities.Visit{}, err
	}
	return v, nil
}

func (r *VisitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Visit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Visit{}, nil
	}

	var it visitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Visit{}, err
	}
	return fromVisitItem(it), nil
}

func (r *VisitDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Visit, error) {
	return r.queryIndex(ctx, visitsJobIDIndex, "job_id = :v", jobID)
}

func (r *VisitDynamoRepository) ListByScheduledDay(ctx context.Context, day string) ([]entities.Visit, error) {
	return r.queryIndex(ctx, visitsScheduledDayIndex, "scheduled_day = :v", day)
}

func (r *VisitDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Visit, error) {
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

	items := make([]entities.Visit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it visitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVisitItem(it))
	}
	return items, nil
}

func (r *VisitDynamoRepository) Update(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	av, err := attributevalue.MarshalMap(toVisitItem(v))
	if err != nil {
		return entities.Visit{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Visit{}, nil
		}
		return entities.Visit{}, err
	}
	return v, nil
}

func toVisitItem(v entities.Visit) visitItem {
	it := visitItem{
		ID:                v.ID,
		JobID:             v.JobID,
		VisitNumber:       v.VisitNumber,
		ScheduledDate:     timePtrToString(v.ScheduledDate),
		Status:            string(v.Status),
		TechnicianID:      v.TechnicianID,
		VehicleID:         v.VehicleID,
		EstimatedPrice:    floatPtrToString(v.EstimatedPrice),
		ActualPrice:       floatPtrToString(v.ActualPrice),
		TechProposedPrice: floatPtrToString(v.TechProposedPrice),
		RequiresDeposit:   v.RequiresDeposit,
		DepositAmount:     floatPtrToString(v.DepositAmount),
		DepositPaidAt:     timePtrToString(v.DepositPaidAt),
		DepositPaymentID:  v.DepositPaymentID,
		CreatedAt:         v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.ScheduledDate != nil {
		it.ScheduledDay = v.ScheduledDate.UTC().Format(visitScheduledDayPattern)
	}
	return it
}

func fromVisitItem(it visitItem) entities.Visit {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Visit{
		ID:                it.ID,
		JobID:             it.JobID,
		VisitNumber:       it.VisitNumber,
		ScheduledDate:     stringToTimePtr(it.ScheduledDate),
		Status:            entities.VisitStatus(it.Status),
		TechnicianID:      it.TechnicianID,
		VehicleID:         it.VehicleID,
		EstimatedPrice:    stringToFloatPtr(it.EstimatedPrice),
		ActualPrice:       stringToFloatPtr(it.ActualPrice),
		TechProposedPrice: stringToFloatPtr(it.TechProposedPrice),
		RequiresDeposit:   it.RequiresDeposit,
		DepositAmount:     stringToFloatPtr(it.DepositAmount),
		DepositPaidAt:     stringToTimePtr(it.DepositPaidAt),
		DepositPaymentID:  it.DepositPaymentID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
