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

const defaultTechniciansTableName = "technicians"

type technicianItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Phone     string   `dynamodbav:"phone,omitempty"`
	Email     string   `dynamodbav:"email,omitempty"`
	Skills    []string `dynamodbav:"skills,omitempty"`
	Active    bool     `dynamodbav:"active"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// TechnicianDynamoRepository persists Technician entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TechnicianDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
	}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	av, err := attributevalue.MarshalMap(toTechnicianItem(t))
	if err != nil {
		return entities.Technician{}, err
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
		return entities.Technician{}, err
	}
	return t, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if len(out.Item) == 0 {
		return entities.Technician{}, nil
	}

	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.Technician, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if activeOnly {
		in.FilterExpression = aws.String("#active = :active")
		in.ExpressionAttributeNames = map[string]string{"#active": "active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	techs := make([]entities.Technician, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it technicianItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			techs = append(techs, fromTechnicianItem(it))
		}
	}
	return techs, nil
}

func (r *TechnicianDynamoRepository) Update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	av, err := attributevalue.MarshalMap(toTechnicianItem(t))
	if err != nil {
		return entities.Technician{}, err
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
			return entities.Technician{}, nil
		}
		return entities.Technician{}, err
	}
	return t, nil
}

func toTechnicianItem(t entities.Technician) technicianItem {
	return technicianItem{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		Email:     t.Email,
		Skills:    t.Skills,
		Active:    t.Active,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Technician{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		Skills:    it.Skills,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
