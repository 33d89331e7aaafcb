package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dcs_payments/internal/domain/entities"
	"dcs_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDonorsTableName = "donors"

type donorItem struct {
	ID                 int64  `dynamodbav:"id"`
	Email              string `dynamodbav:"email"`
	Name               string `dynamodbav:"name,omitempty"`
	GatewayCustomerRef string `dynamodbav:"gateway_customer_ref,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// DonorDynamoRepository persists Donor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// gateway_customer_ref is absent until the donor is linked to a gateway
// customer; UpdateGatewayCustomerRef relies on that absence for its
// conditional write.

type DonorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonorRepository = (*DonorDynamoRepository)(nil)

func NewDonorDynamoRepository(ddb *dynamodb.Client) *DonorDynamoRepository {
	return &DonorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONORS_TABLE", defaultDonorsTableName),
	}
}

func (r *DonorDynamoRepository) Create(ctx context.Context, d entities.Donor) (entities.Donor, error) {
	it := toDonorItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Donor{}, err
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
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Donor{}, interfaces.ErrDonorConflict
		}
		return entities.Donor{}, err
	}
	return d, nil
}

func (r *DonorDynamoRepository) FindByID(ctx context.Context, id int64) (entities.Donor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donor{}, nil
	}

	var it donorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donor{}, err
	}
	return fromDonorItem(it), nil
}

// UpdateGatewayCustomerRef links the donor to a gateway customer, but only
// if no reference is stored yet. When the condition fails the donor was
// linked by another writer; the stored record is read back and returned so
// the caller adopts the winning reference.
func (r *DonorDynamoRepository) UpdateGatewayCustomerRef(ctx context.Context, id int64, ref string) (entities.Donor, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		UpdateExpression:    aws.String("SET #ref = :ref, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#ref":        "gateway_customer_ref",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":        &types.AttributeValueMemberS{Value: ref},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return r.FindByID(ctx, id)
		}
		return entities.Donor{}, err
	}

	var it donorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donor{}, err
	}
	return fromDonorItem(it), nil
}

func toDonorItem(d entities.Donor) donorItem {
	return donorItem{
		ID:                 d.ID,
		Email:              d.Email,
		Name:               d.Name,
		GatewayCustomerRef: d.GatewayCustomerRef,
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonorItem(it donorItem) entities.Donor {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Donor{
		ID:                 it.ID,
		Email:              it.Email,
		Name:               it.Name,
		GatewayCustomerRef: it.GatewayCustomerRef,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
