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

const (
	defaultDonationsTableName = "donations"
	donationsDonorIDIndex     = "donor_id-index"
)

type donationItem struct {
	PaymentIntentRef string `dynamodbav:"payment_intent_ref"`
	ID               string `dynamodbav:"id"`
	DonorID          int64  `dynamodbav:"donor_id"`
	Amount           int64  `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	Description      string `dynamodbav:"description,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// DonationDynamoRepository persists Donation entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_intent_ref (string)
//   - GSI: donor_id-index (PK: donor_id)
//
// The gateway's payment intent id is the primary key because every write
// after creation arrives keyed by it (webhook reconciliation).

type DonationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb *dynamodb.Client) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	it := toDonationItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Donation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pi_ref)"),
		ExpressionAttributeNames: map[string]string{
			"#pi_ref": "payment_intent_ref",
		},
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByPaymentIntentRef(ctx context.Context, ref string) (entities.Donation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_intent_ref": &types.AttributeValueMemberS{Value: ref},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

// UpdateStatusByPaymentIntentRef sets the donation status for an existing
// row. A missing row does not error at this layer; the zero value is
// returned and the use case decides how to surface it.
func (r *DonationDynamoRepository) UpdateStatusByPaymentIntentRef(ctx context.Context, ref string, status entities.DonationStatus) (entities.Donation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_intent_ref": &types.AttributeValueMemberS{Value: ref},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#pi_ref)"),
		ExpressionAttributeNames: map[string]string{
			"#pi_ref":     "payment_intent_ref",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Donation{}, nil
		}
		return entities.Donation{}, err
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) ListByDonorID(ctx context.Context, donorID int64) ([]entities.Donation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(donationsDonorIDIndex),
		KeyConditionExpression: aws.String("donor_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberN{Value: strconv.FormatInt(donorID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Donation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it donationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDonationItem(it))
	}
	return items, nil
}

func toDonationItem(d entities.Donation) donationItem {
	return donationItem{
		PaymentIntentRef: d.PaymentIntentRef,
		ID:               d.ID,
		DonorID:          d.DonorID,
		Amount:           d.Amount,
		Currency:         d.Currency,
		Description:      d.Description,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonationItem(it donationItem) entities.Donation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Donation{
		PaymentIntentRef: it.PaymentIntentRef,
		ID:               it.ID,
		DonorID:          it.DonorID,
		Amount:           it.Amount,
		Currency:         it.Currency,
		Description:      it.Description,
		Status:           entities.DonationStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
