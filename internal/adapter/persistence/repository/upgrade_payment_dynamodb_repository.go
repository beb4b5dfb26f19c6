package repository

import (
	"context"
	"sort"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUpgradePaymentsTableName = "upgrade_payments"
	paymentsAccountIDIndex          = "account_id-index"
)

type upgradePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	AccountID          string                 `dynamodbav:"account_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	Amount             float64                `dynamodbav:"amount"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// UpgradePaymentDynamoRepository persists UpgradePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: account_id-index (PK: account_id)
type UpgradePaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUpgradePaymentRepository = (*UpgradePaymentDynamoRepository)(nil)

func NewUpgradePaymentDynamoRepository(ddb DynamoDBAPI) *UpgradePaymentDynamoRepository {
	return &UpgradePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UPGRADE_PAYMENTS_TABLE", defaultUpgradePaymentsTableName),
	}
}

func (r *UpgradePaymentDynamoRepository) Create(ctx context.Context, p entities.UpgradePayment) (entities.UpgradePayment, error) {
	av, err := attributevalue.MarshalMap(toUpgradePaymentItem(p))
	if err != nil {
		return entities.UpgradePayment{}, err
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
		return entities.UpgradePayment{}, classifyDynamoError("create_payment", err)
	}
	return p, nil
}

func (r *UpgradePaymentDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.UpgradePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAccountIDIndex),
		KeyConditionExpression: aws.String("account_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: accountID},
		},
	})
	if err != nil {
		return nil, classifyDynamoError("list_payments", err)
	}

	items := make([]entities.UpgradePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it upgradePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUpgradePaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toUpgradePaymentItem(p entities.UpgradePayment) upgradePaymentItem {
	return upgradePaymentItem{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		Amount:             p.Amount,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromUpgradePaymentItem(it upgradePaymentItem) entities.UpgradePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.UpgradePayment{
		ID:                 it.ID,
		AccountID:          it.AccountID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		Amount:             it.Amount,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
