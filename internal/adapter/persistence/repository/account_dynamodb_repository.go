package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

type accountItem struct {
	ID        string `dynamodbav:"id"`
	FullName  string `dynamodbav:"full_name"`
	Company   string `dynamodbav:"company,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	Premium   bool   `dynamodbav:"premium"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists Account profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AccountDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb DynamoDBAPI) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, entities.ErrAccountExists
		}
		return entities.Account{}, classifyDynamoError("create_account", err)
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, classifyDynamoError("get_account", err)
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

// SetPremium flips the premium flag; a missing account yields a zero Account.
func (r *AccountDynamoRepository) SetPremium(ctx context.Context, id string, premium bool) (entities.Account, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #premium = :premium, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":premium":    &types.AttributeValueMemberBOOL{Value: premium},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#premium":    "premium",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AccountDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Account, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, classifyDynamoError("update_account", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:        a.ID,
		FullName:  a.FullName,
		Company:   a.Company,
		Phone:     a.Phone,
		Email:     a.Email,
		Address:   a.Address,
		Premium:   a.Premium,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Account{
		ID:        it.ID,
		FullName:  it.FullName,
		Company:   it.Company,
		Phone:     it.Phone,
		Email:     it.Email,
		Address:   it.Address,
		Premium:   it.Premium,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
