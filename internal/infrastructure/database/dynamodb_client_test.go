package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
	failOn   string
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(in.TableName)
	if f.existing[name] {
		return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
	}
	if name == f.failOn {
		return nil, errors.New("access denied")
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	t.Setenv("ESTIMATES_TABLE", "")
	t.Setenv("ESTIMATE_ITEMS_TABLE", "")
	t.Setenv("ACCOUNTS_TABLE", "")
	t.Setenv("UPGRADE_PAYMENTS_TABLE", "")
	api := &fakeTables{existing: map[string]bool{"accounts": true}}

	require.NoError(t, EnsureTables(context.Background(), api, 0))
	require.Equal(t, []string{"estimates", "estimate_items", "upgrade_payments"}, api.created)
}

func TestEnsureTables_DescribeFailure(t *testing.T) {
	api := &fakeTables{existing: map[string]bool{}, failOn: "estimates"}
	t.Setenv("ESTIMATES_TABLE", "estimates")

	err := EnsureTables(context.Background(), api, 0)
	require.ErrorContains(t, err, "describe table estimates")
	require.Empty(t, api.created)
}

func TestTableDefinitions(t *testing.T) {
	t.Setenv("ESTIMATES_TABLE", "est_custom")
	defs := TableDefinitions()
	require.Len(t, defs, 4)

	est := defs[0]
	require.Equal(t, "est_custom", aws.ToString(est.TableName))
	require.Len(t, est.GlobalSecondaryIndexes, 1)
	require.Equal(t, "user_id-index", aws.ToString(est.GlobalSecondaryIndexes[0].IndexName))
	require.Len(t, est.AttributeDefinitions, 2)

	items := defs[1]
	require.Len(t, items.KeySchema, 2)
	require.Equal(t, types.KeyTypeRange, items.KeySchema[1].KeyType)
}
