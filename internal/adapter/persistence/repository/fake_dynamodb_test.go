package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type row = map[string]types.AttributeValue

// fakeDynamo is an in-memory stand-in for the subset of DynamoDB the
// repositories use. It understands "attr = :v" key conditions, "SET a = :a"
// updates and the attribute_exists/attribute_not_exists conditions.
type fakeDynamo struct {
	mu      sync.Mutex
	keys    map[string][]string
	tables  map[string]map[string]row
	fail    map[string]error
	pageLen int

	// unprocessedCalls makes the next N BatchWriteItem calls process nothing.
	unprocessedCalls int
	batchSizes       []int

	onQuery func(in *dynamodb.QueryInput)
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys: map[string][]string{
			defaultEstimatesTableName:       {"id"},
			defaultEstimateItemsTableName:   {"estimate_id", "id"},
			defaultAccountsTableName:        {"id"},
			defaultUpgradePaymentsTableName: {"id"},
		},
		tables: map[string]map[string]row{},
		fail:   map[string]error{},
	}
}

func (f *fakeDynamo) keyOf(table string, r row) string {
	parts := make([]string, 0, 2)
	for _, k := range f.keys[table] {
		parts = append(parts, attrString(r[k]))
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) table(name string) map[string]row {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]row{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

func attrString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprint(v.Value)
	default:
		return ""
	}
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) checkCondition(table string, key string, cond *string) error {
	if cond == nil {
		return nil
	}
	_, exists := f.table(table)[key]
	switch {
	case strings.HasPrefix(*cond, "attribute_not_exists") && exists:
		return conditionFailed()
	case strings.HasPrefix(*cond, "attribute_exists") && !exists:
		return conditionFailed()
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["PutItem"]; err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	key := f.keyOf(table, in.Item)
	if err := f.checkCondition(table, key, in.ConditionExpression); err != nil {
		return nil, err
	}
	f.table(table)[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["GetItem"]; err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.table(table)[f.keyOf(table, in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["DeleteItem"]; err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	delete(f.table(table), f.keyOf(table, in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["Query"]; err != nil {
		return nil, err
	}
	if f.onQuery != nil {
		f.onQuery(in)
	}
	table := aws.ToString(in.TableName)
	attr, placeholder, ok := strings.Cut(aws.ToString(in.KeyConditionExpression), " = ")
	if !ok {
		return nil, fmt.Errorf("unsupported key condition %q", aws.ToString(in.KeyConditionExpression))
	}
	want := attrString(in.ExpressionAttributeValues[placeholder])

	keys := make([]string, 0)
	for k, r := range f.table(table) {
		if attrString(r[attr]) == want {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if len(in.ExclusiveStartKey) > 0 {
		start := f.keyOf(table, in.ExclusiveStartKey)
		i := sort.SearchStrings(keys, start)
		if i < len(keys) && keys[i] == start {
			i++
		}
		keys = keys[i:]
	}

	out := &dynamodb.QueryOutput{}
	if f.pageLen > 0 && len(keys) > f.pageLen {
		keys = keys[:f.pageLen]
		last := f.table(table)[keys[len(keys)-1]]
		lek := row{}
		for _, k := range f.keys[table] {
			lek[k] = last[k]
		}
		out.LastEvaluatedKey = lek
	}
	for _, k := range keys {
		out.Items = append(out.Items, f.table(table)[k])
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["UpdateItem"]; err != nil {
		return nil, err
	}
	table := aws.ToString(in.TableName)
	key := f.keyOf(table, in.Key)
	if err := f.checkCondition(table, key, in.ConditionExpression); err != nil {
		return nil, err
	}

	current := row{}
	for k, v := range f.table(table)[key] {
		current[k] = v
	}
	for k, v := range in.Key {
		current[k] = v
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(expr, ",") {
		name, placeholder, ok := strings.Cut(strings.TrimSpace(assignment), " = ")
		if !ok {
			return nil, fmt.Errorf("unsupported update expression %q", expr)
		}
		if resolved, ok := in.ExpressionAttributeNames[name]; ok {
			name = resolved
		}
		current[name] = in.ExpressionAttributeValues[placeholder]
	}
	f.table(table)[key] = current
	return &dynamodb.UpdateItemOutput{Attributes: current}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail["BatchWriteItem"]; err != nil {
		return nil, err
	}
	for _, reqs := range in.RequestItems {
		if len(reqs) > maxBatchWriteSize {
			return nil, fmt.Errorf("too many requests in batch: %d", len(reqs))
		}
		f.batchSizes = append(f.batchSizes, len(reqs))
	}
	if f.unprocessedCalls > 0 {
		f.unprocessedCalls--
		return &dynamodb.BatchWriteItemOutput{UnprocessedItems: in.RequestItems}, nil
	}

	for table, reqs := range in.RequestItems {
		for _, req := range reqs {
			switch {
			case req.PutRequest != nil:
				f.table(table)[f.keyOf(table, req.PutRequest.Item)] = req.PutRequest.Item
			case req.DeleteRequest != nil:
				delete(f.table(table), f.keyOf(table, req.DeleteRequest.Key))
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}
