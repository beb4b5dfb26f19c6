package repository

import (
	"context"
	"fmt"
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
	defaultEstimatesTableName     = "estimates"
	defaultEstimateItemsTableName = "estimate_items"
	estimatesUserIDIndex          = "user_id-index"

	// DynamoDB caps BatchWriteItem at 25 requests.
	maxBatchWriteSize = 25
	maxBatchAttempts  = 3

	defaultBatchRetryDelay = 100 * time.Millisecond
)

type partyItem struct {
	Name    string `dynamodbav:"name"`
	Company string `dynamodbav:"company,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Email   string `dynamodbav:"email,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

type estimateItem struct {
	ID               string    `dynamodbav:"id"`
	UserID           string    `dynamodbav:"user_id"`
	CreatedAt        string    `dynamodbav:"created_at"`
	UpdatedAt        string    `dynamodbav:"updated_at"`
	Contractor       partyItem `dynamodbav:"contractor"`
	Client           partyItem `dynamodbav:"client"`
	TaxRate          float64   `dynamodbav:"tax_rate"`
	Subtotal         float64   `dynamodbav:"subtotal"`
	Tax              float64   `dynamodbav:"tax"`
	Total            float64   `dynamodbav:"total"`
	RenderedDocument string    `dynamodbav:"rendered_document,omitempty"`
}

type lineItemRow struct {
	EstimateID string  `dynamodbav:"estimate_id"`
	ID         string  `dynamodbav:"id"`
	Position   int     `dynamodbav:"position"`
	Name       string  `dynamodbav:"name"`
	Quantity   float64 `dynamodbav:"quantity"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
}

// EstimateDynamoRepository is the row-level store behind the remote estimate
// collection.
//
// Table requirements:
//   - estimates: PK id (string); GSI user_id-index (PK user_id, SK created_at)
//   - estimate_items: PK estimate_id (string), SK id (string)
//
// Items carry their position so the display order survives the round trip.
// Errors are returned as *entities.RemoteError.
//
// ListHeadersByOwner reads the user_id-index GSI, and GSI reads are always
// eventually consistent: a header written a moment ago may be missing from the
// listing (and from Count built on it) for a short while. GetHeader and the
// item queries read the base tables with ConsistentRead, so the ownership and
// update-vs-create checks behind the quota gate see every committed write.
type EstimateDynamoRepository struct {
	ddb        DynamoDBAPI
	tableName  string
	itemsTable string
	retryDelay time.Duration
}

var _ interfaces.IEstimateRowStore = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoDBAPI) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		itemsTable: getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
		retryDelay: defaultBatchRetryDelay,
	}
}

func (r *EstimateDynamoRepository) ListHeadersByOwner(ctx context.Context, ownerID string) ([]interfaces.EstimateHeader, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	headers := make([]interfaces.EstimateHeader, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, classifyDynamoError("list_estimates", err)
		}
		for _, raw := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, classifyDynamoError("list_estimates", err)
			}
			headers = append(headers, fromEstimateItem(it))
		}
	}

	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].Estimate.CreatedAt.Before(headers[j].Estimate.CreatedAt)
	})
	return headers, nil
}

func (r *EstimateDynamoRepository) GetHeader(ctx context.Context, id string) (interfaces.EstimateHeader, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return interfaces.EstimateHeader{}, false, classifyDynamoError("get_estimate", err)
	}
	if len(out.Item) == 0 {
		return interfaces.EstimateHeader{}, false, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return interfaces.EstimateHeader{}, false, classifyDynamoError("get_estimate", err)
	}
	return fromEstimateItem(it), true, nil
}

func (r *EstimateDynamoRepository) UpsertHeader(ctx context.Context, h interfaces.EstimateHeader) error {
	av, err := attributevalue.MarshalMap(toEstimateItem(h, time.Now().UTC()))
	if err != nil {
		return classifyDynamoError("upsert_estimate", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return classifyDynamoError("upsert_estimate", err)
}

func (r *EstimateDynamoRepository) DeleteHeader(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return classifyDynamoError("delete_estimate", err)
}

func (r *EstimateDynamoRepository) ListItems(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	rows, err := r.queryItemRows(ctx, estimateID)
	if err != nil {
		return nil, classifyDynamoError("list_items", err)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	items := make([]entities.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.LineItem{
			ID:        row.ID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
		})
	}
	return items, nil
}

func (r *EstimateDynamoRepository) DeleteItemsByEstimate(ctx context.Context, estimateID string) error {
	rows, err := r.queryItemRows(ctx, estimateID)
	if err != nil {
		return classifyDynamoError("delete_items", err)
	}

	requests := make([]types.WriteRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{
				"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
				"id":          &types.AttributeValueMemberS{Value: row.ID},
			}},
		})
	}
	return classifyDynamoError("delete_items", r.batchWrite(ctx, r.itemsTable, requests))
}

func (r *EstimateDynamoRepository) InsertItems(ctx context.Context, estimateID string, items []entities.LineItem) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for i, it := range items {
		av, err := attributevalue.MarshalMap(lineItemRow{
			EstimateID: estimateID,
			ID:         it.ID,
			Position:   i,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
		if err != nil {
			return classifyDynamoError("insert_items", err)
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return classifyDynamoError("insert_items", r.batchWrite(ctx, r.itemsTable, requests))
}

func (r *EstimateDynamoRepository) queryItemRows(ctx context.Context, estimateID string) ([]lineItemRow, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var rows []lineItemRow
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var row lineItemRow
			if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// batchWrite sends requests in chunks, resending unprocessed ones a bounded
// number of times with a doubling delay between attempts.
func (r *EstimateDynamoRepository) batchWrite(ctx context.Context, table string, requests []types.WriteRequest) error {
	for start := 0; start < len(requests); start += maxBatchWriteSize {
		end := start + maxBatchWriteSize
		if end > len(requests) {
			end = len(requests)
		}
		pending := map[string][]types.WriteRequest{table: requests[start:end]}

		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt == maxBatchAttempts {
				return fmt.Errorf("batch write %s: %d requests left unprocessed", table, len(pending[table]))
			}
			if attempt > 0 {
				if err := sleepCtx(ctx, r.retryDelay<<(attempt-1)); err != nil {
					return err
				}
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
			if pending == nil {
				break
			}
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func toEstimateItem(h interfaces.EstimateHeader, now time.Time) estimateItem {
	e := h.Estimate
	return estimateItem{
		ID:               e.ID,
		UserID:           h.OwnerID,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        now.Format(time.RFC3339Nano),
		Contractor:       partyItem(e.Contractor),
		Client:           partyItem(e.Client),
		TaxRate:          e.TaxRatePercent,
		Subtotal:         e.Subtotal,
		Tax:              e.Tax,
		Total:            e.Total,
		RenderedDocument: e.RenderedDocument,
	}
}

func fromEstimateItem(it estimateItem) interfaces.EstimateHeader {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return interfaces.EstimateHeader{
		OwnerID: it.UserID,
		Estimate: entities.Estimate{
			ID:               it.ID,
			CreatedAt:        createdAt,
			Contractor:       entities.Party(it.Contractor),
			Client:           entities.Party(it.Client),
			TaxRatePercent:   it.TaxRate,
			Subtotal:         it.Subtotal,
			Tax:              it.Tax,
			Total:            it.Total,
			RenderedDocument: it.RenderedDocument,
		},
	}
}
