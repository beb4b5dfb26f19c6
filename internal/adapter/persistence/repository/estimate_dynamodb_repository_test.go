package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(owner, id string, created time.Time) interfaces.EstimateHeader {
	e := entities.Estimate{
		ID:             id,
		CreatedAt:      created,
		Contractor:     entities.Party{Name: "Ana", Company: "Ana & Co", Phone: "555-0100"},
		Client:         entities.Party{Name: "Bob", Address: "1 Main St"},
		TaxRatePercent: 7.5,
		Subtotal:       100,
		Tax:            7.5,
		Total:          107.5,
	}
	return interfaces.EstimateHeader{OwnerID: owner, Estimate: e}
}

func TestEstimateDynamoRepository_HeaderRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateDynamoRepository(newFakeDynamo())
	created := time.Date(2025, 5, 6, 7, 8, 9, 123, time.UTC)

	require.NoError(t, repo.UpsertHeader(ctx, header("u1", "e1", created)))

	got, found, err := repo.GetHeader(ctx, "e1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, header("u1", "e1", created).Estimate, got.Estimate)

	_, found, err = repo.GetHeader(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.DeleteHeader(ctx, "e1"))
	require.NoError(t, repo.DeleteHeader(ctx, "e1"))
	_, found, err = repo.GetHeader(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEstimateDynamoRepository_ListHeadersByOwnerPaginatesAndSorts(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.pageLen = 1
	repo := NewEstimateDynamoRepository(fake)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertHeader(ctx, header("u1", "a", base.Add(2*time.Hour))))
	require.NoError(t, repo.UpsertHeader(ctx, header("u1", "b", base)))
	require.NoError(t, repo.UpsertHeader(ctx, header("u1", "c", base.Add(time.Hour))))
	require.NoError(t, repo.UpsertHeader(ctx, header("u2", "d", base)))

	got, err := repo.ListHeadersByOwner(ctx, "u1")
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, h := range got {
		ids = append(ids, h.Estimate.ID)
		assert.Equal(t, "u1", h.OwnerID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)

	none, err := repo.ListHeadersByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestEstimateDynamoRepository_ItemsKeepPositionAcrossBatches(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewEstimateDynamoRepository(fake)

	items := make([]entities.LineItem, 0, 30)
	for i := 0; i < 30; i++ {
		// ids sort differently from their position on purpose
		items = append(items, entities.LineItem{
			ID:        fmt.Sprintf("item-%02d", 29-i),
			Name:      fmt.Sprintf("line %d", i),
			Quantity:  float64(i + 1),
			UnitPrice: 2.5,
		})
	}
	require.NoError(t, repo.InsertItems(ctx, "e1", items))
	require.NoError(t, repo.InsertItems(ctx, "e2", items[:1]))
	assert.Equal(t, []int{25, 5, 1}, fake.batchSizes)

	got, err := repo.ListItems(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	require.NoError(t, repo.DeleteItemsByEstimate(ctx, "e1"))
	got, err = repo.ListItems(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := repo.ListItems(ctx, "e2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
	assert.Equal(t, 1, fake.count(defaultEstimateItemsTableName))
}

func TestEstimateDynamoRepository_EmptyWritesAreNoops(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewEstimateDynamoRepository(fake)

	require.NoError(t, repo.InsertItems(ctx, "e1", nil))
	require.NoError(t, repo.DeleteItemsByEstimate(ctx, "e1"))
	assert.Empty(t, fake.batchSizes)
}

func TestEstimateDynamoRepository_RetriesUnprocessedItems(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.unprocessedCalls = 2
	repo := NewEstimateDynamoRepository(fake)
	repo.retryDelay = 10 * time.Millisecond

	started := time.Now()
	require.NoError(t, repo.InsertItems(ctx, "e1", []entities.LineItem{{ID: "i1", Quantity: 1}}))
	assert.Equal(t, 1, fake.count(defaultEstimateItemsTableName))
	// two resends wait 10ms then 20ms
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)

	fake.unprocessedCalls = maxBatchAttempts
	err := repo.InsertItems(ctx, "e1", []entities.LineItem{{ID: "i2", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteServerFault))
}

func TestEstimateDynamoRepository_RetryBackoffStopsOnCancel(t *testing.T) {
	fake := newFakeDynamo()
	fake.unprocessedCalls = maxBatchAttempts
	repo := NewEstimateDynamoRepository(fake)
	repo.retryDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := repo.InsertItems(ctx, "e1", []entities.LineItem{{ID: "i1", Quantity: 1}})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnreachable))
	assert.Len(t, fake.batchSizes, 1)
}

func TestEstimateDynamoRepository_OwnerListingUsesTheIndex(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewEstimateDynamoRepository(fake)

	var seen *dynamodb.QueryInput
	fake.onQuery = func(in *dynamodb.QueryInput) { seen = in }
	_, err := repo.ListHeadersByOwner(context.Background(), "u1")
	require.NoError(t, err)

	// DynamoDB rejects ConsistentRead on a GSI; the listing is eventually consistent.
	require.NotNil(t, seen)
	assert.Equal(t, estimatesUserIDIndex, aws.ToString(seen.IndexName))
	assert.Nil(t, seen.ConsistentRead)
}

func TestEstimateDynamoRepository_ClassifiesFailures(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewEstimateDynamoRepository(fake)

	fake.fail["GetItem"] = &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}
	_, _, err := repo.GetHeader(ctx, "e1")
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnauthorized))

	fake.fail["Query"] = &smithyhttp.RequestSendError{Err: errors.New("dial tcp: connection refused")}
	_, err = repo.ListHeadersByOwner(ctx, "u1")
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnreachable))
	_, err = repo.ListItems(ctx, "e1")
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteUnreachable))

	fake.fail["PutItem"] = &smithy.GenericAPIError{Code: "InternalServerError", Message: "boom"}
	err = repo.UpsertHeader(ctx, header("u1", "e1", time.Now()))
	assert.True(t, entities.IsRemoteKind(err, entities.RemoteServerFault))
	assert.True(t, errors.Is(err, entities.ErrRemote))

	var re *entities.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "upsert_estimate", re.Op)
}

func TestClassifyDynamoError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind entities.RemoteErrorKind
	}{
		{name: "expired token", err: &smithy.GenericAPIError{Code: "ExpiredTokenException"}, kind: entities.RemoteUnauthorized},
		{name: "unknown client", err: &smithy.GenericAPIError{Code: "UnrecognizedClientException"}, kind: entities.RemoteUnauthorized},
		{name: "throttled", err: &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException"}, kind: entities.RemoteServerFault},
		{name: "send error", err: &smithyhttp.RequestSendError{Err: errors.New("eof")}, kind: entities.RemoteUnreachable},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), kind: entities.RemoteUnreachable},
		{name: "canceled", err: context.Canceled, kind: entities.RemoteUnreachable},
		{name: "other", err: errors.New("decode failure"), kind: entities.RemoteServerFault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyDynamoError("op", tc.err)
			assert.True(t, entities.IsRemoteKind(err, tc.kind), "got %v", err)
			assert.True(t, errors.Is(err, tc.err))
		})
	}

	assert.NoError(t, classifyDynamoError("op", nil))
}
