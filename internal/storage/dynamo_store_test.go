package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	tables []string
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Key["name"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Item["name"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoStoreRoundTrip(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "Prompts")
	store.now = func() time.Time { return time.Unix(1700000000, 0) }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "review", "I love this, it's wonderful!"))

	item, ok := fake.items["review.txt"]
	require.True(t, ok)
	assert.Equal(t, "1700000000", item["updated_at"].(*types.AttributeValueMemberN).Value)

	text, err := store.Load(ctx, "review.txt")
	require.NoError(t, err)
	assert.Equal(t, "I love this, it's wonderful!", text)
	assert.Equal(t, []string{"Prompts", "Prompts"}, fake.tables)
}

func TestDynamoStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing item", func(t *testing.T) {
		_, err := NewDynamoStore(newFakeDynamo(), "Prompts").Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		err := NewDynamoStore(newFakeDynamo(), "Prompts").Save(ctx, "", "x")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("client failure", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := newFakeDynamo()
		fake.err = boom
		store := NewDynamoStore(fake, "Prompts")

		_, err := store.Load(ctx, "a")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, store.Save(ctx, "a", "x"), boom)
	})
}
