package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the slice of the DynamoDB client the store needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type promptRecord struct {
	Name      string `dynamodbav:"name"`
	Text      string `dynamodbav:"text"`
	UpdatedAt int64  `dynamodbav:"updated_at"`
}

// DynamoStore keeps prompts in a table keyed by the string attribute "name".
type DynamoStore struct {
	Client DynamoAPI
	Table  string
	now    func() time.Time
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{Client: client, Table: table, now: time.Now}
}

func nameKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"name": &types.AttributeValueMemberS{Value: name},
	}
}

func (s *DynamoStore) Load(ctx context.Context, name string) (string, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return "", err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Table),
		Key:       nameKey(name),
	})
	if err != nil {
		return "", fmt.Errorf("[DynamoStore] GetItem %s failed: %w", name, err)
	}
	if len(out.Item) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var rec promptRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return "", fmt.Errorf("[DynamoStore] unable to unmarshal %s: %w", name, err)
	}

	slog.Debug("[DynamoStore] Loaded prompt",
		slog.String("table", s.Table),
		slog.String("name", name))
	return rec.Text, nil
}

func (s *DynamoStore) Save(ctx context.Context, name string, text string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(promptRecord{
		Name:      name,
		Text:      text,
		UpdatedAt: s.now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("[DynamoStore] unable to marshal %s: %w", name, err)
	}

	if _, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("[DynamoStore] PutItem %s failed: %w", name, err)
	}

	slog.Debug("[DynamoStore] Saved prompt",
		slog.String("table", s.Table),
		slog.String("name", name))
	return nil
}
