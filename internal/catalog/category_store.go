package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ashurstore/commerce-api/internal/aws"
)

// CategoryStore encapsulates operations on the categories table.
type CategoryStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewCategoryStore(client aws.DynamoDBAPI, tableName string) *CategoryStore {
	return &CategoryStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (s *CategoryStore) Put(ctx context.Context, c Category) error {
	c.UpdatedAt = s.nowFunc()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = c.UpdatedAt
	}
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put category: %w", err)
	}
	return nil
}

// Get fetches a category by id. Returns (nil, nil) if not found.
func (s *CategoryStore) Get(ctx context.Context, categoryID string) (*Category, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"category_id": &types.AttributeValueMemberS{Value: categoryID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Category
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal category: %w", err)
	}
	return &c, nil
}

// Delete removes the category document. Returns (nil, nil) when absent.
func (s *CategoryStore) Delete(ctx context.Context, categoryID string) (*Category, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"category_id": &types.AttributeValueMemberS{Value: categoryID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var c Category
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, fmt.Errorf("unmarshal deleted category: %w", err)
	}
	return &c, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan categories: %w", err)
		}
		var page []Category
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal categories: %w", err)
		}
		categories = append(categories, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return categories, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
