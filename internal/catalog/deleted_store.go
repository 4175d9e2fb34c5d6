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

// DeletedProductStore holds soft-deleted products until they are restored
// or purged.
type DeletedProductStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewDeletedProductStore(client aws.DynamoDBAPI, tableName string) *DeletedProductStore {
	return &DeletedProductStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (s *DeletedProductStore) Put(ctx context.Context, d DeletedProduct) error {
	if d.DeletedAt.IsZero() {
		d.DeletedAt = s.nowFunc()
	}
	item, err := attributevalue.MarshalMap(d)
	if err != nil {
		return fmt.Errorf("marshal deleted product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put deleted product: %w", err)
	}
	return nil
}

// Get fetches a soft-deleted product by its original id. Returns (nil, nil)
// if not found.
func (s *DeletedProductStore) Get(ctx context.Context, productID string) (*DeletedProduct, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get deleted product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var d DeletedProduct
	if err := attributevalue.UnmarshalMap(out.Item, &d); err != nil {
		return nil, fmt.Errorf("unmarshal deleted product: %w", err)
	}
	return &d, nil
}

// Delete permanently removes one soft-deleted product. Returns (nil, nil)
// when absent.
func (s *DeletedProductStore) Delete(ctx context.Context, productID string) (*DeletedProduct, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("purge deleted product: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var d DeletedProduct
	if err := attributevalue.UnmarshalMap(out.Attributes, &d); err != nil {
		return nil, fmt.Errorf("unmarshal purged product: %w", err)
	}
	return &d, nil
}

func (s *DeletedProductStore) List(ctx context.Context) ([]DeletedProduct, error) {
	var deleted []DeletedProduct
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan deleted products: %w", err)
		}
		var page []DeletedProduct
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal deleted products: %w", err)
		}
		deleted = append(deleted, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return deleted, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// DeleteAll purges every soft-deleted product and returns the count removed.
func (s *DeletedProductStore) DeleteAll(ctx context.Context) (int, error) {
	deleted, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, d := range deleted {
		if _, err := s.Delete(ctx, d.ProductID); err != nil {
			return 0, err
		}
	}
	return len(deleted), nil
}
