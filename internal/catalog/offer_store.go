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

// OfferStore encapsulates operations on the offers table.
type OfferStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewOfferStore(client aws.DynamoDBAPI, tableName string) *OfferStore {
	return &OfferStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (s *OfferStore) Put(ctx context.Context, o Offer) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.nowFunc()
	}
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal offer: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put offer: %w", err)
	}
	return nil
}

// Get fetches an offer by id. Returns (nil, nil) if not found.
func (s *OfferStore) Get(ctx context.Context, offerID string) (*Offer, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"offer_id": &types.AttributeValueMemberS{Value: offerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Offer
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal offer: %w", err)
	}
	return &o, nil
}

// Delete removes the offer document. Returns (nil, nil) when absent.
func (s *OfferStore) Delete(ctx context.Context, offerID string) (*Offer, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"offer_id": &types.AttributeValueMemberS{Value: offerID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("delete offer: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var o Offer
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal deleted offer: %w", err)
	}
	return &o, nil
}

func (s *OfferStore) List(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan offers: %w", err)
		}
		var page []Offer
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal offers: %w", err)
		}
		offers = append(offers, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return offers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
