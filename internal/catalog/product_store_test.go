package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// pagingDynamo serves one raw item per Scan page and applies the filter
// expression per page, the way DynamoDB does: a page can come back with no
// matching items and still carry a LastEvaluatedKey.
type pagingDynamo struct {
	items []map[string]types.AttributeValue
}

func (m *pagingDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	start := 0
	if len(params.ExclusiveStartKey) > 0 {
		pk := params.ExclusiveStartKey["product_id"].(*types.AttributeValueMemberS).Value
		for i, item := range m.items {
			if item["product_id"].(*types.AttributeValueMemberS).Value == pk {
				start = i + 1
				break
			}
		}
	}
	if start >= len(m.items) {
		return &dyn.ScanOutput{}, nil
	}

	item := m.items[start]
	out := &dyn.ScanOutput{}
	if matches(params, item) {
		out.Items = []map[string]types.AttributeValue{item}
	}
	if start+1 < len(m.items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"product_id": item["product_id"],
		}
	}
	return out, nil
}

func matches(params *dyn.ScanInput, item map[string]types.AttributeValue) bool {
	if params.FilterExpression == nil {
		return true
	}
	switch *params.FilterExpression {
	case "#n = :n":
		want := params.ExpressionAttributeValues[":n"].(*types.AttributeValueMemberS).Value
		got, ok := item["name"].(*types.AttributeValueMemberS)
		return ok && got.Value == want
	case "category_id = :c":
		want := params.ExpressionAttributeValues[":c"].(*types.AttributeValueMemberS).Value
		got, ok := item["category_id"].(*types.AttributeValueMemberS)
		return ok && got.Value == want
	}
	return false
}

func (m *pagingDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	return nil, errors.New("not implemented")
}

func (m *pagingDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	return nil, errors.New("not implemented")
}

func (m *pagingDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	return nil, errors.New("not implemented")
}

func (m *pagingDynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	return nil, errors.New("not implemented")
}

func pagingStore(t *testing.T, products ...Product) *ProductStore {
	t.Helper()
	mock := &pagingDynamo{}
	for _, p := range products {
		item, err := attributevalue.MarshalMap(p)
		if err != nil {
			t.Fatalf("marshal product: %v", err)
		}
		mock.items = append(mock.items, item)
	}
	return NewProductStore(mock, "products")
}

func TestAnyInCategory_MatchOnLaterPage(t *testing.T) {
	store := pagingStore(t,
		Product{ProductID: "p1", Name: "Desk"},
		Product{ProductID: "p2", Name: "Chair", CategoryID: "cat-1"},
	)

	inUse, err := store.AnyInCategory(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("any in category failed: %v", err)
	}
	if !inUse {
		t.Fatalf("expected category match from the second page")
	}
}

func TestAnyInCategory_NoMatchAcrossPages(t *testing.T) {
	store := pagingStore(t,
		Product{ProductID: "p1", Name: "Desk"},
		Product{ProductID: "p2", Name: "Chair"},
	)

	inUse, err := store.AnyInCategory(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("any in category failed: %v", err)
	}
	if inUse {
		t.Fatalf("no product references cat-1")
	}
}

func TestFindByName_MatchOnLaterPage(t *testing.T) {
	store := pagingStore(t,
		Product{ProductID: "p1", Name: "Desk"},
		Product{ProductID: "p2", Name: "Chair"},
		Product{ProductID: "p3", Name: "Lamp"},
	)

	p, err := store.FindByName(context.Background(), "Lamp")
	if err != nil {
		t.Fatalf("find by name failed: %v", err)
	}
	if p == nil || p.ProductID != "p3" {
		t.Fatalf("expected p3 from the last page, got %+v", p)
	}

	absent, err := store.FindByName(context.Background(), "Sofa")
	if err != nil {
		t.Fatalf("find by name failed: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for absent name, got %+v", absent)
	}
}

func TestListByCategory_CollectsAllPages(t *testing.T) {
	store := pagingStore(t,
		Product{ProductID: "p1", Name: "Desk", CategoryID: "cat-1"},
		Product{ProductID: "p2", Name: "Chair"},
		Product{ProductID: "p3", Name: "Lamp", CategoryID: "cat-1"},
	)

	list, err := store.ListByCategory(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products across pages, got %d", len(list))
	}
}
