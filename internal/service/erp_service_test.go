package service

import (
	"context"
	"errors"
	"testing"

	"go-erp-api/internal/schema"
	"go-erp-api/internal/store"
	"go-erp-api/internal/store/memory"
)

func newTestService() ERPService {
	return NewERPService(schema.NewRegistry(), memory.New(), nil)
}

func TestCreateAndListRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "customer", map[string]interface{}{
		"name":  "Acme",
		"email": "acme@example.com",
		"phone": "08123456789",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, ok := created["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected string id, got %v", created["id"])
	}
	if _, ok := created["created_at"]; !ok {
		t.Fatalf("created_at missing")
	}

	docs, err := svc.List(ctx, "customer", map[string]interface{}{"name": "Acme"}, 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc["_id"] != id {
		t.Fatalf("expected _id %q, got %v", id, doc["_id"])
	}
	for _, field := range []string{"name", "email", "phone"} {
		if doc[field] != created[field] {
			t.Fatalf("field %s changed in round-trip: %v vs %v", field, created[field], doc[field])
		}
	}
}

func TestCreateInvoiceDerivesTotalAndStatus(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Create(context.Background(), "invoice", map[string]interface{}{
		"customer_id": "C1",
		"items": []interface{}{
			map[string]interface{}{
				"product_id": "P1",
				"name":       "Widget",
				"quantity":   2.0,
				"price":      100.0,
				"tax_rate":   0.11,
			},
		},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if doc["total"] != 222.0 {
		t.Fatalf("expected total 222.0, got %v", doc["total"])
	}
	if doc["status"] != "draft" {
		t.Fatalf("expected status draft, got %v", doc["status"])
	}
	if doc["currency"] != "IDR" {
		t.Fatalf("expected currency IDR, got %v", doc["currency"])
	}
}

func TestCreateInvalidPayloadPersistsNothing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "product", map[string]interface{}{"name": "No SKU"})
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *schema.ValidationError, got %T: %v", err, err)
	}

	docs, err := svc.List(ctx, "product", nil, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("rejected payload must not be persisted, found %d docs", len(docs))
	}
}

func TestListAppliesLimit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, sku := range []string{"S1", "S2", "S3"} {
		if _, err := svc.Create(ctx, "product", map[string]interface{}{"sku": sku, "name": "Widget"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	docs, err := svc.List(ctx, "product", nil, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
}

func TestUnknownEntityRejected(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), "spaceship", map[string]interface{}{})
	if !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}

	// embedded line items are not creatable on their own
	_, err = svc.Create(context.Background(), "invoiceitem", map[string]interface{}{})
	if !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity for embedded entity, got %v", err)
	}
}

type failingStore struct{}

func (failingStore) InsertOne(context.Context, string, store.Document) (string, error) {
	return "", errors.New("connection refused")
}
func (failingStore) Find(context.Context, string, map[string]interface{}, int) ([]store.Document, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) Ping(context.Context) error                  { return errors.New("connection refused") }
func (failingStore) Collections(context.Context) ([]string, error) { return nil, errors.New("connection refused") }

func TestStorageFailureSurfacedWithoutRetry(t *testing.T) {
	svc := NewERPService(schema.NewRegistry(), failingStore{}, nil)

	_, err := svc.Create(context.Background(), "customer", map[string]interface{}{"name": "Acme"})
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StorageError, got %T: %v", err, err)
	}
	if serr.Op != "insert" {
		t.Fatalf("expected insert op, got %s", serr.Op)
	}

	_, err = svc.List(context.Background(), "customer", nil, 10)
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StorageError, got %T: %v", err, err)
	}
}

func TestCreatedDocumentKeepsServerOwnedTotal(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Create(context.Background(), "invoice", map[string]interface{}{
		"customer_id": "C1",
		"total":       1.0, // ignored
		"items": []interface{}{
			map[string]interface{}{"product_id": "P1", "name": "Widget", "quantity": 1.0, "price": 10.0, "tax_rate": 0.0},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc["total"] != 10.0 {
		t.Fatalf("expected server-computed total 10.0, got %v", doc["total"])
	}
}
