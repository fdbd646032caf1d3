package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-erp-api/internal/derive"
	"go-erp-api/internal/schema"
	"go-erp-api/internal/store"
	"go-erp-api/internal/ws"
)

// ErrUnknownEntity is returned when a request names an entity the registry
// does not know (or an embedded one that cannot live on its own).
var ErrUnknownEntity = errors.New("unknown entity")

// StorageError wraps a failure reported by the storage collaborator. It is
// never retried; the caller sees it as a server-side error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// ERPService is the CRUD facade over the schema registry and document store.
// Create runs validate -> derive -> persist; List is a capped equality query.
type ERPService interface {
	Create(ctx context.Context, entity string, payload map[string]interface{}) (store.Document, error)
	List(ctx context.Context, entity string, filter map[string]interface{}, limit int) ([]store.Document, error)
}

type erpService struct {
	registry *schema.Registry
	store    store.Store
	hub      *ws.Hub
	now      func() time.Time
}

func NewERPService(registry *schema.Registry, st store.Store, hub *ws.Hub) ERPService {
	return &erpService{
		registry: registry,
		store:    st,
		hub:      hub,
		now:      time.Now,
	}
}

func (s *erpService) Create(ctx context.Context, entity string, payload map[string]interface{}) (store.Document, error) {
	ent, ok := s.registry.Lookup(entity)
	if !ok || ent.Embedded {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	now := s.now().UTC()

	// 1. Validasi payload terhadap schema registry
	record, err := s.registry.Validate(entity, payload, now)
	if err != nil {
		return nil, err
	}

	// 2. Hitung derived fields (total, created_at, status awal)
	record = derive.Apply(ent, record, now)

	// 3. Simpan sebagai satu dokumen atomik
	id, err := s.store.InsertOne(ctx, ent.Collection, record)
	if err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}

	doc := store.Document(record)
	doc["id"] = id

	// 4. Broadcast ke WebSocket clients
	if s.hub != nil {
		go s.hub.BroadcastEvent(ws.Event{
			Type:   "document_created",
			Entity: ent.Collection,
			ID:     id,
			Data:   doc,
		})
	}

	return doc, nil
}

func (s *erpService) List(ctx context.Context, entity string, filter map[string]interface{}, limit int) ([]store.Document, error) {
	ent, ok := s.registry.Lookup(entity)
	if !ok || ent.Embedded {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	docs, err := s.store.Find(ctx, ent.Collection, filter, limit)
	if err != nil {
		return nil, &StorageError{Op: "find", Err: err}
	}

	// Identifier selalu dikembalikan dalam bentuk string
	for _, doc := range docs {
		if raw, ok := doc["_id"]; ok {
			if _, isString := raw.(string); !isString {
				doc["_id"] = fmt.Sprintf("%v", raw)
			}
		}
	}
	return docs, nil
}
