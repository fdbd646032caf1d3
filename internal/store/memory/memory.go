// Package memory is an in-process store.Store used by tests and as the run
// mode when no DATABASE_URL is configured.
package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go-erp-api/internal/store"

	"github.com/google/uuid"
)

type Store struct {
	mu   sync.Mutex
	docs map[string][]store.Document
}

func New() *Store {
	return &Store{docs: make(map[string][]store.Document)}
}

func (s *Store) InsertOne(_ context.Context, collection string, doc store.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(doc)
	id := uuid.New().String()
	stored["_id"] = id
	s.docs[collection] = append(s.docs[collection], stored)
	return id, nil
}

func (s *Store) Find(_ context.Context, collection string, filter map[string]interface{}, limit int) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Document, 0)
	for _, doc := range s.docs[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, clone(doc))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Collections(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.docs))
	for name, docs := range s.docs {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func matches(doc store.Document, filter map[string]interface{}) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func clone(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
