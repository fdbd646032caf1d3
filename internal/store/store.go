// Package store defines the document-storage boundary. The core never talks
// to a database directly; it goes through this narrow interface so the
// backing technology stays swappable.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Document is one stored record. The storage-assigned identifier appears
// under the "_id" key on reads, always in string form.
type Document map[string]interface{}

type Store interface {
	// InsertOne writes a single document atomically and returns its
	// storage-assigned identifier.
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns up to limit documents matching an equality filter, in
	// storage-native order. There is no continuation token; limit is a hard cap.
	Find(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]Document, error)

	// Ping reports storage reachability for health endpoints.
	Ping(ctx context.Context) error

	// Collections lists the collection names that currently hold documents.
	Collections(ctx context.Context) ([]string, error)
}
