// Package postgres backs store.Store with a single jsonb documents table.
// Every entity shares the table; the collection column plays the role of a
// document-store collection.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-erp-api/internal/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRow is the persistence shape of one document.
type DocumentRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Collection string    `gorm:"type:varchar(64);index;not null" json:"collection"`
	Data       []byte    `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (DocumentRow) TableName() string { return "documents" }

// Hook Before Create untuk generate UUID otomatis
func (row *DocumentRow) BeforeCreate(tx *gorm.DB) (err error) {
	row.ID = uuid.New()
	return
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DocumentRow{})
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc store.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	row := DocumentRow{Collection: collection, Data: data}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return row.ID.String(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]store.Document, error) {
	query := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if len(filter) > 0 {
		// Equality filters compile to jsonb containment.
		match, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		query = query.Where("data @> ?", string(match))
	}

	var rows []DocumentRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}

	docs := make([]store.Document, 0, len(rows))
	for _, row := range rows {
		doc := store.Document{}
		if err := json.Unmarshal(row.Data, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", row.ID, err)
		}
		doc["_id"] = row.ID.String()
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&DocumentRow{}).
		Distinct("collection").
		Order("collection ASC").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
