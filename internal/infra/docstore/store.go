package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a collection has no document under the
// requested id.
var ErrNotFound = errors.New("document not found")

// Document is one row of the schema-less store: a JSON body addressed by
// collection name + document id.
type Document struct {
	Collection string    `gorm:"primaryKey;size:64"`
	DocID      string    `gorm:"primaryKey;size:64;column:doc_id"`
	Body       []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Record pairs a document id with its raw body, the shape list endpoints
// hand back to the dashboard.
type Record struct {
	ID   string          `json:"id"`
	Body json.RawMessage `json:"data"`
}

// Store is the document client. It is constructed once at startup and passed
// into the handlers; there is no package-level instance.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetAll returns every document in a collection in store order. No sort is
// applied; callers that need ordering do it themselves.
func (s *Store) GetAll(ctx context.Context, collection string) ([]Record, error) {
	var docs []Document
	if err := s.db.WithContext(ctx).Where("collection = ?", collection).Find(&docs).Error; err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, Record{ID: d.DocID, Body: json.RawMessage(d.Body)})
	}
	return records, nil
}

func (s *Store) GetOne(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc.Body), nil
}

// GetFirst returns the first document of a collection. Singleton collections
// (aboutUs, Headquarter) are read this way: whatever single document exists
// wins, matching how the dashboard has always treated them.
func (s *Store) GetFirst(ctx context.Context, collection string) (string, json.RawMessage, error) {
	var doc Document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("doc_id").
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}
	return doc.DocID, json.RawMessage(doc.Body), nil
}

// Set writes the full document body under (collection, id), creating or
// unconditionally overwriting it. Last write wins; there is no version check.
func (s *Store) Set(ctx context.Context, collection, id string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	doc := Document{Collection: collection, DocID: id, Body: raw}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&doc).Error
}

// UpdateFields merges the given top-level fields into an existing document.
// Unlike Set it fails with ErrNotFound when the document does not exist.
func (s *Store) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := s.GetOne(ctx, collection, id)
	if err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	for k, v := range fields {
		body[k] = v
	}
	return s.Set(ctx, collection, id, body)
}

// Delete removes a document. Deleting a missing document is not an error,
// matching the store the dashboard grew up with.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&Document{}).Error
}

// NewID returns a millisecond-timestamp id, the scheme every existing record
// already uses. Near-simultaneous creations could collide; the format is kept
// anyway because the store's ids are part of its persisted contract.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&Document{}).
		Where("collection = ?", collection).
		Count(&n).Error
	return n, err
}
