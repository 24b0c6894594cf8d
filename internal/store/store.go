package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrMalformedID means the supplied identifier is not a UUID.
	ErrMalformedID = errors.New("malformed identifier")
	// ErrNotFound means no record is stored under the identifier.
	ErrNotFound = errors.New("record not found")
)

// CheckID validates the store's identifier format.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMalformedID
	}
	return nil
}

// Store is a generic gorm-backed collection of one entity type. Every
// module (admins, clients, products, categories, locations, contracts)
// goes through the same four operations.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB exposes the underlying handle for queries the generic surface
// does not cover (lookups by non-id keys, transactions).
func (s *Store[T]) DB() *gorm.DB { return s.db }

// FindByID resolves one record, optionally with referenced entities
// preloaded inline.
func (s *Store[T]) FindByID(id string, preloads ...string) (*T, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	q := s.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out T
	if err := q.First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List returns every record, optionally populated.
func (s *Store[T]) List(preloads ...string) ([]T, error) {
	q := s.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Create persists a new record; the model hook assigns a fresh id.
func (s *Store[T]) Create(rec *T) error {
	return s.db.Create(rec).Error
}

// Update applies only the supplied fields; absent fields keep their
// prior values. Returns the record as stored after the update.
func (s *Store[T]) Update(id string, fields map[string]any, preloads ...string) (*T, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		var zero T
		if err := s.db.Model(&zero).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(id, preloads...)
}

// Delete removes the record. Hard delete, no cascade: back-references
// held by other collections are the caller's concern.
func (s *Store[T]) Delete(id string) error {
	rec, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(rec).Error
}
