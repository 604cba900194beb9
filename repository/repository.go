package repository

import (
	"gorm.io/gorm"
)

// QueryOption composes a read query. Predicates and include lists are always
// explicit; nothing is lazily loaded.
type QueryOption func(*gorm.DB) *gorm.DB

// Where adds a filter predicate.
func Where(query interface{}, args ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

// Preload adds a related-record include.
func Preload(association string, args ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Preload(association, args...) }
}

// Joins adds a join clause for predicates over related tables.
func Joins(clause string, args ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Joins(clause, args...) }
}

// Order sets the result ordering.
func Order(value interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Order(value) }
}

// Limit caps the result size.
func Limit(n int) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Limit(n) }
}

// Paginate applies offset/limit for a 1-based page number.
func Paginate(page, pageSize int) QueryOption {
	if page < 1 {
		page = 1
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// Repository is the generic persistence gateway over one entity type.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for entity-specific operations.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// Begin returns a repository bound to a new transaction. Writes through it
// become visible only after Commit.
func (r *Repository[T]) Begin() *Repository[T] {
	return &Repository[T]{db: r.db.Begin()}
}

// Commit commits the transaction this repository is bound to.
func (r *Repository[T]) Commit() error {
	return r.db.Commit().Error
}

// Rollback aborts the transaction this repository is bound to.
func (r *Repository[T]) Rollback() error {
	return r.db.Rollback().Error
}

func (r *Repository[T]) query(opts ...QueryOption) *gorm.DB {
	q := r.db.Model(new(T))
	for _, opt := range opts {
		q = opt(q)
	}
	return q
}

// Get returns all records matching the composed query.
func (r *Repository[T]) Get(opts ...QueryOption) ([]T, error) {
	var out []T
	if err := r.query(opts...).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetOne returns the first matching record or gorm.ErrRecordNotFound.
func (r *Repository[T]) GetOne(opts ...QueryOption) (*T, error) {
	var out T
	if err := r.query(opts...).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Count returns the number of matching records.
func (r *Repository[T]) Count(opts ...QueryOption) (int64, error) {
	var n int64
	if err := r.query(opts...).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *Repository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *Repository[T]) Delete(entity *T) error {
	return r.db.Delete(entity).Error
}
