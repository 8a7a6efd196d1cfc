package database

import (
	"gorm.io/gorm"
)

//go:generate mockgen -source=tx.go -destination=../mocks/database_mocks.go -package=mocks

// TxRunner executes a function within a single database transaction. The
// orchestrator uses it to keep multi-entity mutations (organization plus
// membership, roles and assignments) atomic.
type TxRunner interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormTxRunner is the production TxRunner backed by a live connection pool.
type GormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner for the given database handle
func NewTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

// Transaction runs fn inside a transaction, committing on nil and rolling back on error
func (r *GormTxRunner) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
