package services

import (
	"context"

	"gorm.io/gorm"
)

// inTx runs fn in a single transaction bound to ctx. The transaction commits
// when fn returns nil and rolls back otherwise.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
