package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	domainerrors "msc-team.backend/internal/domain/errors"
)

const pqUniqueViolation = "23505"

// mapStoreError folds driver specific uniqueness and not-found errors into
// the domain sentinels. Other errors pass through unchanged.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKey(err):
		return fmt.Errorf("%w: %v", domainerrors.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return domainerrors.ErrNotFound
	default:
		return err
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}
