package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

func TestErrorMapperMapError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Nil error maps to nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, EntityTypeUser))
	})

	t.Run("Record not found maps per entity", func(t *testing.T) {
		assert.Equal(t, errs.ErrUserNotFound, mapper.MapError(gorm.ErrRecordNotFound, EntityTypeUser))
		assert.Equal(t, errs.ErrCouponNotFound, mapper.MapError(gorm.ErrRecordNotFound, EntityTypeCoupon))
		assert.Equal(t, errs.ErrCouponCodeInvalid, mapper.MapError(gorm.ErrRecordNotFound, EntityTypeOwnedCoupon))
		assert.Equal(t, errs.ErrRecommendationNotFound, mapper.MapError(gorm.ErrRecordNotFound, EntityTypeRecommendation))
		assert.Equal(t, errs.ErrNotFound, mapper.MapError(gorm.ErrRecordNotFound, EntityTypeLedger))
	})

	t.Run("Serialization failures map to concurrent modification", func(t *testing.T) {
		serialization := errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")
		assert.Equal(t, errs.ErrConcurrentModification, mapper.MapError(serialization, EntityTypeUser))

		deadlock := errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")
		assert.Equal(t, errs.ErrConcurrentModification, mapper.MapError(deadlock, EntityTypeOwnedCoupon))
	})

	t.Run("Duplicate key depends on the entity", func(t *testing.T) {
		dupUser := errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey" (SQLSTATE 23505)`)
		assert.Equal(t, errs.ErrDuplicateUser, mapper.MapError(dupUser, EntityTypeUser))

		dupCode := errors.New(`ERROR: duplicate key value violates unique constraint "idx_owned_coupons_unique_code" (SQLSTATE 23505)`)
		assert.Equal(t, errs.ErrDuplicateCode, mapper.MapError(dupCode, EntityTypeOwnedCoupon))

		dupCoupon := errors.New(`ERROR: duplicate key value violates unique constraint "coupons_pkey" (SQLSTATE 23505)`)
		assert.Equal(t, errs.ErrConstraintViolation, mapper.MapError(dupCoupon, EntityTypeCoupon))
	})

	t.Run("Foreign key violation maps to constraint violation", func(t *testing.T) {
		fk := errors.New(`ERROR: insert or update on table "points_transactions" violates foreign key constraint "fk_points_transactions_user" (SQLSTATE 23503)`)
		assert.Equal(t, errs.ErrConstraintViolation, mapper.MapError(fk, EntityTypeLedger))
	})

	t.Run("Unmapped errors wrap the connection sentinel", func(t *testing.T) {
		refused := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		assert.ErrorIs(t, mapper.MapError(refused, EntityTypeUser), errs.ErrDatabaseConnection)
	})
}

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey" (SQLSTATE 23505)`)
		assert.True(t, classifier.IsDuplicateKeyError(err))
		assert.Equal(t, DuplicateKeyError, classifier.Classify(err))
	})

	t.Run("Lock and serialization errors", func(t *testing.T) {
		for _, msg := range []string{
			"ERROR: deadlock detected (SQLSTATE 40P01)",
			"ERROR: could not serialize access due to read/write dependencies among transactions (SQLSTATE 40001)",
			"ERROR: canceling statement due to lock timeout (SQLSTATE 55P03)",
		} {
			assert.True(t, classifier.IsLockError(errors.New(msg)), msg)
		}
	})

	t.Run("Transient connection failures", func(t *testing.T) {
		for _, msg := range []string{
			"read tcp 10.0.0.1:41234->10.0.0.2:5432: read: connection reset by peer",
			"dial tcp 10.0.0.2:5432: connect: connection refused",
			"write tcp 10.0.0.1:41234->10.0.0.2:5432: write: broken pipe",
			"read tcp 10.0.0.1:41234->10.0.0.2:5432: i/o timeout",
		} {
			assert.True(t, classifier.IsTransientError(errors.New(msg)), msg)
			assert.True(t, classifier.IsConnectionError(errors.New(msg)), msg)
		}
	})

	t.Run("Constraint violations", func(t *testing.T) {
		fk := errors.New(`ERROR: insert or update on table "comments" violates foreign key constraint "fk_comments_recommendation" (SQLSTATE 23503)`)
		assert.True(t, classifier.IsConstraintError(fk))

		notNull := errors.New(`ERROR: null value in column "email" of relation "users" violates not-null constraint (SQLSTATE 23502)`)
		assert.True(t, classifier.IsConstraintError(notNull))
	})

	t.Run("Unrelated errors stay unclassified", func(t *testing.T) {
		assert.Equal(t, ErrorType(""), classifier.Classify(errors.New("some driver hiccup")))
		assert.Equal(t, ErrorType(""), classifier.Classify(nil))
	})
}
