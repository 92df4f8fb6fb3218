package repositories

import (
	"postable/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Create(like *models.Like) error
	Delete(postID, userID string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like with conflict-do-nothing semantics. The
// store's unique (post_id, user_id) constraint is the only arbiter
// under concurrent requests: no in-process locking, so the engine is
// safe to run as multiple stateless instances. Zero rows affected
// means the pair already existed and is reported as a duplicate, never
// as a silent success.
func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(like)
		if res.Error != nil {
			return models.DataStoreError("failed to create like", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.DuplicateError(models.CodeDuplicateLike, "like already exists")
		}
		return nil
	})
}

// Delete removes the matching like. Zero rows affected means there was
// nothing to remove, reported as not found rather than swallowed.
func (r *likeRepository) Delete(postID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return models.DataStoreError("failed to delete like", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NotFoundError(models.CodeLikeNotFound, "like not found")
		}
		return nil
	})
}
