package repositories

import (
	"errors"

	"griddle/app/models"

	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository over a relational store.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create inserts the comment. The parent-post check runs in the same
// transaction as the insert.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, comment.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Create(comment).Error
	})
}

// GetByID retrieves a comment by ID.
func (r *GormCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves a post's comments, newest first.
func (r *GormCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Where("post_id = ?", postID).
			Order("created_at DESC, id DESC").
			Find(&comments).Error
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update overwrites an existing comment, keeping its post binding.
func (r *GormCommentRepository) Update(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Comment
		if err := tx.First(&existing, comment.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		comment.PostID = existing.PostID
		return tx.Save(comment).Error
	})
}

// Delete removes a comment by ID.
func (r *GormCommentRepository) Delete(id int) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
