package repositories

import (
	"errors"

	"griddle/app/models"

	"gorm.io/gorm"
)

// GormPostRepository implements PostRepository over a relational store.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create persists the post and fills in its assigned id.
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID.
func (r *GormPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in insertion order.
func (r *GormPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites an existing post.
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Post
		if err := tx.First(&existing, post.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Save(post).Error
	})
}

// Delete removes a post and all of its comments in one transaction.
func (r *GormPostRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
