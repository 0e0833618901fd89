package repositories

import "griddle/app/models"

// PostRepository defines the interface for post data access. Every mutating
// method runs as a single atomic transaction against the backing store.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	// Delete removes the post and every comment attached to it within the
	// same transaction, so no orphan comment survives a successful delete.
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	// Create inserts the comment after verifying, inside the insert
	// transaction, that the parent post exists. Returns ErrNotFound when
	// it does not.
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	// ListByPost returns the post's comments newest first. Returns
	// ErrNotFound when the post does not exist.
	ListByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}
