package services

import (
	"fmt"
	"time"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/sanitize"
	"griddle/app/validation"
)

// CommentService orchestrates the comment workflows.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates and sanitizes the payload, then persists a new
// comment under the given post. The parent must exist before the comment's
// own fields are even validated; the store re-checks it inside the insert
// transaction to stay correct under a racing post delete.
func (s *CommentService) CreateComment(postID int, payload *models.CommentPayload) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	content := stringValue(payload.Content)
	author := stringValue(payload.Author)

	if violations := validation.ValidateComment(content, author); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	comment := &models.Comment{
		PostID:    postID,
		Content:   sanitize.Clean(content),
		Author:    sanitize.Clean(author),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// GetComment retrieves a comment by ID.
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves a post's comments, newest first.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// UpdateComment applies a partial update, re-validating the effective
// values. The comment's post binding never changes.
func (s *CommentService) UpdateComment(id int, payload *models.CommentPayload) (*models.Comment, error) {
	existing, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	content := existing.Content
	author := existing.Author
	if payload.Content != nil {
		content = *payload.Content
	}
	if payload.Author != nil {
		author = *payload.Author
	}

	if violations := validation.ValidateComment(content, author); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if payload.Content != nil {
		existing.Content = sanitize.Clean(*payload.Content)
	}
	if payload.Author != nil {
		existing.Author = sanitize.Clean(*payload.Author)
	}

	if err := s.commentRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return existing, nil
}

// DeleteComment deletes a comment.
func (s *CommentService) DeleteComment(id int) error {
	return s.commentRepo.Delete(id)
}
