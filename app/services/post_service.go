package services

import (
	"fmt"
	"time"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/sanitize"
	"griddle/app/validation"
)

// PostService orchestrates the post workflows: validation on the raw
// payload, sanitization of accepted text, then the store mutation.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and sanitizes the payload, then persists a new post.
func (s *PostService) CreatePost(payload *models.PostPayload) (*models.Post, error) {
	title := stringValue(payload.Title)
	content := stringValue(payload.Content)

	if violations := validation.ValidatePost(title, content); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	now := time.Now().UTC()
	post := &models.Post{
		Title:     sanitize.Clean(title),
		Content:   sanitize.Clean(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by ID.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// UpdatePost applies a partial update. The whole entity is re-validated on
// the effective values (existing fields overridden by whatever the payload
// supplies), so touching one field cannot leave the post inconsistent.
func (s *PostService) UpdatePost(id int, payload *models.PostPayload) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	content := existing.Content
	if payload.Title != nil {
		title = *payload.Title
	}
	if payload.Content != nil {
		content = *payload.Content
	}

	if violations := validation.ValidatePost(title, content); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if payload.Title != nil {
		existing.Title = sanitize.Clean(*payload.Title)
	}
	if payload.Content != nil {
		existing.Content = sanitize.Clean(*payload.Content)
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return existing, nil
}

// DeletePost deletes a post and, atomically with it, all of its comments.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
