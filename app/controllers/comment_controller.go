package controllers

import (
	"encoding/json"
	"net/http"

	"griddle/app/models"
	"griddle/app/services"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing a post's comments, newest first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}
	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		respondServiceError(w, r, err, "post not found")
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	respondList(w, comments, len(comments))
}

// Create handles creating a comment under a post.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}
	var payload models.CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, ErrKindMalformedInput, "request body must be valid JSON")
		return
	}

	comment, err := cc.commentService.CreateComment(postID, &payload)
	if err != nil {
		respondServiceError(w, r, err, "post not found")
		return
	}
	respondData(w, http.StatusCreated, comment, "comment created")
}

// Show handles displaying a single comment.
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	comment, err := cc.commentService.GetComment(id)
	if err != nil {
		respondServiceError(w, r, err, "comment not found")
		return
	}
	respondData(w, http.StatusOK, comment, "")
}

// Update handles a partial update of an existing comment.
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload models.CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, ErrKindMalformedInput, "request body must be valid JSON")
		return
	}

	comment, err := cc.commentService.UpdateComment(id, &payload)
	if err != nil {
		respondServiceError(w, r, err, "comment not found")
		return
	}
	respondData(w, http.StatusOK, comment, "comment updated")
}

// Delete handles deleting a comment.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := cc.commentService.DeleteComment(id); err != nil {
		respondServiceError(w, r, err, "comment not found")
		return
	}
	respondMessage(w, "comment deleted")
}
