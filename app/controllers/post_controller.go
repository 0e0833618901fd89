package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"griddle/app/models"
	"griddle/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	respondList(w, posts, len(posts))
}

// Show handles displaying a single post.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	post, err := pc.postService.GetPost(id)
	if err != nil {
		respondServiceError(w, r, err, "post not found")
		return
	}
	respondData(w, http.StatusOK, post, "")
}

// Create handles creating a new post.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, ErrKindMalformedInput, "request body must be valid JSON")
		return
	}

	post, err := pc.postService.CreatePost(&payload)
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	respondData(w, http.StatusCreated, post, "post created")
}

// Update handles a partial update of an existing post.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload models.PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, ErrKindMalformedInput, "request body must be valid JSON")
		return
	}

	post, err := pc.postService.UpdatePost(id, &payload)
	if err != nil {
		respondServiceError(w, r, err, "post not found")
		return
	}
	respondData(w, http.StatusOK, post, "post updated")
}

// Delete handles deleting a post together with its comments.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := pc.postService.DeletePost(id); err != nil {
		respondServiceError(w, r, err, "post not found")
		return
	}
	respondMessage(w, "post deleted")
}

// pathID parses a numeric path variable. The routes constrain these to
// digits, so a failure here means an out-of-range value.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		respondError(w, http.StatusNotFound, ErrKindNotFound, "invalid identifier")
		return 0, false
	}
	return id, true
}
