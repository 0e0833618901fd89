package routes

import (
	"net/http"

	"griddle/app/controllers"
	"griddle/app/middleware"
	"griddle/app/repositories"
	"griddle/app/services"

	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

// Setup wires the repositories into services and controllers and returns
// the configured router.
func Setup(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	router.HandleFunc("/", index).Methods("GET")

	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")

	comments := router.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("/{id:[0-9]+}", commentController.Show).Methods("GET")
	comments.HandleFunc("/{id:[0-9]+}", commentController.Update).Methods("PUT")
	comments.HandleFunc("/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	// mux skips the middleware chain for these two, so they render the
	// envelope themselves.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		controllers.WriteJSON(w, http.StatusNotFound, controllers.Envelope{
			Success: false,
			Error:   controllers.ErrKindNotFound,
			Message: "route not found",
		})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		controllers.WriteJSON(w, http.StatusMethodNotAllowed, controllers.Envelope{
			Success: false,
			Error:   controllers.ErrKindMethodNotAllowed,
			Message: "method not allowed",
		})
	})

	return router
}

// index is a liveness route describing the API surface.
func index(w http.ResponseWriter, r *http.Request) {
	controllers.WriteJSON(w, http.StatusOK, controllers.Envelope{
		Success: true,
		Message: "griddle blog API",
		Data: map[string]interface{}{
			"version": apiVersion,
			"endpoints": map[string]string{
				"posts":    "/posts",
				"comments": "/posts/{id}/comments",
			},
		},
	})
}

// StartServer starts the HTTP server on the specified address with the
// given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
