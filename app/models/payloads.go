package models

// PostPayload is a decoded create/update request body for a post. A nil
// field was absent from the payload, which lets updates stay partial.
type PostPayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CommentPayload is a decoded create/update request body for a comment.
type CommentPayload struct {
	Content *string `json:"content"`
	Author  *string `json:"author"`
}
