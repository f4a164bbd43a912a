package models

import "time"

// Categories and difficulties accepted by the backend.
var (
	Categories   = []string{"Tech", "Business", "Science", "Arts", "Other"}
	Difficulties = []string{"Easy", "Medium", "Hard"}
)

type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"post_title"`
	Description string     `json:"post_description"`
	Category    string     `json:"post_category"`
	Difficulty  string     `json:"post_difficulty"`
	UserID      int        `json:"user_id"`
	CreatedAt   *time.Time `json:"post_created_at,omitempty"`
	UpdatedAt   *time.Time `json:"post_updated_at,omitempty"`
}

type CreatePostRequest struct {
	Title       string `json:"post_title" binding:"required"`
	Description string `json:"post_description" binding:"required"`
	Category    string `json:"post_category" binding:"required"`
	Difficulty  string `json:"post_difficulty" binding:"required"`
	UserID      int    `json:"user_id" binding:"required"`
}
