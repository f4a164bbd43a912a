package models

import "time"

type Solution struct {
	ID        int        `json:"id"`
	Text      string     `json:"solution_text"`
	Rating    int        `json:"solution_rating"`
	PostID    int        `json:"post_id"`
	UserID    int        `json:"user_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type CreateSolutionRequest struct {
	Text   string `json:"solution_text" binding:"required"`
	PostID int    `json:"post_id" binding:"required"`
	UserID int    `json:"user_id" binding:"required"`
	Rating int    `json:"solution_rating"`
}
