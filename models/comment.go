package models

import "time"

type Comment struct {
	ID         int        `json:"id"`
	Text       string     `json:"comment_text"`
	Rating     int        `json:"comment_rating"`
	PostID     int        `json:"post_id"`
	UserID     int        `json:"user_id"`
	SolutionID int        `json:"solution_id"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type CreateCommentRequest struct {
	Text       string `json:"comment_text" binding:"required"`
	PostID     int    `json:"post_id" binding:"required"`
	SolutionID int    `json:"solution_id" binding:"required"`
	UserID     int    `json:"user_id" binding:"required"`
	Rating     int    `json:"comment_rating"`
}
