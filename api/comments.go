package api

import (
	"context"
	"fmt"
	"net/http"

	"prodea_gateway/models"
)

func (c *Client) GetComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.get(ctx, "/comments/get_comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) GetCommentByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	if err := c.get(ctx, fmt.Sprintf("/comments/get_comment_by_id?id=%d", id), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) CreateComment(ctx context.Context, comment models.CreateCommentRequest) error {
	return c.CreateComments(ctx, []models.CreateCommentRequest{comment})
}

func (c *Client) CreateComments(ctx context.Context, comments []models.CreateCommentRequest) error {
	return c.send(ctx, http.MethodPost, "/comments/create_multiple_comments", comments, nil)
}

func (c *Client) UpdateComment(ctx context.Context, id int, comment models.CreateCommentRequest) (*models.Comment, error) {
	var updated models.Comment
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/comments/update_comment_by_id?id=%d", id), comment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/delete_comment_by_id?id=%d", id), nil, "", nil)
}

func (c *Client) LikeComment(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/comments/like_comment/%d", id), nil)
}

func (c *Client) DislikeComment(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/comments/dislike_comment/%d", id), nil)
}
