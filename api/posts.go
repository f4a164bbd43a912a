package api

import (
	"context"
	"fmt"
	"net/http"

	"prodea_gateway/models"
)

func (c *Client) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.get(ctx, "/posts/get_posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPostByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/get_post_by_id?id=%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost wraps the single post in a slice; the backend only exposes a
// batch create endpoint for posts.
func (c *Client) CreatePost(ctx context.Context, post models.CreatePostRequest) error {
	return c.CreatePosts(ctx, []models.CreatePostRequest{post})
}

func (c *Client) CreatePosts(ctx context.Context, posts []models.CreatePostRequest) error {
	return c.send(ctx, http.MethodPost, "/posts/create_multiple_posts", posts, nil)
}

func (c *Client) UpdatePost(ctx context.Context, id int, post models.CreatePostRequest) (*models.Post, error) {
	var updated models.Post
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/posts/update_post_by_id?id=%d", id), post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/delete_post_by_id?id=%d", id), nil, "", nil)
}

// LikePost and DislikePost are GETs with mutating side effects, kept
// bit-compatible with the backend. Each call moves the server-side rating
// by one; there is no idempotency key.
func (c *Client) LikePost(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/posts/like_post/%d", id), nil)
}

func (c *Client) DislikePost(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/posts/dislike_post/%d", id), nil)
}
