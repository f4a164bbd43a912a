package api

import (
	"context"
	"fmt"
	"net/http"

	"prodea_gateway/models"
)

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/users/get_users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/get_user_by_id?id=%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user models.CreateUserRequest) (*models.User, error) {
	var created models.User
	if err := c.send(ctx, http.MethodPost, "/users/create_user", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateUsers(ctx context.Context, users []models.CreateUserRequest) ([]models.User, error) {
	var created []models.User
	if err := c.send(ctx, http.MethodPost, "/users/create_multiple_users", users, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, user models.UpdateUserRequest) (*models.User, error) {
	var updated models.User
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/users/update_user_by_id?id=%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/delete_user_by_id?id=%d", id), nil, "", nil)
}
