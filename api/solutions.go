package api

import (
	"context"
	"fmt"
	"net/http"

	"prodea_gateway/models"
)

func (c *Client) GetSolutions(ctx context.Context) ([]models.Solution, error) {
	var solutions []models.Solution
	if err := c.get(ctx, "/solutions/get_solutions", &solutions); err != nil {
		return nil, err
	}
	return solutions, nil
}

func (c *Client) GetSolutionByID(ctx context.Context, id int) (*models.Solution, error) {
	var solution models.Solution
	if err := c.get(ctx, fmt.Sprintf("/solutions/get_solution_by_id?id=%d", id), &solution); err != nil {
		return nil, err
	}
	return &solution, nil
}

func (c *Client) CreateSolution(ctx context.Context, solution models.CreateSolutionRequest) error {
	return c.CreateSolutions(ctx, []models.CreateSolutionRequest{solution})
}

func (c *Client) CreateSolutions(ctx context.Context, solutions []models.CreateSolutionRequest) error {
	return c.send(ctx, http.MethodPost, "/solutions/create_multiple_solutions", solutions, nil)
}

func (c *Client) UpdateSolution(ctx context.Context, id int, solution models.CreateSolutionRequest) (*models.Solution, error) {
	var updated models.Solution
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/solutions/update_solution_by_id?id=%d", id), solution, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSolution(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/solutions/delete_solution_by_id?id=%d", id), nil, "", nil)
}

func (c *Client) LikeSolution(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/solutions/like_solution/%d", id), nil)
}

func (c *Client) DislikeSolution(ctx context.Context, id int) error {
	return c.get(ctx, fmt.Sprintf("/solutions/dislike_solution/%d", id), nil)
}
