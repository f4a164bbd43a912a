package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prodea_gateway/api"
	"prodea_gateway/models"
)

// UserHandler backs the user management view. Mutations return the
// re-listed users so the caller always renders the backend's view of the
// world, never a locally patched one.
type UserHandler struct {
	client *api.Client
}

func NewUserHandler(client *api.Client) *UserHandler {
	return &UserHandler{client: client}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.client.GetUsers(c.Request.Context())
	if err != nil {
		upstreamError(c, "Failed to fetch users", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.client.GetUserByID(c.Request.Context(), id)
	if err != nil {
		upstreamError(c, "Failed to fetch user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.client.CreateUser(c.Request.Context(), req); err != nil {
		upstreamError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"users":   h.relist(c),
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.client.UpdateUser(c.Request.Context(), id, req); err != nil {
		upstreamError(c, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"users":   h.relist(c),
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DeleteUser(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to delete user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"users":   h.relist(c),
	})
}

// relist fetches the user list again after a mutation. It always
// returns a non-nil slice so the response shape matches GetUsers.
func (h *UserHandler) relist(c *gin.Context) []models.User {
	users, err := h.client.GetUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error re-listing users: %v", err)
		return []models.User{}
	}
	if users == nil {
		users = []models.User{}
	}
	return users
}
