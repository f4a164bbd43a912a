package handlers

import (
	"errors"
	"log"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"prodea_gateway/api"
	"prodea_gateway/board"
	"prodea_gateway/middleware"
	"prodea_gateway/models"
)

// BoardHandler serves the aggregated problems & solutions view. Every
// mutation goes straight to the backend and is followed by a full
// re-fetch of all three lists; the handler never patches local state
// from a mutation response.
type BoardHandler struct {
	client *api.Client
	boards *board.Manager
}

func NewBoardHandler(client *api.Client, boards *board.Manager) *BoardHandler {
	return &BoardHandler{client: client, boards: boards}
}

func (h *BoardHandler) state(c *gin.Context) *board.State {
	return h.boards.Get(middleware.SessionID(c))
}

// GetBoard returns the three-level tree with expand flags and the
// client-side post ratings. Stale data plus an error string is a valid
// response: a failed refresh never wipes what was displayed before.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	state := h.state(c)

	var err error
	if c.Query("refresh") == "1" {
		err = state.Refresh(c.Request.Context())
	} else {
		err = state.EnsureLoaded(c.Request.Context())
	}
	if err != nil {
		log.Printf("Error refreshing board: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":   state.Tree(),
		"loading": state.Loading(),
		"error":   state.LastError(),
	})
}

func (h *BoardHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validatePostEnums(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.client.CreatePost(c.Request.Context(), req); err != nil {
		upstreamError(c, "Failed to create post", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully"})
}

func (h *BoardHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validatePostEnums(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := h.client.UpdatePost(c.Request.Context(), id, req); err != nil {
		upstreamError(c, "Failed to update post", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

func (h *BoardHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DeletePost(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to delete post", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// LikePost bumps the display-only counter immediately; the upstream call
// result does not roll it back. Posts have no server-held rating, so no
// refresh follows.
func (h *BoardHandler) LikePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rating := h.state(c).LikePostLocal(id)
	resp := gin.H{"post_id": id, "rating": rating}
	if err := h.client.LikePost(c.Request.Context(), id); err != nil {
		log.Printf("Error liking post %d: %v", id, err)
		resp["error"] = "Failed to like post: " + err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BoardHandler) DislikePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rating := h.state(c).DislikePostLocal(id)
	resp := gin.H{"post_id": id, "rating": rating}
	if err := h.client.DislikePost(c.Request.Context(), id); err != nil {
		log.Printf("Error disliking post %d: %v", id, err)
		resp["error"] = "Failed to dislike post: " + err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BoardHandler) TogglePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": id, "expanded": h.state(c).TogglePost(id)})
}

func (h *BoardHandler) CreateSolution(c *gin.Context) {
	var req models.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.CreateSolution(c.Request.Context(), req); err != nil {
		upstreamError(c, "Failed to create solution", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusCreated, gin.H{"message": "Solution created successfully"})
}

func (h *BoardHandler) UpdateSolution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.client.UpdateSolution(c.Request.Context(), id, req); err != nil {
		upstreamError(c, "Failed to update solution", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Solution updated successfully"})
}

func (h *BoardHandler) DeleteSolution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DeleteSolution(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to delete solution", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Solution deleted successfully"})
}

// Solutions carry a real server-side rating, so like/dislike re-fetches
// everything instead of keeping a local counter.
func (h *BoardHandler) LikeSolution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.LikeSolution(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to like solution", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Solution liked successfully", "solution_id": id})
}

func (h *BoardHandler) DislikeSolution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DislikeSolution(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to dislike solution", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Solution disliked successfully", "solution_id": id})
}

func (h *BoardHandler) ToggleSolution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution_id": id, "expanded": h.state(c).ToggleSolution(id)})
}

func (h *BoardHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.CreateComment(c.Request.Context(), req); err != nil {
		upstreamError(c, "Failed to create comment", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully"})
}

func (h *BoardHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.client.UpdateComment(c.Request.Context(), id, req); err != nil {
		upstreamError(c, "Failed to update comment", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

func (h *BoardHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DeleteComment(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to delete comment", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *BoardHandler) LikeComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.LikeComment(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to like comment", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Comment liked successfully", "comment_id": id})
}

func (h *BoardHandler) DislikeComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.client.DislikeComment(c.Request.Context(), id); err != nil {
		upstreamError(c, "Failed to dislike comment", err)
		return
	}

	h.refresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Comment disliked successfully", "comment_id": id})
}

// refresh runs the all-or-nothing re-fetch after a successful mutation.
// A failed refresh leaves the previous lists in place; the error string
// shows up in the next board view.
func (h *BoardHandler) refresh(c *gin.Context) {
	if err := h.state(c).Refresh(c.Request.Context()); err != nil {
		log.Printf("Error refreshing board after mutation: %v", err)
	}
}

// validatePostEnums enforces the category and difficulty choices the
// form offered; the backend itself accepts any string.
func validatePostEnums(req models.CreatePostRequest) string {
	if !slices.Contains(models.Categories, req.Category) {
		return "Invalid category: " + req.Category
	}
	if !slices.Contains(models.Difficulties, req.Difficulty) {
		return "Invalid difficulty: " + req.Difficulty
	}
	return ""
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// upstreamError maps a backend failure onto the gateway response: the
// backend's own status and detail when it answered, 502 when it did not.
func upstreamError(c *gin.Context, prefix string, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": prefix + ": " + apiErr.Detail})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": prefix + ": " + err.Error()})
}
