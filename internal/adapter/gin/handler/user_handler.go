package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/usecase/user"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserRequest represents the HTTP request body for create and update.
// The id field is accepted but ignored; ids only ever come from the store
// or the request path. No field is validated beyond JSON type coercion.
type UserRequest struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse represents a single user in HTTP responses
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser handles POST /api/users. On success it responds with the full
// current user list, status 200.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create user body", zap.Error(err))
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(users))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(users))
}

// UpdateUser handles PUT /api/users/:id. The id in the path wins over any id
// in the body. On success it responds with the full current user list,
// status 200 — even when no row matched the id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update user body", zap.Error(err))
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(users))
}

// DeleteUser handles DELETE /api/users/:id. Responds 204 with an empty body,
// also when no row matched the id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.handleStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter. A non-integer id answers 400.
func (h *UserHandler) pathID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid user id in path", zap.String("id", idStr), zap.Error(err))
		c.String(http.StatusBadRequest, "user id must be an integer")
		return 0, false
	}
	return id, true
}

// handleStoreError surfaces a store failure as HTTP 500 with the error's
// textual description as a plain-text body. The connection is left alone;
// the next request may well succeed.
func (h *UserHandler) handleStoreError(c *gin.Context, err error) {
	h.log.Error("store operation failed", zap.Error(err))
	c.String(http.StatusInternalServerError, err.Error())
}

func toResponses(users []user.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		}
	}
	return resp
}
