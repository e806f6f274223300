package handlers

import (
	"net/http"
	"strconv"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler handles user-related requests
type UserHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(svc service.Service, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		log:     log,
	}
}

// CreateUser handles user registration
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid user payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "User")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles user retrieval by id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "User")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserByCognitoID handles user retrieval by identity-provider subject id
func (h *UserHandler) GetUserByCognitoID(c *gin.Context) {
	cognitoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cognito id"})
		return
	}

	user, err := h.service.GetUserByCognitoID(c.Request.Context(), cognitoID)
	if err != nil {
		respondError(c, h.log, err, "User")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles listing all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles full replacement of a user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}
	user.ID = id

	updated, err := h.service.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		respondError(c, h.log, err, "User")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles user removal, returning the deleted snapshot
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "User")
		return
	}

	c.JSON(http.StatusOK, user)
}
