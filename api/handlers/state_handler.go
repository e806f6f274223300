package handlers

import (
	"net/http"
	"strconv"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StateHandler handles state-related requests
type StateHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewStateHandler creates a new StateHandler instance
func NewStateHandler(svc service.Service, log *logrus.Logger) *StateHandler {
	return &StateHandler{
		service: svc,
		log:     log,
	}
}

// CreateState handles state creation
func (h *StateHandler) CreateState(c *gin.Context) {
	var req models.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid state payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state payload"})
		return
	}

	state, err := h.service.CreateState(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "State")
		return
	}

	c.JSON(http.StatusCreated, state)
}

// GetState handles state retrieval by id
func (h *StateHandler) GetState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	state, err := h.service.GetState(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "State")
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetStateByIbgeCode handles state retrieval by IBGE code
func (h *StateHandler) GetStateByIbgeCode(c *gin.Context) {
	code, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IBGE code"})
		return
	}

	state, err := h.service.GetStateByIbgeCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.log, err, "State")
		return
	}

	c.JSON(http.StatusOK, state)
}

// ListStates handles listing all states
func (h *StateHandler) ListStates(c *gin.Context) {
	states, err := h.service.ListStates(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "States")
		return
	}

	c.JSON(http.StatusOK, states)
}

// UpdateState handles full replacement of a state
func (h *StateHandler) UpdateState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var state models.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state payload"})
		return
	}
	state.ID = id

	updated, err := h.service.UpdateState(c.Request.Context(), &state)
	if err != nil {
		respondError(c, h.log, err, "State")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteState handles state removal, returning the deleted snapshot
func (h *StateHandler) DeleteState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	state, err := h.service.DeleteState(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "State")
		return
	}

	c.JSON(http.StatusOK, state)
}
