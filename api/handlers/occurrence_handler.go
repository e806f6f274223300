package handlers

import (
	"net/http"
	"strconv"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OccurrenceHandler handles occurrence-related requests
type OccurrenceHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewOccurrenceHandler creates a new OccurrenceHandler instance
func NewOccurrenceHandler(svc service.Service, log *logrus.Logger) *OccurrenceHandler {
	return &OccurrenceHandler{
		service: svc,
		log:     log,
	}
}

// CreateOccurrence handles occurrence reporting
func (h *OccurrenceHandler) CreateOccurrence(c *gin.Context) {
	var req models.CreateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid occurrence payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid occurrence payload"})
		return
	}

	occurrence, err := h.service.CreateOccurrence(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Occurrence")
		return
	}

	c.JSON(http.StatusCreated, occurrence)
}

// GetOccurrence handles occurrence retrieval by id
func (h *OccurrenceHandler) GetOccurrence(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	occurrence, err := h.service.GetOccurrence(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Occurrence")
		return
	}

	c.JSON(http.StatusOK, occurrence)
}

// ListOccurrences handles listing occurrences. The two filter
// dimensions are exclusive: ?active=… or ?user_id=…, never both.
func (h *OccurrenceHandler) ListOccurrences(c *gin.Context) {
	activeParam, hasActive := c.GetQuery("active")
	userParam, hasUser := c.GetQuery("user_id")

	if hasActive && hasUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filter by active or user_id, not both"})
		return
	}

	var (
		occurrences []*models.Occurrence
		err         error
	)
	switch {
	case hasActive:
		active, parseErr := strconv.ParseBool(activeParam)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active filter"})
			return
		}
		occurrences, err = h.service.ListOccurrencesByActive(c.Request.Context(), active)
	case hasUser:
		userID, parseErr := strconv.ParseUint(userParam, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id filter"})
			return
		}
		occurrences, err = h.service.ListOccurrencesByUser(c.Request.Context(), uint(userID))
	default:
		occurrences, err = h.service.ListOccurrences(c.Request.Context())
	}

	if err != nil {
		respondError(c, h.log, err, "Occurrences")
		return
	}

	c.JSON(http.StatusOK, occurrences)
}

// UpdateOccurrence handles full replacement of an occurrence
func (h *OccurrenceHandler) UpdateOccurrence(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var occurrence models.Occurrence
	if err := c.ShouldBindJSON(&occurrence); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid occurrence payload"})
		return
	}
	occurrence.ID = id

	updated, err := h.service.UpdateOccurrence(c.Request.Context(), &occurrence)
	if err != nil {
		respondError(c, h.log, err, "Occurrence")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteOccurrence handles removal, returning the deleted snapshot
func (h *OccurrenceHandler) DeleteOccurrence(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	occurrence, err := h.service.DeleteOccurrence(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Occurrence")
		return
	}

	c.JSON(http.StatusOK, occurrence)
}
