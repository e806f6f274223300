package handlers

import (
	"net/http"
	"strconv"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PoliceDepartmentHandler handles police-department-related requests
type PoliceDepartmentHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewPoliceDepartmentHandler creates a new PoliceDepartmentHandler instance
func NewPoliceDepartmentHandler(svc service.Service, log *logrus.Logger) *PoliceDepartmentHandler {
	return &PoliceDepartmentHandler{
		service: svc,
		log:     log,
	}
}

// CreatePoliceDepartment handles police department creation
func (h *PoliceDepartmentHandler) CreatePoliceDepartment(c *gin.Context) {
	var req models.CreatePoliceDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid police department payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid police department payload"})
		return
	}

	department, err := h.service.CreatePoliceDepartment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Police department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetPoliceDepartment handles police department retrieval by id
func (h *PoliceDepartmentHandler) GetPoliceDepartment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	department, err := h.service.GetPoliceDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Police department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// GetPoliceDepartmentByOverpassID handles retrieval by Overpass id
func (h *PoliceDepartmentHandler) GetPoliceDepartmentByOverpassID(c *gin.Context) {
	overpassID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid overpass id"})
		return
	}

	department, err := h.service.GetPoliceDepartmentByOverpassID(c.Request.Context(), overpassID)
	if err != nil {
		respondError(c, h.log, err, "Police department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListPoliceDepartments handles listing all police departments
func (h *PoliceDepartmentHandler) ListPoliceDepartments(c *gin.Context) {
	departments, err := h.service.ListPoliceDepartments(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Police departments")
		return
	}

	c.JSON(http.StatusOK, departments)
}

// UpdatePoliceDepartment handles full replacement of a police department
func (h *PoliceDepartmentHandler) UpdatePoliceDepartment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var department models.PoliceDepartment
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid police department payload"})
		return
	}
	department.ID = id

	updated, err := h.service.UpdatePoliceDepartment(c.Request.Context(), &department)
	if err != nil {
		respondError(c, h.log, err, "Police department")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePoliceDepartment handles removal, returning the deleted snapshot
func (h *PoliceDepartmentHandler) DeletePoliceDepartment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	department, err := h.service.DeletePoliceDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Police department")
		return
	}

	c.JSON(http.StatusOK, department)
}
