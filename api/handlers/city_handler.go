package handlers

import (
	"net/http"
	"strconv"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CityHandler handles city-related requests
type CityHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewCityHandler creates a new CityHandler instance
func NewCityHandler(svc service.Service, log *logrus.Logger) *CityHandler {
	return &CityHandler{
		service: svc,
		log:     log,
	}
}

// CreateCity handles city creation
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid city payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid city payload"})
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "City")
		return
	}

	c.JSON(http.StatusCreated, city)
}

// GetCity handles city retrieval by id
func (h *CityHandler) GetCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	city, err := h.service.GetCity(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "City")
		return
	}

	c.JSON(http.StatusOK, city)
}

// GetCityByIbgeCode handles city retrieval by IBGE code
func (h *CityHandler) GetCityByIbgeCode(c *gin.Context) {
	code, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IBGE code"})
		return
	}

	city, err := h.service.GetCityByIbgeCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.log, err, "City")
		return
	}

	c.JSON(http.StatusOK, city)
}

// ListCities handles listing all cities
func (h *CityHandler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Cities")
		return
	}

	c.JSON(http.StatusOK, cities)
}

// UpdateCity handles full replacement of a city
func (h *CityHandler) UpdateCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var city models.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid city payload"})
		return
	}
	city.ID = id

	updated, err := h.service.UpdateCity(c.Request.Context(), &city)
	if err != nil {
		respondError(c, h.log, err, "City")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCity handles city removal, returning the deleted snapshot
func (h *CityHandler) DeleteCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	city, err := h.service.DeleteCity(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "City")
		return
	}

	c.JSON(http.StatusOK, city)
}
