package handlers

import (
	"net/http"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CountryHandler handles country-related requests
type CountryHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewCountryHandler creates a new CountryHandler instance
func NewCountryHandler(svc service.Service, log *logrus.Logger) *CountryHandler {
	return &CountryHandler{
		service: svc,
		log:     log,
	}
}

// CreateCountry handles country creation
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var req models.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid country payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country payload"})
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Country")
		return
	}

	c.JSON(http.StatusCreated, country)
}

// GetCountry handles country retrieval by id
func (h *CountryHandler) GetCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	country, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Country")
		return
	}

	c.JSON(http.StatusOK, country)
}

// GetCountryByIsoCode handles country retrieval by ISO code
func (h *CountryHandler) GetCountryByIsoCode(c *gin.Context) {
	country, err := h.service.GetCountryByIsoCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, h.log, err, "Country")
		return
	}

	c.JSON(http.StatusOK, country)
}

// ListCountries handles listing all countries
func (h *CountryHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Countries")
		return
	}

	c.JSON(http.StatusOK, countries)
}

// UpdateCountry handles full replacement of a country
func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var country models.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country payload"})
		return
	}
	country.ID = id

	updated, err := h.service.UpdateCountry(c.Request.Context(), &country)
	if err != nil {
		respondError(c, h.log, err, "Country")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCountry handles country removal, returning the deleted snapshot
func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	country, err := h.service.DeleteCountry(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Country")
		return
	}

	c.JSON(http.StatusOK, country)
}
