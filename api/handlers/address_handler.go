package handlers

import (
	"net/http"

	"github.com/ATClus/psa-api-sub000/internal/models"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AddressHandler handles address-related requests
type AddressHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewAddressHandler creates a new AddressHandler instance
func NewAddressHandler(svc service.Service, log *logrus.Logger) *AddressHandler {
	return &AddressHandler{
		service: svc,
		log:     log,
	}
}

// CreateAddress handles address creation
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req models.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid address payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address payload"})
		return
	}

	address, err := h.service.CreateAddress(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusCreated, address)
}

// GetAddress handles address retrieval by id
func (h *AddressHandler) GetAddress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	address, err := h.service.GetAddress(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusOK, address)
}

// ListAddresses handles listing all addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.service.ListAddresses(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Addresses")
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// UpdateAddress handles full replacement of an address
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address payload"})
		return
	}
	address.ID = id

	updated, err := h.service.UpdateAddress(c.Request.Context(), &address)
	if err != nil {
		respondError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAddress handles address removal, returning the deleted snapshot
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	address, err := h.service.DeleteAddress(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusOK, address)
}
