package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
)

type ClientController struct {
	clientService service.ClientService
}

func NewClientController(clientService service.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// parseIDParam reads the :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "আইডি সঠিক নয়")
		return 0, false
	}
	return uint(id), true
}

// List returns all clients, optionally filtered by a search term
// GET /api/v1/clients
func (ctrl *ClientController) List(c *gin.Context) {
	clients, err := ctrl.clientService.List(c.Query("search"))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"total":   len(clients),
	})
}

// Get returns one client
// GET /api/v1/clients/:id
func (ctrl *ClientController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := ctrl.clientService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			apperrors.NotFound(c, apperrors.ClientNotFound, "ক্লায়েন্টটি পাওয়া যায়নি")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// Create adds a new client
// POST /api/v1/clients
func (ctrl *ClientController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.ClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	client, err := ctrl.clientService.Create(req)
	if err != nil {
		log.Error("Failed to create client", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "ক্লায়েন্ট যোগ হয়েছে",
		"client":  client,
	})
}

// Update edits a client
// PUT /api/v1/clients/:id
func (ctrl *ClientController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	client, err := ctrl.clientService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			apperrors.NotFound(c, apperrors.ClientNotFound, "ক্লায়েন্টটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update client")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "ক্লায়েন্ট সংশোধন হয়েছে",
		"client":  client,
	})
}

// Delete removes a client; their documents stay, unlinked
// DELETE /api/v1/clients/:id
func (ctrl *ClientController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.clientService.Delete(id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			apperrors.NotFound(c, apperrors.ClientNotFound, "ক্লায়েন্টটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "ক্লায়েন্ট মুছে ফেলা হয়েছে",
	})
}
