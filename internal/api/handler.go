package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Anuj3937/DisasterResponse/internal/models"
	"github.com/Anuj3937/DisasterResponse/internal/repository"
)

type Handler struct {
	store repository.Store
}

func NewHandler(store repository.Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	api := r.Group("/api")
	api.GET("/disasters", h.listDisasters)
	api.GET("/disasters/:id", h.getDisaster)
	api.POST("/disasters", h.createDisaster)

	api.GET("/news", h.listNews)
	api.GET("/news/:id", h.getNewsItem)
	api.POST("/news", h.createNewsItem)

	api.POST("/volunteers", h.createVolunteer)

	api.POST("/help-requests", h.createHelpRequest)
	api.PATCH("/help-requests/:id/status", h.updateHelpRequestStatus)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathID parses the :id segment. A non-numeric id is a client error, not
// a missing record.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) listDisasters(c *gin.Context) {
	disasters, err := h.store.ListDisasters(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch disasters"})
		return
	}
	c.JSON(http.StatusOK, disasters)
}

func (h *Handler) getDisaster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	disaster, err := h.store.GetDisaster(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Disaster not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch disaster"})
		return
	}
	c.JSON(http.StatusOK, disaster)
}

func (h *Handler) createDisaster(c *gin.Context) {
	var in models.InsertDisaster
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}
	disaster, err := h.store.CreateDisaster(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create disaster"})
		return
	}
	c.JSON(http.StatusCreated, disaster)
}

func (h *Handler) listNews(c *gin.Context) {
	news, err := h.store.ListNews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) getNewsItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.store.GetNewsItem(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "News item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch news item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createNewsItem(c *gin.Context) {
	var in models.InsertNews
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}
	item, err := h.store.CreateNewsItem(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create news item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) createVolunteer(c *gin.Context) {
	var in models.InsertVolunteer
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}
	volunteer, err := h.store.CreateVolunteer(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register volunteer"})
		return
	}
	c.JSON(http.StatusCreated, volunteer)
}

func (h *Handler) createHelpRequest(c *gin.Context) {
	var in models.InsertHelpRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}
	request, err := h.store.CreateHelpRequest(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit help request"})
		return
	}
	c.JSON(http.StatusCreated, request)
}

type updateStatusRequest struct {
	Status models.HelpStatus `json:"status" binding:"required,oneof=pending assigned resolved"`
}

func (h *Handler) updateHelpRequestStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	request, err := h.store.UpdateHelpRequestStatus(c.Request.Context(), id, body.Status)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Help request not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update help request status"})
		return
	}
	c.JSON(http.StatusOK, request)
}
