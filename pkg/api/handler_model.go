package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/pkg/models"
)

// CreateModel handles POST /api/v1/models. The definition is parsed and
// validated by the service before it is stored.
func (s *Server) CreateModel(c *gin.Context) {
	var req models.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := s.models.Create(c.Request.Context(), &req)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GetModel handles GET /api/v1/models/:id.
func (s *Server) GetModel(c *gin.Context) {
	rec, _, err := s.models.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListModels handles GET /api/v1/models?organisation_id=...
func (s *Server) ListModels(c *gin.Context) {
	orgID := c.Query("organisation_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organisation_id is required"})
		return
	}
	recs, err := s.models.List(c.Request.Context(), orgID)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": recs})
}

type updateModelRequest struct {
	Definition string   `json:"definition"`
	Tags       []string `json:"tags,omitempty"`
}

// UpdateModel handles PUT /api/v1/models/:id.
func (s *Server) UpdateModel(c *gin.Context) {
	var req updateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := s.models.Update(c.Request.Context(), c.Param("id"), req.Definition, req.Tags)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteModel handles DELETE /api/v1/models/:id.
func (s *Server) DeleteModel(c *gin.Context) {
	if err := s.models.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
