package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/pkg/models"
)

// CreateConnector handles POST /api/v1/connectors.
func (s *Server) CreateConnector(c *gin.Context) {
	var req models.CreateConnectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := s.connectors.Create(c.Request.Context(), &req)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GetConnector handles GET /api/v1/connectors/:id.
func (s *Server) GetConnector(c *gin.Context) {
	rec, err := s.connectors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListConnectors handles GET /api/v1/connectors?organisation_id=...
func (s *Server) ListConnectors(c *gin.Context) {
	orgID := c.Query("organisation_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organisation_id is required"})
		return
	}
	recs, err := s.connectors.List(c.Request.Context(), orgID)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"connectors": recs})
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetConnectorEnabled handles POST /api/v1/connectors/:id/enabled.
func (s *Server) SetConnectorEnabled(c *gin.Context) {
	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.connectors.SetEnabled(c.Request.Context(), c.Param("id"), *req.Enabled); err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"connector_id": c.Param("id"), "enabled": *req.Enabled})
}
