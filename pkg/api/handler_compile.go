package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/semantic/query"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// compileRequest compiles a structured query against a semantic model. The
// model comes either inline as YAML or by reference to a stored record.
type compileRequest struct {
	ModelID    string          `json:"model_id,omitempty"`
	Definition string          `json:"definition,omitempty"`
	Dialect    string          `json:"dialect,omitempty"`
	Query      json.RawMessage `json:"query" binding:"required"`
}

type compileResponse struct {
	SQL       string   `json:"sql"`
	Dialect   string   `json:"dialect"`
	BaseTable string   `json:"base_table"`
	Aliases   []string `json:"aliases"`
}

// Compile handles POST /api/v1/compile: synchronous AST-to-SQL translation
// with no execution.
func (s *Server) Compile(c *gin.Context) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, ok := s.compileModel(c, &req)
	if !ok {
		return
	}

	dialect := sqlgen.Canonical
	if req.Dialect != "" {
		dialect = sqlgen.Dialect(req.Dialect)
		if !dialect.Known() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dialect: " + req.Dialect})
			return
		}
	}

	var q query.Query
	if err := json.Unmarshal(req.Query, &q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	translator, err := sqlgen.NewTranslator(model, dialect)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	compiled, err := translator.Translate(&q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, compileResponse{
		SQL:       compiled.SQL,
		Dialect:   string(dialect),
		BaseTable: compiled.BaseTable,
		Aliases:   compiled.Aliases,
	})
}

func (s *Server) compileModel(c *gin.Context, req *compileRequest) (*semantic.Model, bool) {
	switch {
	case req.Definition != "":
		model, err := semantic.ParseModel([]byte(req.Definition))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		return model, true
	case req.ModelID != "":
		_, model, err := s.models.Get(c.Request.Context(), req.ModelID)
		if err != nil {
			s.mapServiceError(c, err)
			return nil, false
		}
		return model, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "model_id or definition is required"})
		return nil, false
	}
}
