package handler

import (
	"net/http"

	"github.com/clothyvs/dashboard-backend/internal/pagemeta"
	"github.com/clothyvs/dashboard-backend/internal/response"
	"github.com/clothyvs/dashboard-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// PageMetaQuery is the query string accepted by the page metadata endpoints.
// Every title/description pair renders; there are no length limits.
type PageMetaQuery struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// PageMetaHandler serves document head metadata for dashboard pages.
type PageMetaHandler struct{}

// NewPageMetaHandler creates a new PageMetaHandler.
func NewPageMetaHandler() *PageMetaHandler {
	return &PageMetaHandler{}
}

// Get godoc
// GET /api/v1/page-meta?title=&description=
func (h *PageMetaHandler) Get(c *gin.Context) {
	var q PageMetaQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, pagemeta.Render(q.Title, q.Description))
}

// Head godoc
// GET /api/v1/page-meta/head?title=&description=
func (h *PageMetaHandler) Head(c *gin.Context) {
	var q PageMetaQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.HTML(c, http.StatusOK, string(pagemeta.Render(q.Title, q.Description).Head()))
}
