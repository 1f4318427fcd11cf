// api/handlers/page_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/servo-panel/internal/logger"
	"github.com/Annany2002/servo-panel/web"
)

var (
	customLog = logger.NewLogger()
)

const htmlContentType = "text/html; charset=utf-8"

// PageRenderer renders a named template into a complete response body.
type PageRenderer interface {
	Render(name string, data any) ([]byte, error)
}

// PageHandler serves the servo control page.
type PageHandler struct {
	Renderer PageRenderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer PageRenderer) *PageHandler {
	return &PageHandler{Renderer: renderer}
}

// Index renders the servo control page. The template gets no data.
func (h *PageHandler) Index(c *gin.Context) {
	body, err := h.Renderer.Render(web.IndexTemplate, nil)
	if err != nil {
		customLog.Warnf("Index: failed to render %s: %v", web.IndexTemplate, err)
		_ = c.Error(err) // ErrorHandler turns this into a 500
		return
	}

	c.Data(http.StatusOK, htmlContentType, body)
}
