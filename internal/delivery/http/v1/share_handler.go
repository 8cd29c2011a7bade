package v1

import (
	"net/http"

	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	shareUC domain.ShareUsecase
}

func NewShareHandler(public, scoped *gin.RouterGroup, shareUC domain.ShareUsecase, uploadLimit gin.HandlerFunc) {
	handler := &ShareHandler{shareUC: shareUC}

	public.GET("/shares/:id", handler.Open)
	scoped.POST("/share", uploadLimit, handler.Publish)
}

// Publish godoc
// @Summary      Share the CV
// @Description  Stores a snapshot of the current preview, without the photo, and returns its public link.
// @Tags         share
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      201  {object}  response.Response{data=domain.Share}
// @Failure      503  {object}  response.Response
// @Router       /workspace/share [post]
func (h *ShareHandler) Publish(c *gin.Context) {
	share, err := h.shareUC.Publish(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Share link created", share)
}

// Open godoc
// @Summary      Shared CV
// @Tags         share
// @Produce      html
// @Param        id  path  string  true  "Share id"
// @Success      200  {string}  string  "HTML page"
// @Failure      404  {object}  response.Response
// @Router       /shares/{id} [get]
func (h *ShareHandler) Open(c *gin.Context) {
	page, err := h.shareUC.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	defer page.Close()

	c.Header("Cache-Control", "public, max-age=300")
	c.DataFromReader(http.StatusOK, -1, "text/html; charset=utf-8", page, nil)
}
