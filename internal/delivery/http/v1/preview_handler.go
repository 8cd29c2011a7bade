package v1

import (
	"io"
	"net/http"

	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/imaging"

	"github.com/gin-gonic/gin"
)

type PreviewHandler struct {
	previewUC domain.PreviewUsecase
}

func NewPreviewHandler(public, scoped *gin.RouterGroup, previewUC domain.PreviewUsecase, uploadLimit gin.HandlerFunc) {
	handler := &PreviewHandler{previewUC: previewUC}

	public.GET("/catalog", handler.Catalog)

	scoped.GET("/preview", handler.Render)
	scoped.GET("/preview/options", handler.Options)
	scoped.PUT("/preview/options", handler.SetOptions)
	scoped.POST("/preview/photo", uploadLimit, handler.UploadPhoto)
	scoped.DELETE("/preview/photo", handler.ClearPhoto)
}

// Catalog godoc
// @Summary      Option catalog
// @Description  Themes, fonts, levels and the quick-add lists the builder offers.
// @Tags         preview
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Catalog}
// @Router       /catalog [get]
func (h *PreviewHandler) Catalog(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalog", domain.DefaultCatalog())
}

// Render godoc
// @Summary      Live preview
// @Description  The current document rendered as a styled HTML page.
// @Tags         preview
// @Produce      html
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {string}  string  "HTML page"
// @Failure      404  {object}  response.Response
// @Router       /workspace/preview [get]
func (h *PreviewHandler) Render(c *gin.Context) {
	page, err := h.previewUC.Render(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.HTML(c, http.StatusOK, page)
}

// Options godoc
// @Summary      Preview options
// @Tags         preview
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.Customization}
// @Router       /workspace/preview/options [get]
func (h *PreviewHandler) Options(c *gin.Context) {
	opts, err := h.previewUC.Options(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Preview options", opts.Customization)
}

// SetOptions godoc
// @Summary      Change preview options
// @Description  Unset fields keep their defaults. Font size must be between 10 and 20.
// @Tags         preview
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                true  "Workspace id"
// @Param        body            body      domain.Customization  true  "Options"
// @Success      200  {object}  response.Response{data=domain.Customization}
// @Failure      400  {object}  response.Response
// @Router       /workspace/preview/options [put]
func (h *PreviewHandler) SetOptions(c *gin.Context) {
	var req domain.Customization
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid preview options"))
		return
	}
	opts, err := h.previewUC.SetOptions(c.Request.Context(), middleware.WorkspaceID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Preview options updated", opts.Customization)
}

// UploadPhoto godoc
// @Summary      Upload profile photo
// @Description  JPEG, PNG, GIF or WebP up to 5 MB. The photo is resized and kept in the workspace only; it is never saved.
// @Tags         preview
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Param        file            formData  file    true  "Image"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /workspace/preview/photo [post]
func (h *PreviewHandler) UploadPhoto(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("File is required"))
		return
	}
	if header.Size > imaging.MaxUploadBytes {
		c.Error(apperror.BadRequest("Photo must be 5 MB or smaller"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if err := h.previewUC.SetPhoto(c.Request.Context(), middleware.WorkspaceID(c), data); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Photo updated", nil)
}

// ClearPhoto godoc
// @Summary      Remove profile photo
// @Tags         preview
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response
// @Router       /workspace/preview/photo [delete]
func (h *PreviewHandler) ClearPhoto(c *gin.Context) {
	if err := h.previewUC.ClearPhoto(c.Request.Context(), middleware.WorkspaceID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Photo removed", nil)
}
