package v1

import (
	"net/http"

	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionUC domain.SuggestionUsecase
}

func NewSuggestionHandler(scoped *gin.RouterGroup, suggestionUC domain.SuggestionUsecase) {
	handler := &SuggestionHandler{suggestionUC: suggestionUC}

	scoped.POST("/summary", handler.Summary)
	scoped.POST("/experience/:id", handler.Experience)
}

// Summary godoc
// @Summary      Suggest a profile summary
// @Description  Writes a generated summary into personal info. Without a text generator a canned suggestion is used.
// @Tags         suggestions
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Failure      429  {object}  response.Response
// @Router       /workspace/suggestions/summary [post]
func (h *SuggestionHandler) Summary(c *gin.Context) {
	doc, err := h.suggestionUC.SuggestSummary(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Summary suggested", doc)
}

// Experience godoc
// @Summary      Suggest an experience description
// @Tags         suggestions
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Param        id              path      int     true  "Experience entry id"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Failure      404  {object}  response.Response
// @Router       /workspace/suggestions/experience/{id} [post]
func (h *SuggestionHandler) Experience(c *gin.Context) {
	id, ok := entryIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := h.suggestionUC.SuggestExperience(c.Request.Context(), middleware.WorkspaceID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Description suggested", doc)
}
