package v1

import (
	"net/http"

	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports each configured dependency. Any failing dependency turns the status into 503.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.healthUC.Check(c.Request.Context())
	if report["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "Degraded", report)
		return
	}
	response.Success(c, http.StatusOK, "System operational", report)
}
