package api

import (
	"net/http"

	"github.com/Domenick1991/airseats/internal/service/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service report.ReportUseCase
}

func NewReportHandler(service report.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/occupancy", h.occupancy)
}

func (h *ReportHandler) occupancy(c *gin.Context) {
	rep, err := h.service.Occupancy(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
