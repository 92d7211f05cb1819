package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"optiqa/internal/models/request_models"
	"optiqa/internal/services"
	"optiqa/pkg/utils"
)

type WizardController struct {
	wizardService  services.WizardServiceInterface
	insightService services.InsightServiceInterface
	exportService  services.ExportServiceInterface
}

func NewWizardController(
	wizardService services.WizardServiceInterface,
	insightService services.InsightServiceInterface,
	exportService services.ExportServiceInterface,
) *WizardController {
	return &WizardController{
		wizardService:  wizardService,
		insightService: insightService,
		exportService:  exportService,
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

func (w *WizardController) StartWizardHandler(c *gin.Context) {
	resp, err := w.wizardService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Wizard session started")
}

func (w *WizardController) GetStateHandler(c *gin.Context) {
	state, err := w.wizardService.GetState(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (w *WizardController) SubmitAnswerHandler(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	state, err := w.wizardService.SubmitAnswer(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Answer stored")
}

func (w *WizardController) AdvanceHandler(c *gin.Context) {
	state, err := w.wizardService.Advance(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (w *WizardController) RetreatHandler(c *gin.Context) {
	state, err := w.wizardService.Retreat(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (w *WizardController) GetInsightsHandler(c *gin.Context) {
	status, err := w.insightService.Status(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, status, "")
}

func (w *WizardController) GetReportHandler(c *gin.Context) {
	report, err := w.exportService.BuildReport(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Report ready")
}
