package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-tracker/internal/usecase/verification"
	"asset-tracker/pkg/utils"
)

type VerificationHandler struct {
	service *verification.Service
}

func NewVerificationHandler(service *verification.Service) *VerificationHandler {
	return &VerificationHandler{service: service}
}

func (h *VerificationHandler) RegisterStaffRoutes(router *gin.RouterGroup) {
	router.POST("/assets/verify", h.VerifyAsset)
	router.POST("/assets/verifications", h.LogVerification)
	router.POST("/complaints", h.ReportIssue)
}

func (h *VerificationHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.PATCH("/complaints/:id/resolve", h.ResolveComplaint)
}

// VerifyAsset is the strong path: it also advances the asset's
// last_verified_at.
func (h *VerificationHandler) VerifyAsset(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req verification.VerifyAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.VerifyAsset(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Asset verified successfully", result)
}

// LogVerification appends to the ledger without touching the asset.
func (h *VerificationHandler) LogVerification(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req verification.LogVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.LogVerification(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Verification recorded", result)
}

func (h *VerificationHandler) ReportIssue(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req verification.ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ReportIssue(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Issue reported successfully", result)
}

func (h *VerificationHandler) ResolveComplaint(c *gin.Context) {
	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	result, err := h.service.ResolveComplaint(c.Request.Context(), complaintID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint resolved", result)
}
