package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-tracker/internal/usecase/qr"
	"asset-tracker/pkg/utils"
)

type QrHandler struct {
	service *qr.Service
}

func NewQrHandler(service *qr.Service) *QrHandler {
	return &QrHandler{service: service}
}

func (h *QrHandler) RegisterStaffRoutes(router *gin.RouterGroup) {
	router.POST("/qrcodes/verify", h.VerifyCode)
	router.POST("/assets/register", h.RegisterAsset)
}

func (h *QrHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/qrcodes/generate", h.GenerateCodes)
	router.POST("/assets/:id/regenerate-qr", h.RegenerateCode)
}

func (h *QrHandler) GenerateCodes(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req qr.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.GenerateCodes(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "QR codes generated successfully", result)
}

func (h *QrHandler) VerifyCode(c *gin.Context) {
	var req qr.VerifyQrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.VerifyCode(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "QR code checked", result)
}

func (h *QrHandler) RegisterAsset(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req qr.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RegisterAsset(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Asset registered successfully", result)
}

func (h *QrHandler) RegenerateCode(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	result, err := h.service.RegenerateCode(c.Request.Context(), assetID, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "QR code regenerated successfully", result)
}
