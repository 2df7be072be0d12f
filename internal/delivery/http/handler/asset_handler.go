package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-tracker/internal/usecase/asset"
	"asset-tracker/pkg/utils"
)

type AssetHandler struct {
	service *asset.Service
}

func NewAssetHandler(service *asset.Service) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	assets := router.Group("/assets")
	{
		assets.POST("", h.CreateAsset)
		assets.GET("/:id", h.GetAsset)
		assets.PATCH("/:id", h.UpdateAsset)
		assets.DELETE("/:id", h.DeleteAsset)
	}
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req asset.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateAsset(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Asset created successfully", result)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	result, err := h.service.GetAsset(c.Request.Context(), assetID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset retrieved successfully", result)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var req asset.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateAsset(c.Request.Context(), assetID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	if err := h.service.DeleteAsset(c.Request.Context(), assetID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset deleted successfully", nil)
}
