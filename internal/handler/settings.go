package handler

import (
	"errors"
	"net/http"

	"society-manager/internal/models"
	"society-manager/internal/service"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the settings singleton.
type SettingsHandler struct {
	Settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

type saveSettingsReq struct {
	AdminName     string `json:"admin_name" binding:"required,max=128"`
	BlockNumber   string `json:"block_number" binding:"required,max=64"`
	SignatureType string `json:"signature_type" binding:"required,oneof=typed drawn uploaded"`

	// omitted payloads keep their stored values
	SignatureText   *string `json:"signature_text"`
	SignatureDrawn  *string `json:"signature_drawn"`
	SignatureUpload *string `json:"signature_upload"`
}

func toSettingsResp(s *models.Settings) gin.H {
	return gin.H{
		"id":               s.ID,
		"admin_name":       s.AdminName,
		"block_number":     s.BlockNumber,
		"signature_type":   s.SignatureType,
		"signature_text":   s.SignatureText,
		"signature_drawn":  s.SignatureDrawn,
		"signature_upload": s.SignatureUpload,
		"updated_at":       s.UpdatedAt,
	}
}

// GetSettings returns the singleton, creating the default on first access.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load settings failed")
		return
	}
	util.Success(c, util.Response{"settings": toSettingsResp(settings)})
}

// SaveSettings writes the singleton under its fixed key.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req saveSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	settings, err := h.Settings.Save(service.SettingsUpdate{
		AdminName:       req.AdminName,
		BlockNumber:     req.BlockNumber,
		SignatureType:   req.SignatureType,
		SignatureText:   req.SignatureText,
		SignatureDrawn:  req.SignatureDrawn,
		SignatureUpload: req.SignatureUpload,
	})
	if errors.Is(err, service.ErrInvalidInput) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save settings failed")
		return
	}

	util.Success(c, util.Response{"settings": toSettingsResp(settings)})
}
