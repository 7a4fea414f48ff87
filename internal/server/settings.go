package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/smallbiznis/billfold/internal/settings/domain"
)

type updateSettingsRequest struct {
	BusinessName *string  `json:"business_name"`
	OwnerName    *string  `json:"owner_name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	LogoURL      *string  `json:"logo_url"`
	Currency     *string  `json:"currency"`
	TaxRate      *float64 `json:"tax_rate"`
	AccentColor  *string  `json:"accent_color"`
	FontFamily   *string  `json:"font_family"`
}

func (s *Server) GetSettings(c *gin.Context) {
	profile, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	profile, err := s.settingsSvc.Update(c.Request.Context(), settingsdomain.UpdateProfileRequest{
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		LogoURL:      req.LogoURL,
		Currency:     req.Currency,
		TaxRate:      req.TaxRate,
		AccentColor:  req.AccentColor,
		FontFamily:   req.FontFamily,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
