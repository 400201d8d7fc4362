package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/services"
	"github.com/drinkwise/hydrocoach/utils"
)

// ProfileController handles the onboarding profile that the daily goal is
// derived from.
type ProfileController struct {
	db *gorm.DB
}

// NewProfileController creates a new controller instance.
func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

// GetProfile returns the stored profile, or 404 when onboarding has not run.
func (p *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var profile models.Profile
	if err := p.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40402, "profile not set")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to load profile")
		return
	}

	utils.Success(ctx, profile)
}

// UpdateProfile replaces the profile wholesale, recomputes the daily goal, and
// seeds settings on first run. Invalid numeric input is rejected here so the
// goal calculator itself never sees out-of-range values.
func (p *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Age           int      `json:"age" binding:"required"`
		Gender        string   `json:"gender" binding:"required"`
		Weight        float64  `json:"weight" binding:"required"`
		HeightCm      *float64 `json:"height_cm"`
		ActivityLevel string   `json:"activity_level" binding:"required"`
		WeightUnit    string   `json:"weight_unit"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	if req.Age <= 0 || req.Age > 120 {
		utils.Error(ctx, http.StatusBadRequest, 40011, "age must be a positive number")
		return
	}
	if req.Weight <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40012, "weight must be a positive number")
		return
	}
	if req.HeightCm != nil && *req.HeightCm <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40013, "height must be a positive number")
		return
	}
	if !models.ValidGender(req.Gender) {
		utils.Error(ctx, http.StatusBadRequest, 40014, "unknown gender value")
		return
	}
	if !models.ValidActivityLevel(req.ActivityLevel) {
		utils.Error(ctx, http.StatusBadRequest, 40015, "unknown activity level")
		return
	}
	unit := req.WeightUnit
	if unit == "" {
		unit = models.UnitKg
	}
	if !models.ValidWeightUnit(unit) {
		utils.Error(ctx, http.StatusBadRequest, 40016, "unknown weight unit")
		return
	}

	profile := models.Profile{
		UserID:        userID,
		Age:           req.Age,
		Gender:        req.Gender,
		Weight:        req.Weight,
		HeightCm:      req.HeightCm,
		ActivityLevel: req.ActivityLevel,
	}
	goalMl := services.CalculateGoalMl(profile, unit)

	err := p.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		switch err := tx.Where("user_id = ?", userID).First(&existing).Error; err {
		case nil:
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
			if err := tx.Save(&profile).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		default:
			return err
		}

		settings, err := loadOrDefaultSettings(tx, userID)
		if err != nil {
			return err
		}
		settings.WeightUnit = unit
		settings.DailyGoalMl = goalMl
		if err := saveSettings(tx, &settings); err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("onboarding_completed", true).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to save profile")
		return
	}

	utils.CacheDelete(utils.TodaySummaryKey(userID))

	utils.Success(ctx, gin.H{
		"profile":       profile,
		"daily_goal_ml": goalMl,
	})
}
