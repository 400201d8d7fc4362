package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/config"
	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/services"
	"github.com/drinkwise/hydrocoach/utils"
)

// SettingsController manages per-user hydration preferences.
type SettingsController struct {
	db        *gorm.DB
	scheduler *services.ReminderScheduler
}

// NewSettingsController creates a new controller instance.
func NewSettingsController(db *gorm.DB, scheduler *services.ReminderScheduler) *SettingsController {
	return &SettingsController{db: db, scheduler: scheduler}
}

// GetSettings returns stored settings, falling back to defaults when no
// record exists yet. A missing record is absence, not an error.
func (s *SettingsController) GetSettings(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	settings, err := loadOrDefaultSettings(s.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to load settings")
		return
	}

	utils.Success(ctx, settings)
}

// UpdateSettings validates and stores new preferences, then rebuilds today's
// reminder plan since wake/sleep window, goal, and frequency all feed it.
func (s *SettingsController) UpdateSettings(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		WeightUnit               string   `json:"weight_unit"`
		DailyGoalMl              *int     `json:"daily_goal_ml"`
		RemindersEnabled         *bool    `json:"reminders_enabled"`
		ReminderFrequencyMinutes *int     `json:"reminder_frequency_minutes"`
		WakeTime                 string   `json:"wake_time"`
		SleepTime                string   `json:"sleep_time"`
		BottleSizeOz             *float64 `json:"bottle_size_oz"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	settings, err := loadOrDefaultSettings(s.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to load settings")
		return
	}

	if req.WeightUnit != "" {
		if !models.ValidWeightUnit(req.WeightUnit) {
			utils.Error(ctx, http.StatusBadRequest, 40021, "unknown weight unit")
			return
		}
		settings.WeightUnit = req.WeightUnit
	}
	if req.DailyGoalMl != nil {
		if *req.DailyGoalMl <= 0 {
			utils.Error(ctx, http.StatusBadRequest, 40022, "daily goal must be a positive number")
			return
		}
		settings.DailyGoalMl = *req.DailyGoalMl
	}
	if req.RemindersEnabled != nil {
		settings.RemindersEnabled = *req.RemindersEnabled
	}
	if req.ReminderFrequencyMinutes != nil {
		if !models.ValidReminderFrequency(*req.ReminderFrequencyMinutes) {
			utils.Error(ctx, http.StatusBadRequest, 40023, "reminder frequency must be one of 60, 90, 120 minutes")
			return
		}
		settings.ReminderFrequencyMinutes = *req.ReminderFrequencyMinutes
	}
	if req.WakeTime != "" {
		if _, _, err := models.ParseClockTime(req.WakeTime); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40024, "wake time must be HH:MM")
			return
		}
		settings.WakeTime = req.WakeTime
	}
	if req.SleepTime != "" {
		if _, _, err := models.ParseClockTime(req.SleepTime); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40025, "sleep time must be HH:MM")
			return
		}
		settings.SleepTime = req.SleepTime
	}
	if req.BottleSizeOz != nil {
		if *req.BottleSizeOz <= 0 {
			utils.Error(ctx, http.StatusBadRequest, 40026, "bottle size must be a positive number")
			return
		}
		settings.BottleSizeOz = req.BottleSizeOz
	}

	if err := saveSettings(s.db, &settings); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to save settings")
		return
	}

	utils.CacheDelete(utils.TodaySummaryKey(userID))

	// A sleep time not after wake time disables scheduling for today; the
	// resync then just clears pending instructions.
	now := time.Now()
	todayLog, err := findTodayLog(s.db, userID, settings, now)
	if err == nil {
		if _, err := s.scheduler.Resync(userID, settings, todayLog, now); err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("reminder resync after settings change failed user=%d err=%v", userID, err)
		}
	}

	utils.Success(ctx, settings)
}

// loadOrDefaultSettings fetches the user's settings, substituting configured
// defaults when no record has been persisted yet.
func loadOrDefaultSettings(db *gorm.DB, userID uint) (models.Settings, error) {
	var settings models.Settings
	err := db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Settings{}, err
	}

	cfg := config.Get()
	return models.Settings{
		UserID:                   userID,
		WeightUnit:               models.UnitKg,
		DailyGoalMl:              cfg.DefaultGoalMl,
		RemindersEnabled:         false,
		ReminderFrequencyMinutes: cfg.DefaultReminderFrequency,
		WakeTime:                 cfg.DefaultWakeTime,
		SleepTime:                cfg.DefaultSleepTime,
	}, nil
}

// saveSettings upserts the settings row keyed by user.
func saveSettings(db *gorm.DB, settings *models.Settings) error {
	if settings.ID != 0 {
		return db.Save(settings).Error
	}
	var existing models.Settings
	switch err := db.Where("user_id = ?", settings.UserID).First(&existing).Error; err {
	case nil:
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return db.Save(settings).Error
	case gorm.ErrRecordNotFound:
		return db.Create(settings).Error
	default:
		return err
	}
}
