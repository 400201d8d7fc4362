package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/services"
	"github.com/drinkwise/hydrocoach/utils"
)

// StatsController aggregates streaks, badges, and trailing averages.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns the gamification view: current streak, unlocked badges,
// the full catalog for locked-badge display, and a trailing-week average.
func (s *StatsController) GetStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	now := time.Now()
	todayStart := models.StartOfDay(now)
	since := todayStart.AddDate(0, 0, -6)

	var window []models.DayLog
	if err := s.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Find(&window).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load logs")
		return
	}

	// Streak can reach past the display window; walk the full history.
	var history []models.DayLog
	if err := s.db.Where("user_id = ?", userID).
		Order("date desc").
		Limit(366).
		Find(&history).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load logs")
		return
	}

	streak := services.ComputeStreak(history, now)
	badges := services.UnlockedBadges(streak)

	var weeklyAverage float64
	if len(window) > 0 {
		var sum float64
		for _, l := range window {
			sum += l.Progress()
		}
		weeklyAverage = sum / float64(len(window))
	}

	var daysLogged int64
	if err := s.db.Model(&models.DayLog{}).Where("user_id = ?", userID).Count(&daysLogged).Error; err != nil {
		daysLogged = 0
	}

	utils.Success(ctx, gin.H{
		"streak":                 streak,
		"badges":                 badges,
		"all_badges":             services.AllBadges,
		"weekly_average_percent": int(weeklyAverage * 100),
		"days_logged":            daysLogged,
	})
}
