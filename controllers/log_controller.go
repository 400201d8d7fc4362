package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/middleware"
	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/services"
	"github.com/drinkwise/hydrocoach/utils"
)

// LogController records drinks and serves today's summary and history.
type LogController struct {
	db        *gorm.DB
	scheduler *services.ReminderScheduler
}

// NewLogController creates a new controller instance.
func NewLogController(db *gorm.DB, scheduler *services.ReminderScheduler) *LogController {
	return &LogController{db: db, scheduler: scheduler}
}

// LogDrink appends one drink to today's log, creating the log on day rollover
// with the goal snapshotted from current settings. The response carries
// everything the dashboard needs so the client renders from a single call.
func (l *LogController) LogDrink(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		AmountMl int    `json:"amount_ml" binding:"required"`
		Note     string `json:"note"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	// The day-log model adds unconditionally; non-positive amounts stop here.
	if req.AmountMl <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40031, "amount must be a positive number of milliliters")
		return
	}

	note := strings.TrimSpace(utils.SanitizeNote(req.Note))
	if len(note) > 255 {
		note = note[:255]
	}

	now := time.Now()
	settings, err := loadOrDefaultSettings(l.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load settings")
		return
	}

	var updated models.DayLog
	err = l.db.Transaction(func(tx *gorm.DB) error {
		today, err := findTodayLog(tx, userID, settings, now)
		if err != nil {
			return err
		}
		if today.ID == 0 {
			if err := tx.Create(&today).Error; err != nil {
				return err
			}
		}

		updated = today.Adding(req.AmountMl, note)

		entry := updated.Entries[len(updated.Entries)-1]
		entry.DayLogID = today.ID
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		updated.Entries[len(updated.Entries)-1] = entry

		return tx.Model(&models.DayLog{}).Where("id = ?", today.ID).
			Update("total_intake_ml", updated.TotalIntakeMl).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to record drink")
		return
	}

	utils.CacheDelete(utils.TodaySummaryKey(userID))

	recent, err := loadRecentLogs(l.db, userID, now)
	if err != nil {
		recent = nil
	}

	streak := services.ComputeStreak(append(recent, updated), now)
	badges := services.UnlockedBadges(streak)
	tip := services.Tip(updated, recent, now)

	// The notification layer cannot refresh scheduled content, so each log
	// replaces the remaining plan with one built from the new pace.
	if _, err := l.scheduler.Resync(userID, settings, updated, now); err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("reminder resync after drink failed user=%d err=%v", userID, err)
	}

	utils.Success(ctx, gin.H{
		"log":    daySummary(updated),
		"tip":    tip,
		"streak": streak,
		"badges": badges,
	})
}

// GetToday returns today's summary: progress, tip, streak, and badges.
func (l *LogController) GetToday(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	if b, ok := utils.CacheGetBytes(utils.TodaySummaryKey(userID)); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	now := time.Now()
	settings, err := loadOrDefaultSettings(l.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load settings")
		return
	}

	today, err := findTodayLog(l.db, userID, settings, now)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load today's log")
		return
	}

	recent, err := loadRecentLogs(l.db, userID, now)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to load history")
		return
	}

	logs := recent
	if today.ID != 0 {
		logs = append(logs, today)
	}
	streak := services.ComputeStreak(logs, now)

	payload := gin.H{
		"log":    daySummary(today),
		"tip":    services.Tip(today, recent, now),
		"streak": streak,
		"badges": services.UnlockedBadges(streak),
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(utils.TodaySummaryKey(userID), wrapper, 5*time.Minute)
	utils.Success(ctx, payload)
}

// GetHistory lists recent day logs, newest first.
func (l *LogController) GetHistory(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	days := 7
	if v := strings.TrimSpace(ctx.Query("days")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}

	since := models.StartOfDay(time.Now()).AddDate(0, 0, -(days - 1))
	var logs []models.DayLog
	if err := l.db.Preload("Entries").
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date desc").
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to load history")
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, log := range logs {
		items = append(items, daySummary(log))
	}

	utils.Success(ctx, gin.H{
		"days":  days,
		"items": items,
	})
}

// daySummary exposes a day log together with its derived display values.
func daySummary(log models.DayLog) gin.H {
	return gin.H{
		"id":              log.ID,
		"date":            log.StartOfDay().Format("2006-01-02"),
		"goal_ml":         log.GoalMl,
		"total_intake_ml": log.TotalIntakeMl,
		"progress":        log.Progress(),
		"percent":         int(log.Progress() * 100),
		"goal_reached":    log.IsGoalReached(),
		"reached_80":      log.Reached80Percent(),
		"total_glasses":   log.TotalGlasses(),
		"goal_glasses":    log.GoalGlasses(),
		"entries":         log.Entries,
	}
}

// findTodayLog loads today's log with entries, or returns an unsaved log with
// the goal snapshotted from settings when none exists yet (ID 0 signals that).
func findTodayLog(db *gorm.DB, userID uint, settings models.Settings, now time.Time) (models.DayLog, error) {
	todayStart := models.StartOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	var today models.DayLog
	err := db.Preload("Entries").
		Where("user_id = ? AND date >= ? AND date < ?", userID, todayStart, tomorrowStart).
		First(&today).Error
	if err == nil {
		return today, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.DayLog{}, err
	}

	return models.DayLog{
		UserID: userID,
		Date:   todayStart,
		GoalMl: settings.DailyGoalMl,
	}, nil
}

// loadRecentLogs returns the bounded history window before today, ascending.
func loadRecentLogs(db *gorm.DB, userID uint, now time.Time) ([]models.DayLog, error) {
	todayStart := models.StartOfDay(now)
	since := todayStart.AddDate(0, 0, -7)

	var logs []models.DayLog
	err := db.Where("user_id = ? AND date >= ? AND date < ?", userID, since, todayStart).
		Order("date asc").
		Find(&logs).Error
	return logs, err
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
