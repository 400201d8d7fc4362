package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/services"
	"github.com/drinkwise/hydrocoach/utils"
)

// ReminderController exposes the scheduled reminder stream to the client.
type ReminderController struct {
	db        *gorm.DB
	scheduler *services.ReminderScheduler
}

// NewReminderController creates a new controller instance.
func NewReminderController(db *gorm.DB, scheduler *services.ReminderScheduler) *ReminderController {
	return &ReminderController{db: db, scheduler: scheduler}
}

// Upcoming lists pending reminder instructions ordered by fire time.
func (r *ReminderController) Upcoming(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	rows, err := r.scheduler.Upcoming(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to load reminders")
		return
	}

	utils.Success(ctx, gin.H{"items": rows})
}

// Sync forces a full reschedule of today's reminders from current settings
// and progress. Each pass clears prior instructions before emitting, so
// repeated calls with unchanged inputs are idempotent.
func (r *ReminderController) Sync(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	now := time.Now()
	settings, err := loadOrDefaultSettings(r.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to load settings")
		return
	}

	todayLog, err := findTodayLog(r.db, userID, settings, now)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load today's log")
		return
	}

	rows, err := r.scheduler.Resync(userID, settings, todayLog, now)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to reschedule reminders")
		return
	}

	utils.Success(ctx, gin.H{
		"scheduled": len(rows),
		"items":     rows,
	})
}
