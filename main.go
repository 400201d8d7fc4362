package main

import (
	"time"

	"github.com/drinkwise/hydrocoach/config"
	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/routes"
	"github.com/drinkwise/hydrocoach/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Auto-migrate all models including day logs and reminder instructions
	db := config.InitDatabase(
		&models.User{},
		&models.Profile{},
		&models.Settings{},
		&models.DayLog{},
		&models.HydrationEntry{},
		&models.Reminder{},
	)

	r := routes.SetupRouter(db)

	// Background delivery of due reminder instructions (best-effort)
	utils.StartReminderDispatcher(time.Duration(cfg.ReminderDispatchSeconds) * time.Second)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
