package main

import (
	"context"
	"log"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
)

func main() {
	cfg := config.Load()

	notifier := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID)
	scheduler := services.NewNotificationScheduler(notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx)

	var lookup services.NutritionLookup
	if eda := services.NewEdamamService(cfg.EdamamAppID, cfg.EdamamAppKey); eda.Configured() {
		lookup = eda
	}

	notificationCtrl := controllers.NewNotificationController(notifier, scheduler)
	r := routes.SetupRouter(notificationCtrl, lookup)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
