package main

import (
	"log"
	"net/http"

	"stagefront-be/internal/checkout"
	"stagefront-be/internal/config"
	"stagefront-be/internal/db"
	"stagefront-be/internal/fulfillment"
	"stagefront-be/internal/logger"
	"stagefront-be/internal/notification"
	"stagefront-be/internal/order"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	orderRepo := order.NewRepository(database)
	provider := fulfillment.NewClient(cfg.PrintfulAPIKey, cfg.PrintfulBaseURL)
	mailer := notification.NewMailer(cfg.EmailAPIKey, cfg.EmailBaseURL, cfg.EmailFrom)

	checkoutSvc := checkout.NewService(orderRepo, provider, mailer, cfg.StoreOwnerEmail)
	handler := checkout.NewHandler(checkoutSvc, orderRepo)

	router := checkout.NewRouter(handler, cfg.AdminJWTSecret)

	log.Printf("🚀 Store server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
