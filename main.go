package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/config"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/database"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/handler"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/router"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/utils"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "protocol-guest-seating",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	store := database.Open()
	deliveryDelay := time.Duration(config.ConfigInt("MAIL_DELAY_SECONDS", 3)) * time.Second
	outbox := utils.NewOutbox(deliveryDelay)

	h := handler.New(store, outbox)

	refresh := time.Duration(config.ConfigInt("DASHBOARD_REFRESH_SECONDS", 15)) * time.Second
	helper.StartDashboardRefresh(refresh, h.BroadcastSummaries)
	defer helper.StopDashboardRefresh()

	helper.StartOutboxWorker(2*time.Second, func() { outbox.Flush() })
	defer helper.StopOutboxWorker()

	router.SetupRoutes(app, h)

	log.Fatal(app.Listen(":" + config.Config("PORT", "8002")))
}
