package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tradetalent/backend/internal/auth"
	"github.com/tradetalent/backend/internal/config"
	"github.com/tradetalent/backend/internal/db"
	"github.com/tradetalent/backend/internal/marketplace"
	appmw "github.com/tradetalent/backend/internal/middleware"
	"github.com/tradetalent/backend/internal/respond"
	"github.com/tradetalent/backend/internal/seller"
	"github.com/tradetalent/backend/internal/user"
	"github.com/tradetalent/backend/internal/validation"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	client, database, err := db.Connect(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredential)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize Firebase")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(appmw.RequestID())
	e.Use(appmw.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return respond.Message(c, http.StatusOK, "Server is ok!")
	})

	users := user.NewHandler(user.NewRepository(database), log)
	profiles := seller.NewHandler(seller.NewRepository(database), log)
	services := marketplace.NewServiceHandler(marketplace.NewServiceRepository(database), log)
	orders := marketplace.NewOrderHandler(marketplace.NewOrderRepository(database), log)

	gate := appmw.TokenVerify(verifier)

	// Users
	e.POST("/create-user", users.Create)
	e.GET("/user/:userId", users.Get)
	e.PUT("/user/:userId", users.Update)
	e.DELETE("/user/:userId", users.Delete)

	// Seller profiles
	e.GET("/seller-profiles", profiles.List)
	e.GET("/top-seller-profiles", profiles.Top)
	e.POST("/seller-profile", profiles.Create, gate)
	e.GET("/seller-profile/:userEmail", profiles.Get, gate)
	e.PUT("/seller-profile/:userEmail", profiles.Update, gate)

	// Services
	e.GET("/services", services.List)
	e.GET("/featured-services", services.Featured)
	e.GET("/my-services/:sellerEmail", services.Mine, gate)
	e.POST("/services", services.Create, gate)
	e.GET("/services/:serviceId", services.Get, gate)
	e.PUT("/services/:serviceId", services.Update, gate)
	e.DELETE("/services/:serviceId", services.Delete, gate)

	// Orders
	e.GET("/orders", orders.List, gate)
	e.GET("/seller-orders/:sellerEmail", orders.BySeller, gate)
	e.GET("/buyer-orders/:buyerEmail", orders.ByBuyer, gate)
	e.POST("/create-order", orders.Create, gate)
	e.GET("/orders/:orderId", orders.Get, gate)
	e.PUT("/orders/:orderId", orders.Update, gate)
	e.DELETE("/orders/:orderId", orders.Delete, gate)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
