package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrimart-be/internal/cart"
	"agrimart-be/internal/config"
	"agrimart-be/internal/cropprediction"
	"agrimart-be/internal/db"
	"agrimart-be/internal/donation"
	"agrimart-be/internal/logger"
	"agrimart-be/internal/middleware"
	"agrimart-be/internal/notification"
	"agrimart-be/internal/order"
	"agrimart-be/internal/payment"
	"agrimart-be/internal/product"
	"agrimart-be/internal/user"
	"agrimart-be/internal/wishlist"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// Repositories and services.
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo)

	noteRepo := notification.NewRepository(database)
	noteSvc := notification.NewService(noteRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo, noteSvc)

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentSvc := payment.NewService(orderRepo, gateway, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	predictionRepo := cropprediction.NewRepository(database)
	predictionSvc := cropprediction.NewService(predictionRepo)

	donationRepo := donation.NewRepository(database)
	donationSvc := donation.NewService(donationRepo)
	imageStore, err := donation.NewImageStore(cfg.UploadDir)
	if err != nil {
		logger.L().Fatal("failed to prepare upload dir", zap.Error(err))
	}

	router := buildRouter(
		user.NewHandler(userSvc),
		product.NewHandler(productSvc),
		cart.NewHandler(cartSvc),
		wishlist.NewHandler(wishlistSvc),
		order.NewHandler(orderSvc),
		payment.NewHandler(paymentSvc),
		notification.NewHandler(noteSvc),
		cropprediction.NewHandler(predictionSvc),
		donation.NewHandler(donationSvc, imageStore),
		imageStore,
	)

	// Background order progression loop, stopped at shutdown.
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	scheduler := order.NewScheduler(orderRepo, noteSvc, cfg.SchedulerTick, cfg.OrderDwellTime)
	go scheduler.Run(schedCtx)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.L().Info("server running", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}

func buildRouter(
	userH *user.Handler,
	productH *product.Handler,
	cartH *cart.Handler,
	wishlistH *wishlist.Handler,
	orderH *order.Handler,
	paymentH *payment.Handler,
	noteH *notification.Handler,
	predictionH *cropprediction.Handler,
	donationH *donation.Handler,
	imageStore *donation.ImageStore,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	// Public surface.
	userH.AuthRoutes(r.PathPrefix("/api/auth").Subrouter())
	productH.PublicRoutes(r.PathPrefix("/api/products").Subrouter())
	paymentH.Routes(r.PathPrefix("/api/payment").Subrouter())

	// Authenticated, role-gated surface.
	mount(r, "/api/products", productH.FarmerRoutes, user.RoleFarmer)
	mount(r, "/api/cart", cartH.Routes, user.RoleCustomer)
	mount(r, "/api/wishlist", wishlistH.Routes, user.RoleCustomer)
	mount(r, "/api/orders", orderH.CustomerRoutes, user.RoleCustomer)
	mount(r, "/api/orders", orderH.FarmerRoutes, user.RoleFarmer)
	mount(r, "/api/users", userH.UserRoutes, user.RoleCustomer, user.RoleFarmer, user.RoleAdmin)
	mount(r, "/api/notifications", noteH.Routes, user.RoleCustomer, user.RoleFarmer, user.RoleAdmin)
	mount(r, "/api/cropprediction", predictionH.ReadRoutes, user.RoleFarmer, user.RoleAdmin)
	mount(r, "/api/cropprediction", predictionH.FarmerRoutes, user.RoleFarmer)
	mount(r, "/api/cropprediction", predictionH.AdminRoutes, user.RoleAdmin)
	mount(r, "/api/donation", donationH.FarmerRoutes, user.RoleFarmer)
	mount(r, "/api/donation", donationH.AdminRoutes, user.RoleAdmin)

	// Uploaded donation images.
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(imageStore.Dir()))),
	)

	return r
}

// mount attaches a route group under prefix behind auth and a role allow-list.
func mount(r *mux.Router, prefix string, routes func(*mux.Router), roles ...user.Role) {
	sub := r.PathPrefix(prefix).Subrouter()
	sub.Use(middleware.AuthMiddleware)
	sub.Use(middleware.RequireRoles(roles...))
	routes(sub)
}
