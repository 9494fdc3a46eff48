package routers

import (
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mws *middlewares.Middlewares, limiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(limiter.Limit).Post("/register", authController.Register)
	router.With(limiter.Limit).Post("/login", authController.Login)
	router.With(mws.Authenticate).Post("/logout", authController.Logout)
}
