package routers

import (
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mws *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(mws.Authenticate).Get("/me", userController.GetMe)
	router.With(mws.Authenticate).Put("/me", userController.UpdateMe)
}
