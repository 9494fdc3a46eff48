package routers

import (
	"fmt"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, mws *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.With(mws.Authenticate).Post("/me", profileController.CreateMyProfile)
	router.With(mws.Authenticate).Get("/me", profileController.GetMyProfile)
	router.With(mws.Authenticate).Put("/me", profileController.UpdateMyProfile)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamUserID), profileController.GetProfileByUserID)
}
