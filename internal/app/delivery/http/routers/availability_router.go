package routers

import (
	"fmt"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, mws *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(mws.Authenticate).Post("/", availabilityController.CreateAvailability)
	router.Get("/", availabilityController.FindByNutritionist)
	router.Get("/date-range", availabilityController.FindByDateRange)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamAvailabilityID), availabilityController.FindByID)
	router.With(mws.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamAvailabilityID), availabilityController.UpdateAvailability)
	router.With(mws.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamAvailabilityID), availabilityController.DeleteAvailability)
}
