package routers

import (
	"fmt"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mws *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(mws.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(mws.Authenticate).Get("/", appointmentController.FindAll)
	router.With(mws.Authenticate).Get("/date-range", appointmentController.FindByDateRange)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.FindByID)
	router.With(mws.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.UpdateAppointment)
	router.With(mws.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.CancelAppointment)
}
