package routers

import (
	"fmt"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth            *controllers.AuthController
	User            *controllers.UserController
	Nutritionist    *controllers.NutritionistController
	Profile         *controllers.ProfileController
	Availability    *controllers.AvailabilityController
	Appointment     *controllers.AppointmentController
	NutritionRecord *controllers.NutritionRecordController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mws *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mws.RequestID)
	router.Use(mws.Logging)
	router.Use(mws.ErrorHandler)

	// The auth endpoints sit in front of bcrypt, so they get a stricter
	// per-IP limiter with a temporary block list on top of the global one.
	authRateLimiter := middlewares.NewRateLimiter(internalConfig.App.MaxTimeRequestsPerSeconds, time.Second, 5*time.Minute)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, mws, authRateLimiter, ctrls.Auth)
			})

			r.Route("/"+constvars.ResourceUsers, func(r chi.Router) {
				attachUserRoutes(r, mws, ctrls.User)
			})

			r.Route("/"+constvars.ResourceNutritionists, func(r chi.Router) {
				attachNutritionistRoutes(r, mws, ctrls.Nutritionist)
			})

			r.Route("/"+constvars.ResourceProfiles, func(r chi.Router) {
				attachProfileRoutes(r, mws, ctrls.Profile)
			})

			r.Route("/"+constvars.ResourceAvailability, func(r chi.Router) {
				attachAvailabilityRoutes(r, mws, ctrls.Availability)
			})

			r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
				attachAppointmentRoutes(r, mws, ctrls.Appointment)
			})

			r.Route("/"+constvars.ResourceNutritionRecords, func(r chi.Router) {
				attachNutritionRecordRoutes(r, mws, ctrls.NutritionRecord)
			})
		})
	})
}
