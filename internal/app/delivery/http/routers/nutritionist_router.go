package routers

import (
	"fmt"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Nutritionist listing is the public directory, no authentication needed.
func attachNutritionistRoutes(router chi.Router, _ *middlewares.Middlewares, nutritionistController *controllers.NutritionistController) {
	router.Get("/", nutritionistController.FindAll)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamNutritionistID), nutritionistController.FindByID)
}
