package routers

import (
	"fmt"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNutritionRecordRoutes(router chi.Router, mws *middlewares.Middlewares, nutritionRecordController *controllers.NutritionRecordController) {
	router.With(mws.Authenticate).Post("/", nutritionRecordController.CreateNutritionRecord)
	router.With(mws.Authenticate).Get("/me", nutritionRecordController.FindMyRecords)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/client/{%s}", constvars.URLParamClientID), nutritionRecordController.FindByClient)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/date-range/{%s}", constvars.URLParamClientID), nutritionRecordController.FindByClientAndDateRange)
	router.With(mws.Authenticate).Get(fmt.Sprintf("/record/{%s}", constvars.URLParamRecordID), nutritionRecordController.FindByID)
	router.With(mws.Authenticate).Put(fmt.Sprintf("/record/{%s}", constvars.URLParamRecordID), nutritionRecordController.UpdateNutritionRecord)
	router.With(mws.Authenticate).Delete(fmt.Sprintf("/record/{%s}", constvars.URLParamRecordID), nutritionRecordController.DeleteNutritionRecord)
}
