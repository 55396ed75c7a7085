package routers

import (
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/services/core/observations"

	"github.com/go-chi/chi/v5"
)

func attachObservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, observationController *observations.ObservationController) {
	router.With(middlewares.LimitWrites).Post("/{patient_id}/observations", observationController.Create)
	router.Get("/{patient_id}/observations", observationController.FindAllByPatientID)
}
