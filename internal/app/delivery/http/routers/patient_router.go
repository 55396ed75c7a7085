package routers

import (
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.LimitWrites).Post("/", patientController.Create)
	router.Get("/", patientController.FindAll)
	router.Get("/{patient_id}", patientController.FindByID)
}
