package routers

import (
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/services/core/observations"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	observationController *observations.ObservationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   AllowedOrigins(internalConfig),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WelcomeMessage, nil)
	})

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
		attachObservationRoutes(r, middlewares, observationController)
	})
}

// AllowedOrigins is the local dev frontend pair from the project's origin,
// plus one optional deployed frontend from env.
func AllowedOrigins(internalConfig *config.InternalConfig) []string {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if internalConfig.App.FrontendURL != "" {
		origins = append(origins, internalConfig.App.FrontendURL)
	}
	return origins
}
