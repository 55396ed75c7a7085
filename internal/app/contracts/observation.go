package contracts

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/dto/responses"
)

type ObservationUsecase interface {
	Create(ctx context.Context, patientID string, request *requests.CreateObservationRequest) (*responses.Observation, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]responses.Observation, error)
}

type ObservationRepository interface {
	Insert(ctx context.Context, observation *models.Observation) (observationID string, err error)
	FindAllByPatientID(ctx context.Context, patientID string, limit int64) ([]models.Observation, error)
}
