package contracts

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
}

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context, limit int64) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
