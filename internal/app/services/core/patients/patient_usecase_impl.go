package patients

import (
	"context"
	"mediflow-service/internal/app/contracts"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/dto/responses"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientMongoRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dateOfBirth, err := utils.ParseDateOfBirth(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	patient := &models.Patient{
		MRN:         request.MRN,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DateOfBirth: dateOfBirth,
	}

	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	response := buildPatientResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx, constvars.MaxListResults)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, buildPatientResponse(&patients[i]))
	}
	return response, nil
}

// FindByID is also the existence check the observation usecase runs before
// touching its own collection; the 400/404 discrimination below is relied on
// there verbatim.
func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	response := buildPatientResponse(patient)
	return &response, nil
}

func buildPatientResponse(patient *models.Patient) responses.Patient {
	return responses.Patient{
		ID:          patient.ID,
		MRN:         patient.MRN,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: utils.FormatDateOfBirth(patient.DateOfBirth),
	}
}
