package observations

import (
	"context"
	"mediflow-service/internal/app/contracts"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type observationUsecase struct {
	ObservationRepository contracts.ObservationRepository
	PatientUsecase        contracts.PatientUsecase
	Log                   *zap.Logger
}

func NewObservationUsecase(
	observationMongoRepository contracts.ObservationRepository,
	patientUsecase contracts.PatientUsecase,
	logger *zap.Logger,
) contracts.ObservationUsecase {
	return &observationUsecase{
		ObservationRepository: observationMongoRepository,
		PatientUsecase:        patientUsecase,
		Log:                   logger,
	}
}

func (uc *observationUsecase) Create(ctx context.Context, patientID string, request *requests.CreateObservationRequest) (*responses.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	// Existence check. Its 400/404 CustomError propagates untouched and no
	// write happens when the parent does not resolve.
	_, err := uc.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	observation := &models.Observation{
		PatientID: patientID,
		Type:      request.Type,
		Value:     request.Value,
		Unit:      request.Unit,
		Timestamp: time.Now(),
	}

	observationID, err := uc.ObservationRepository.Insert(ctx, observation)
	if err != nil {
		uc.Log.Error("observationUsecase.Create error inserting observation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	observation.ID = observationID

	response := buildObservationResponse(observation)
	return &response, nil
}

func (uc *observationUsecase) FindAllByPatientID(ctx context.Context, patientID string) ([]responses.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.FindAllByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := uc.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	observations, err := uc.ObservationRepository.FindAllByPatientID(ctx, patientID, constvars.MaxListResults)
	if err != nil {
		uc.Log.Error("observationUsecase.FindAllByPatientID error fetching observations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Observation, 0, len(observations))
	for i := range observations {
		response = append(response, buildObservationResponse(&observations[i]))
	}
	return response, nil
}

func buildObservationResponse(observation *models.Observation) responses.Observation {
	return responses.Observation{
		ID:        observation.ID,
		PatientID: observation.PatientID,
		Type:      observation.Type,
		Value:     observation.Value,
		Unit:      observation.Unit,
		Timestamp: observation.Timestamp,
	}
}
