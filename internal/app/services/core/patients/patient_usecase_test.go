package patients

import (
	"context"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients []models.Patient
}

func (f *fakePatientRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	stored := *patient
	stored.ID = primitive.NewObjectID().Hex()
	f.patients = append(f.patients, stored)
	return stored.ID, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, limit int64) ([]models.Patient, error) {
	if int64(len(f.patients)) > limit {
		return f.patients[:limit], nil
	}
	return f.patients, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patientID {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func TestPatientUsecaseCreate(t *testing.T) {
	repo := &fakePatientRepository{}
	usecase := NewPatientUsecase(repo, zap.NewNop())

	t.Run("Create Then Get Returns Same Record", func(t *testing.T) {
		created, err := usecase.Create(context.Background(), &requests.CreatePatientRequest{
			MRN:         "M1",
			FirstName:   "Ann",
			LastName:    "Lee",
			DateOfBirth: "1990-05-17",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "M1", created.MRN)
		assert.Equal(t, "Ann", created.FirstName)
		assert.Equal(t, "Lee", created.LastName)
		assert.Equal(t, "1990-05-17", created.DateOfBirth)

		fetched, err := usecase.FindByID(context.Background(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("Date Of Birth Stored At Midnight UTC", func(t *testing.T) {
		created, err := usecase.Create(context.Background(), &requests.CreatePatientRequest{
			MRN:         "M2",
			FirstName:   "Bo",
			LastName:    "Ng",
			DateOfBirth: "2001-12-31",
		})

		assert.NoError(t, err)
		stored, err := repo.FindByID(context.Background(), created.ID)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2001, time.December, 31, 0, 0, 0, 0, time.UTC), stored.DateOfBirth)
	})

	t.Run("Unparseable Date Of Birth", func(t *testing.T) {
		_, err := usecase.Create(context.Background(), &requests.CreatePatientRequest{
			MRN:         "M3",
			FirstName:   "Cy",
			LastName:    "Ed",
			DateOfBirth: "not-a-date",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})
}

func TestPatientUsecaseFindByID(t *testing.T) {
	repo := &fakePatientRepository{}
	usecase := NewPatientUsecase(repo, zap.NewNop())

	t.Run("Malformed ID Is Bad Request Not Not Found", func(t *testing.T) {
		_, err := usecase.FindByID(context.Background(), "not-a-valid-id")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Well Formed Unassigned ID Is Not Found", func(t *testing.T) {
		_, err := usecase.FindByID(context.Background(), primitive.NewObjectID().Hex())

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestPatientUsecaseFindAll(t *testing.T) {
	repo := &fakePatientRepository{}
	usecase := NewPatientUsecase(repo, zap.NewNop())

	t.Run("Empty Store Returns Empty List", func(t *testing.T) {
		result, err := usecase.FindAll(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})

	t.Run("Returns Every Created Patient", func(t *testing.T) {
		for _, mrn := range []string{"A1", "A2", "A3"} {
			_, err := usecase.Create(context.Background(), &requests.CreatePatientRequest{
				MRN:         mrn,
				FirstName:   "First",
				LastName:    "Last",
				DateOfBirth: "1980-01-01",
			})
			assert.NoError(t, err)
		}

		result, err := usecase.FindAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, "A1", result[0].MRN)
		assert.Equal(t, "A3", result[2].MRN)
	})
}
