package utils

import (
	"mediflow-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreatePatientRequest(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			MRN:         "M1",
			FirstName:   "Ann",
			LastName:    "Lee",
			DateOfBirth: "1990-05-17",
		}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Missing MRN", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			FirstName:   "Ann",
			LastName:    "Lee",
			DateOfBirth: "1990-05-17",
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Malformed Date Of Birth", func(t *testing.T) {
		request := &requests.CreatePatientRequest{
			MRN:         "M1",
			FirstName:   "Ann",
			LastName:    "Lee",
			DateOfBirth: "May 17 1990",
		}

		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateCreateObservationRequest(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		request := &requests.CreateObservationRequest{
			Type:  "heart_rate",
			Value: "72",
			Unit:  "bpm",
		}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Missing Unit", func(t *testing.T) {
		request := &requests.CreateObservationRequest{
			Type:  "heart_rate",
			Value: "72",
		}

		assert.Error(t, ValidateStruct(request))
	})
}
