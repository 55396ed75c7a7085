package requests

type CreatePatientRequest struct {
	MRN         string `json:"mrn" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,date"`
}
