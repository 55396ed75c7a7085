package requests

type CreateObservationRequest struct {
	Type  string `json:"type" validate:"required"`
	Value string `json:"value" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
}
