package constvars

const (
	WelcomeMessage = "Welcome to the MediFlow API"

	CreatePatientSuccessMessage      = "successfully created patient"
	GetPatientSuccessMessage         = "successfully retrieved patient"
	GetAllPatientsSuccessMessage     = "successfully retrieved patients"
	CreateObservationSuccessMessage  = "successfully created observation"
	GetAllObservationsSuccessMessage = "successfully retrieved observations"
)

const ResponseUnknown = "unknown"
