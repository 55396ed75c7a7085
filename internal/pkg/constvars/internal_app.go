package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionObservations = "observations"
)

const (
	URLParamPatientID = "patient_id"
)

// MaxListResults caps every list operation so a single request cannot pull an
// unbounded result set out of the store.
const MaxListResults = 1000

const (
	RateLimiterGroupWrite = "WRITE"
)
