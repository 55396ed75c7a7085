package constvars

// Validation messages per validator tag, used when formatting the first
// failed field of a request body.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"date":     "must be a valid date in YYYY-MM-DD format",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientInvalidPatientID              = "invalid patient ID format"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotParseDate    = "cannot parse date"
	ErrDevValidationFailed   = "validation failed"
	ErrDevPatientNotExists   = "patient does not exist"
	ErrDevServerProcess      = "server failed to process the request"
	ErrDevDeadlineExceeded   = "context deadline exceeded while processing request"
	ErrDevRateLimitEvaluate  = "failed to evaluate rate limit window"
	ErrDevRateLimitExhausted = "rate limit quota exhausted for this window"

	ErrDevURLParamIDValidationFailed = "failed to validate URL parameter: %s"

	// MongoDB messages
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToInsertDocument   = "failed when do insert document on database"
	ErrDevDBFailedToIterateDocuments = "failed when do iterate documents on database"
	ErrDevDBStringNotObjectID        = "given string is not a valid ObjectID"

	// Redis messages
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"
)
