package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"

	ErrClientNotEnoughPermissions = "Not enough permissions"

	ErrClientUserNotFound         = "User not found"
	ErrClientNutritionistNotFound = "Nutritionist not found"
	ErrClientClientNotFound       = "Client not found"
	ErrClientClientsOnlyEndpoint  = "This endpoint is only for clients"

	ErrClientProfileAlreadyExists = "Profile already exists for this user"
	ErrClientProfileNotFound      = "Profile not found"
	ErrClientProfileNotAccessible = "Not enough permissions to access this profile"

	ErrClientAvailabilityNutritionistsOnly = "Only nutritionists can create availability slots"
	ErrClientAvailabilityDayOfWeekRequired = "Day of week is required for recurring availability"
	ErrClientAvailabilityDateRequired      = "Specific date is required for non-recurring availability"
	ErrClientAvailabilityNotFound          = "Availability slot not found"

	ErrClientAppointmentEndBeforeStart   = "End time must be after start time"
	ErrClientAppointmentInThePast        = "Appointment time must be in the future"
	ErrClientAppointmentSlotBooked       = "The selected time slot is already booked"
	ErrClientAppointmentSlotConflicts    = "The selected time slot conflicts with another appointment"
	ErrClientAppointmentSlotNotAvailable = "The selected time slot is not available"
	ErrClientAppointmentSlotUnavailable  = "The selected time slot is not within nutritionist's availability"
	ErrClientAppointmentNotFound         = "Appointment not found"
	ErrClientAppointmentCancelledTwice   = "Appointment is already cancelled"
	ErrClientBookingInProgress           = "Another booking for this nutritionist is in progress, please try again"

	ErrClientDateRangeInverted = "Start date must be before end date"

	ErrClientNutritionRecordNotFound = "Nutrition record not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime      = "cannot parse time into the given format"
	ErrDevCannotParseDate      = "cannot parse the requested date"
	ErrDevRoleTypeDoesntMatch  = "invalid role type, request done by user with different type"
	ErrDevFailedToCreateUser   = "failed to create user"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevDocumentNotFound     = "document not found"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevUnauthorized         = "unauthorized access"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevPasswordsDoNotMatch  = "password and retype password do not match"
	ErrDevAuthSigningMethod    = "unexpected signing method"
	ErrDevAuthTokenInvalid     = "invalid token"
	ErrDevAuthTokenExpired     = "token expired"
	ErrDevAuthTokenMissing     = "token missing"
	ErrDevAuthInvalidSession   = "invalid session"
	ErrDevAuthPermissionDenied = "permission denied"
	ErrDevAuthGenerateToken    = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBConnectionFailed       = "failed to connect to database"
	ErrDevDBStringNotObjectID      = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisStoreSession   = "failed to store session data into redis"
	ErrDevRedisAcquireLock    = "failed to acquire redis lock"
	ErrDevRedisReleaseLock    = "failed to release redis lock"
	ErrDevRedisGetValue       = "failed to get value from redis"
	ErrDevRedisSetValue       = "failed to set value into redis"
	ErrDevRedisDeleteValue    = "failed to delete value from redis"
	ErrDevRedisParseSession   = "failed to parse session data"
	ErrDevRedisSessionMissing = "session not found in redis"

	// Messaging messages
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"
	ErrDevRabbitMQConsume = "failed to consume message from rabbitmq"
	ErrDevSMTPSendEmail   = "failed to send email via smtp"

	// Storage messages
	ErrDevMinioUploadObject  = "failed to upload object to minio"
	ErrDevMinioGetObjectURL  = "failed to presign object url from minio"
	ErrDevFileInvalidType    = "invalid file type"
	ErrDevFileTooLarge       = "file size exceeds the allowed limit"
	ErrDevFileDecodingFailed = "failed to decode base64 file"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerBadRequest       = "bad request"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevActionNotAllowed       = "action not allowed"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
