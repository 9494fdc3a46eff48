package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingDurationKey       = "duration"
	LoggingOperationKey      = "operation"
	LoggingErrorTypeKey      = "error_type"
	LoggingSuccessKey        = "success"
	LoggingWorkerKey         = "worker"

	LoggingUserIDKey         = "user_id"
	LoggingNutritionistIDKey = "nutritionist_id"
	LoggingClientIDKey       = "client_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAvailabilityIDKey = "availability_id"
	LoggingProfileIDKey      = "profile_id"
	LoggingRecordIDKey       = "record_id"
	LoggingPageKey           = "page"
	LoggingPageSizeKey       = "page_size"
	LoggingTotalKey          = "total"
	LoggingDateKey           = "date"
	LoggingStatusKey         = "status"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
	LoggingEmailRecipientsKey    = "email_recipients"
	LoggingEmailSubjectKey       = "email_subject"
)
