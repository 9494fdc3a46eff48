package constvars

type ContextKey string

const (
	ResourceAuth             = "auth"
	ResourceUsers            = "users"
	ResourceProfiles         = "profiles"
	ResourceNutritionists    = "nutritionists"
	ResourceAvailability     = "availability"
	ResourceAppointments     = "appointments"
	ResourceNutritionRecords = "nutrition-records"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 100
)

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "NTRCR_SVC_"
)

const (
	NutriCareRoleClient       = "client"
	NutriCareRoleNutritionist = "nutritionist"
	NutriCareRoleAdmin        = "admin"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day.
	ClockLayout = "15:04"
)

const (
	AppointmentLockKeyFormat = "appt:lock:%s:%s"
	ReminderLockKey          = "worker:lock:appointment-reminder"
)

const (
	ImageProfilePicturePrefix     = "profile"
	MinioPresignedURLExpiryInHour = 24
)

var ImageAllowedProfilePictureFormats = []string{".jpe", ".jpeg", ".jpg", ".png"}
