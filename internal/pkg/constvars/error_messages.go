package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"eqfield":          "must match %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"base64":           "must be a valid base64 string",
	"datetime":         "must match the %s layout",
	"required_if":      "is required when %s is %s",
	"required_unless":  "is required unless %s is %s",
	"required_with":    "is required when %s is present",
	"required_without": "is required when %s is not present",
	"user_type":        "must be either 'client' or 'nutritionist'",
	"day_of_week":      "must be an integer between 0 (Monday) and 6 (Sunday)",
	"clock":            "must be a valid HH:MM time",
	"dateonly":         "must be a valid YYYY-MM-DD date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"eqfield":          true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"datetime":         true,
	"required_if":      true,
	"required_unless":  true,
	"required_with":    true,
	"required_without": true,
}
