package constvars

const (
	EmailAppointmentBookedSubject    = "[NUTRICARE] Appointment Confirmation"
	EmailAppointmentUpdatedSubject   = "[NUTRICARE] Appointment Rescheduled"
	EmailAppointmentCancelledSubject = "[NUTRICARE] Appointment Cancelled"
	EmailAppointmentReminderSubject  = "[NUTRICARE] Appointment Reminder"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

const (
	EmailBodyAppointmentBookedClient       = "Hi %s, your appointment with %s on %s from %s to %s has been scheduled."
	EmailBodyAppointmentBookedNutritionist = "Hi %s, a new appointment with %s has been scheduled on %s from %s to %s."
	EmailBodyAppointmentUpdated            = "Hi %s, your appointment with %s has been rescheduled to %s from %s to %s."
	EmailBodyAppointmentCancelled          = "Hi %s, your appointment with %s on %s from %s to %s has been cancelled by the %s."
	EmailBodyAppointmentReminder           = "Hi %s, this is a reminder of your appointment with %s tomorrow, %s from %s to %s."
)
