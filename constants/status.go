package constants

// ApplicationStatus is the canonical status for rows in applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	AppStatusPending   ApplicationStatus = "Pending"
	AppStatusApproved  ApplicationStatus = "Approved"
	AppStatusRejected  ApplicationStatus = "Rejected"
	AppStatusDisbursed ApplicationStatus = "Disbursed"
)

// ApplicationStatuses lists the allowed application statuses.
var ApplicationStatuses = []string{
	string(AppStatusPending),
	string(AppStatusApproved),
	string(AppStatusRejected),
	string(AppStatusDisbursed),
}

// AppointmentStatus is the canonical status for rows in appointments.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists the allowed appointment statuses.
var AppointmentStatuses = []string{
	string(AppointmentScheduled),
	string(AppointmentCompleted),
	string(AppointmentCancelled),
}
