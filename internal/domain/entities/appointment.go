package entities

// AppointmentStatus classifies a booked slot relative to "now".
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"

	// AppointmentStatusUnknown is the defensive fallback for a slot whose
	// date or time cannot be parsed. It is not a valid terminal state and
	// has no display treatment; resolvers log when they produce it.
	AppointmentStatusUnknown AppointmentStatus = ""
)

// Appointment is the display view of a booking record. It is derived on
// demand from the booked-slot collection and never stored.
type Appointment struct {
	DoctorName     string            `json:"doctorName"`
	DoctorTimeZone string            `json:"doctorTimeZone"`
	TimeSlot       BookedSlot        `json:"timeSlot"`
	Status         AppointmentStatus `json:"status"`
}
