package models

// Stats is the admin dashboard aggregate.
type Stats struct {
	Users             int64 `json:"users"`
	Workouts          int64 `json:"workouts"`
	Meals             int64 `json:"meals"`
	Trainers          int64 `json:"trainers"`
	Gyms              int64 `json:"gyms"`
	Bookings          int64 `json:"bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}
