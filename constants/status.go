package constants

// Room status
const (
	RoomStatusAvailable   = "Available"
	RoomStatusBooked      = "Booked"
	RoomStatusMaintenance = "Maintenance"
)

// Booking status
const (
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "Checked-In"
	BookingStatusCheckedOut = "Checked-Out"
	BookingStatusCancelled  = "Cancelled"
)

// Payment method
const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
	PaymentMethodUPI  = "UPI"
)

// Payment status
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// Phone type
const (
	PhoneTypeMobile = "Mobile"
	PhoneTypeHome   = "Home"
	PhoneTypeWork   = "Work"
	PhoneTypeOther  = "Other"
)

// Staff roles
const (
	RoleReceptionist = 0
	RoleManager      = 1
	RoleSuperAdmin   = 2
)

// Staff account status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)
