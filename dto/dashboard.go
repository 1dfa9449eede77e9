package dto

type DashboardStats struct {
	TotalHotels     int64   `json:"totalHotels"`
	TotalRooms      int64   `json:"totalRooms"`
	TotalGuests     int64   `json:"totalGuests"`
	ActiveBookings  int64   `json:"activeBookings"`
	OccupiedRooms   int64   `json:"occupiedRooms"`
	RoomsInService  int64   `json:"roomsInService"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingBalance  float64 `json:"pendingBalance"`
	PaymentsToday   int64   `json:"paymentsToday"`
	CheckInsToday   int64   `json:"checkInsToday"`
	CheckOutsToday  int64   `json:"checkOutsToday"`
}

type RecentBooking struct {
	ID           uint    `json:"id"`
	GuestName    string  `json:"guestName"`
	RoomNumber   string  `json:"roomNumber"`
	HotelName    string  `json:"hotelName"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"totalAmount"`
}

type DashboardResponse struct {
	Stats          DashboardStats  `json:"stats"`
	RecentBookings []RecentBooking `json:"recentBookings"`
}
