package validator

import (
	"regexp"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
)

// DateLayout is the wire format for all dates.
const DateLayout = "2006-01-02"

// ValidateHotel checks a hotel record before persisting
func ValidateHotel(hotel *models.Hotel) error {
	if hotel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel name must not be empty", nil)
	}
	if len(hotel.Name) > 150 {
		return errors.NewAppError(errors.ErrCodeValidation, "hotel name must be at most 150 characters", nil)
	}
	if hotel.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "city must not be empty", nil)
	}
	return nil
}

// ValidateEmployee checks an employee record before persisting
func ValidateEmployee(emp *models.Employee) error {
	if emp.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel id must not be empty", nil)
	}
	if emp.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "employee name must not be empty", nil)
	}
	if emp.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "salary must not be negative", nil)
	}
	return nil
}

// ValidateRoom checks a room record before persisting
func ValidateRoom(room *models.Room) error {
	if room.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel id must not be empty", nil)
	}
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room number must not be empty", nil)
	}
	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room type must not be empty", nil)
	}
	if room.PricePerNight <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price per night must be positive", nil)
	}
	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}
	return nil
}

// ValidateGuest checks a guest record and its phones before persisting
func ValidateGuest(guest *models.Guest) error {
	if guest.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "guest name must not be empty", nil)
	}
	if guest.Email != "" && !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid guest email", nil)
	}
	for _, phone := range guest.Phones {
		if !isValidPhone(phone.Phone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number: "+phone.Phone, nil)
		}
		switch phone.PhoneType {
		case "", constants.PhoneTypeMobile, constants.PhoneTypeHome, constants.PhoneTypeWork, constants.PhoneTypeOther:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "invalid phone type: "+phone.PhoneType, nil)
		}
	}
	return nil
}

// ValidateService checks a service record before persisting
func ValidateService(service *models.Service) error {
	if service.ServiceName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "service name must not be empty", nil)
	}
	if service.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "service price must be positive", nil)
	}
	return nil
}

// ParseDateRange parses and checks a check-in/check-out pair.
func ParseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check-in date, use YYYY-MM-DD", err)
	}
	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check-out date, use YYYY-MM-DD", err)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}
	return checkIn, checkOut, nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks a single email address
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}
	return nil
}

// ValidatePassword checks password strength
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "password must be at least 8 characters", nil)
	}
	return nil
}
