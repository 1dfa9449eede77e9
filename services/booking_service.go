package services

import (
	stderrors "errors"
	"time"

	"hms/builders"
	"hms/commands"
	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// allowedTransitions is the booking status machine. Checked-Out and
// Cancelled are terminal.
var allowedTransitions = map[string][]string{
	constants.BookingStatusConfirmed: {constants.BookingStatusCheckedIn, constants.BookingStatusCancelled},
	constants.BookingStatusCheckedIn: {constants.BookingStatusCheckedOut, constants.BookingStatusCancelled},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingService owns the booking workflows that need the database.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:  db,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// GetByID loads a booking with its guest, room, payments and service usages.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Guest").Preload("Room").Preload("Payments").
		Preload("ServiceUsages.Service").
		First(&booking, bookingID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// Create books a room for a guest. The availability check re-runs inside the
// transaction so two concurrent creates for the same room serialize at the
// database, and the total is seeded from nights times the nightly rate.
func (s *BookingService) Create(guestID, roomID uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "room not found", errors.ErrRoomNotFound)
			}
			return err
		}

		var guest models.Guest
		if err := tx.First(&guest, guestID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "guest not found", errors.ErrGuestNotFound)
			}
			return err
		}

		var conflicting []models.Booking
		if err := tx.Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			roomID,
			[]string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn},
			checkOut, checkIn).
			Find(&conflicting).Error; err != nil {
			return err
		}
		if len(conflicting) > 0 || room.Status != constants.RoomStatusAvailable {
			return errors.NewAppError(errors.ErrCodeRoomNotAvailable,
				"room not available for the requested dates", errors.ErrRoomNotAvailable)
		}

		draft := builders.NewBookingBuilder().
			WithGuest(guestID).
			WithRoom(roomID).
			WithStay(checkIn, checkOut).
			WithStatus(constants.BookingStatusConfirmed).
			Build()

		total, err := RecalculateTotal(*draft, room, nil)
		if err != nil {
			return err
		}
		draft.TotalAmount = total

		if err := commands.NewCreateBookingCommand(draft, tx).Execute(); err != nil {
			return err
		}
		booking = *draft
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %d created for guest %d, room %d, total %.2f",
		booking.ID, booking.GuestID, booking.RoomID, booking.TotalAmount)
	return &booking, nil
}

// AddService attaches a metered service usage to a booking and recomputes
// the total in the same transaction. The booking row is locked for the
// read-modify-write so two concurrent service additions cannot lose an
// update.
func (s *BookingService) AddService(bookingID, serviceID uint, quantity int) (*models.ServiceUsage, error) {
	if quantity <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "quantity must be positive", errors.ErrInvalidAmount)
	}

	var usage models.ServiceUsage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
			}
			return err
		}

		var service models.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "service not found", errors.ErrServiceNotFound)
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.ServiceUsage{}).
			Where("booking_id = ? AND service_id = ?", bookingID, serviceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeDuplicateService,
				"service already added to this booking", nil)
		}

		usage = models.ServiceUsage{
			BookingID: bookingID,
			ServiceID: serviceID,
			Quantity:  quantity,
		}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		return s.recalcTotalTx(tx, &booking)
	})
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// recalcTotalTx rewrites booking.total_amount from current child records.
// Caller must hold the booking row lock.
func (s *BookingService) recalcTotalTx(tx *gorm.DB, booking *models.Booking) error {
	var room models.Room
	if err := tx.First(&room, booking.RoomID).Error; err != nil {
		return err
	}

	var usages []models.ServiceUsage
	if err := tx.Preload("Service").Where("booking_id = ?", booking.ID).Find(&usages).Error; err != nil {
		return err
	}

	total, err := RecalculateTotal(*booking, room, usages)
	if err != nil {
		return err
	}

	return tx.Model(booking).Update("total_amount", total).Error
}

// ChangeStatus moves a booking through the status machine.
func (s *BookingService) ChangeStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	probe := models.Booking{Status: newStatus}
	if err := probe.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
			}
			return err
		}

		if !CanTransition(booking.Status, newStatus) {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				"cannot change status from "+booking.Status+" to "+newStatus, errors.ErrInvalidTransition)
		}

		booking.Status = newStatus
		return commands.NewUpdateBookingCommand(&booking, tx).Execute()
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %d moved to %s", booking.ID, newStatus)
	return &booking, nil
}

// AutoCheckOutOverdue checks out every Checked-In booking whose stay ended
// before the given day. Run by the nightly cron job.
func (s *BookingService) AutoCheckOutOverdue(today time.Time) (int, error) {
	var overdue []models.Booking
	if err := s.db.Where("status = ? AND check_out_date <= ?",
		constants.BookingStatusCheckedIn, today).Find(&overdue).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, b := range overdue {
		if _, err := s.ChangeStatus(b.ID, constants.BookingStatusCheckedOut); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
