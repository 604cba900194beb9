package booking

import (
	"context"
	"errors"

	"hotel-reservation/cache"
	"hotel-reservation/metrics"
	"hotel-reservation/models/reservation"
	"hotel-reservation/models/room"
	"hotel-reservation/repository"
	"hotel-reservation/types"
	bookingTypes "hotel-reservation/types/booking"
	"hotel-reservation/utils"

	"gorm.io/gorm"
)

// Failure kinds of the booking workflow.
var (
	ErrInsufficientAvailability = errors.New("not enough rooms are available")
	ErrInvalidCoupon            = errors.New("invalid or expired coupon")
	ErrInvalidDateRange         = errors.New("check-out date must be after check-in date")
)

// Service runs the booking workflow. The cache is optional; a nil cache means
// every browse goes to the database.
type Service struct {
	db    *gorm.DB
	cache *cache.RoomCache
}

func NewService(db *gorm.DB, roomCache *cache.RoomCache) *Service {
	return &Service{db: db, cache: roomCache}
}

// ListAvailableByType returns a hotel's rooms of one category for the browse
// view. No availability filter is applied here; cached copies are fine.
func (s *Service) ListAvailableByType(ctx context.Context, hotelID uint, roomType string) ([]room.Room, error) {
	if s.cache != nil {
		if rooms, ok, err := s.cache.GetBrowse(ctx, hotelID, roomType); err == nil && ok {
			return rooms, nil
		}
		// Cache errors fall through to the database.
	}

	rooms, err := repository.NewRoomRepository(s.db).ListByType(hotelID, roomType)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetBrowse(ctx, hotelID, roomType, rooms)
	}
	return rooms, nil
}

// AvailableCount re-derives the advisory availability count for an offer. It
// is never cached: the booking step repeats the same query inside its
// transaction.
func (s *Service) AvailableCount(q bookingTypes.AvailabilityQuery) (int64, error) {
	return repository.NewRoomRepository(s.db).CountAvailable(q.HotelID, q.RoomType, q.PricePerNight, q.MealPrice)
}

// CreateBooking reserves rooms for the caller. Availability re-check, coupon
// redemption, the reservation row, its room links and the availability flags
// all commit in one transaction; any failure rolls everything back.
func (s *Service) CreateBooking(ctx context.Context, auth types.AuthContext, req bookingTypes.BookingCreateRequest) (*reservation.Reservation, error) {
	checkIn, err := utils.ParseDay(req.CheckInDate)
	if err != nil {
		metrics.IncBookingRejected("invalid_dates")
		return nil, ErrInvalidDateRange
	}
	checkOut, err := utils.ParseDay(req.CheckOutDate)
	if err != nil || !checkOut.After(checkIn) {
		metrics.IncBookingRejected("invalid_dates")
		return nil, ErrInvalidDateRange
	}

	var created reservation.Reservation

	err = s.db.Transaction(func(tx *gorm.DB) error {
		rooms := repository.NewRoomRepository(tx)

		available, err := rooms.AvailableByType(req.HotelID, req.RoomType, req.PricePerNight, req.MealPrice)
		if err != nil {
			return err
		}
		if len(available) < req.RoomCount {
			return ErrInsufficientAvailability
		}

		selectedType := available[0].RoomType
		totalPrice := selectedType.PricePerNight * req.RoomCount
		if req.IncludesMeal && selectedType.MealPrice != nil {
			totalPrice += *selectedType.MealPrice * req.RoomCount
		}

		if req.CouponCode != "" {
			coupons := repository.NewCouponRepository(tx)
			cpn, err := coupons.GetByCode(req.CouponCode)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidCoupon
				}
				return err
			}
			if cpn.Limit <= 0 {
				return ErrInvalidCoupon
			}
			totalPrice -= cpn.Discount
			cpn.Limit--
			if err := coupons.Update(cpn); err != nil {
				return err
			}
		}

		created = reservation.Reservation{
			UserID:       auth.UserID,
			HotelID:      req.HotelID,
			Adults:       req.Adults,
			Children:     req.Children,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			RoomCount:    req.RoomCount,
			TotalPrice:   totalPrice,
		}
		if err := repository.NewReservationRepository(tx).Create(&created); err != nil {
			return err
		}

		// Consume the first RoomCount rows of the availability query; the
		// ordering is the query's id order, nothing fairer.
		links := repository.New[reservation.ReservationRoom](tx)
		for i := 0; i < req.RoomCount; i++ {
			rm := available[i]
			if err := rooms.MarkUnavailable(rm.ID); err != nil {
				return err
			}
			link := reservation.ReservationRoom{ReservationID: created.ID, RoomID: rm.ID}
			if err := links.Create(&link); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientAvailability):
			metrics.IncBookingRejected("insufficient_availability")
		case errors.Is(err, ErrInvalidCoupon):
			metrics.IncBookingRejected("invalid_coupon")
		default:
			metrics.IncBookingRejected("error")
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	if s.cache != nil {
		_ = s.cache.InvalidateHotel(ctx, req.HotelID)
	}
	return &created, nil
}
