package customer

import (
	"errors"
	"fmt"
	"strconv"

	"hotel-reservation/logger"
	"hotel-reservation/models/hotel"
	"hotel-reservation/repository"
	bookingService "hotel-reservation/services/booking"
	paymentService "hotel-reservation/services/payment"
	"hotel-reservation/types"
	bookingTypes "hotel-reservation/types/booking"
	"hotel-reservation/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles the customer booking and payment endpoints.
type BookingController struct {
	DB      *gorm.DB
	Booking *bookingService.Service
	Payment *paymentService.Service
}

func NewBookingController(db *gorm.DB, booking *bookingService.Service, payment *paymentService.Service) *BookingController {
	return &BookingController{DB: db, Booking: booking, Payment: payment}
}

// Filter lists a hotel's rooms of one category for browsing. Availability is
// not filtered here.
func (bc *BookingController) Filter(c *fiber.Ctx) error {
	hotelID, err := c.ParamsInt("id")
	if err != nil || hotelID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid hotel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	roomType := c.Query("room_type")
	if roomType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "room_type is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	rooms, err := bc.Booking.ListAvailableByType(c.Context(), uint(hotelID), roomType)
	if err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list rooms",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rooms fetched successfully",
		Data:    rooms,
	})
}

// Availability returns the hotel together with the advisory count of
// available rooms for the requested offer.
func (bc *BookingController) Availability(c *fiber.Ctx) error {
	hotelID, err := c.ParamsInt("id")
	if err != nil || hotelID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid hotel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	h, err := repository.New[hotel.Hotel](bc.DB).GetOne(repository.Where("id = ?", hotelID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Hotel not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load hotel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	q := bookingTypes.AvailabilityQuery{
		HotelID:       uint(hotelID),
		RoomType:      c.Query("room_type"),
		PricePerNight: c.QueryInt("price_per_night"),
	}
	if mp := c.Query("meal_price"); mp != "" {
		v, err := strconv.Atoi(mp)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Invalid meal_price",
				Status:  fiber.StatusBadRequest,
			})
		}
		q.MealPrice = &v
	}

	if msgs := utils.ValidateStruct(q); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Validation failed",
			Status:  fiber.StatusBadRequest,
			Errors:  msgs,
		})
	}

	count, err := bc.Booking.AvailableCount(q)
	if err != nil {
		logger.Error("Failed to count available rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Availability fetched successfully",
		Data: fiber.Map{
			"hotel":           h,
			"available_rooms": count,
		},
	})
}

// Index lists the caller's reservations, newest first.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	auth, ok := middlewareAuth(c)
	if !ok {
		return unauthenticated(c)
	}

	reservations, err := repository.NewReservationRepository(bc.DB).ListForUser(auth.UserID)
	if err != nil {
		logger.Error("Failed to list reservations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reservations fetched successfully",
		Data:    reservations,
	})
}

// Store creates a booking for the authenticated customer.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	auth, ok := middlewareAuth(c)
	if !ok {
		return unauthenticated(c)
	}

	if msgs := utils.ValidateStruct(req); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Validation failed",
			Status:  fiber.StatusBadRequest,
			Errors:  msgs,
		})
	}

	created, err := bc.Booking.CreateBooking(c.Context(), auth, req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrInvalidDateRange):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid date range",
				Data:    nil,
			})
		case errors.Is(err, bookingService.ErrInsufficientAvailability):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Not enough rooms are available. Please adjust your selection.",
				Data:    nil,
			})
		case errors.Is(err, bookingService.ErrInvalidCoupon):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid or expired coupon.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", created.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking successful!",
		Data:    created,
	})
}

// Pay opens a hosted checkout session for one of the caller's reservations
// and returns the redirect URL.
func (bc *BookingController) Pay(c *fiber.Ctx) error {
	reservationID, err := c.ParamsInt("id")
	if err != nil || reservationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid reservation id",
			Status:  fiber.StatusBadRequest,
		})
	}

	auth, ok := middlewareAuth(c)
	if !ok {
		return unauthenticated(c)
	}

	session, err := bc.Payment.CreateCheckoutSession(auth, uint(reservationID), c.BaseURL())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Reservation not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to create checkout session", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to create checkout session",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Checkout session created",
		Data: fiber.Map{
			"session_id":   session.ID,
			"checkout_url": session.URL,
		},
	})
}

// CheckoutSuccess marks the caller's unpaid reservations paid.
func (bc *BookingController) CheckoutSuccess(c *fiber.Ctx) error {
	auth, ok := middlewareAuth(c)
	if !ok {
		return unauthenticated(c)
	}

	confirmed, err := bc.Payment.ConfirmSuccess(auth)
	if err != nil {
		logger.Error("Failed to confirm payment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to confirm payment",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Payment confirmed for user %d (%d reservations)", auth.UserID, confirmed))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment successful! Your reservations have been confirmed.",
		Data:    fiber.Map{"confirmed": confirmed},
	})
}

// CancelCheckout only surfaces a message; nothing changes.
func (bc *BookingController) CancelCheckout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Your payment was canceled. Please try again if you'd like to complete your booking.",
		Data:    nil,
	})
}
