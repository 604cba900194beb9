package booking

// BookingCreateRequest is the customer booking form. Dates arrive as
// "2006-01-02" strings and are normalized by the booking service.
type BookingCreateRequest struct {
	HotelID       uint   `json:"hotel_id" validate:"required"`
	RoomType      string `json:"room_type" validate:"required,oneof=single double suite family"`
	PricePerNight int    `json:"price_per_night" validate:"required,gt=0"`
	MealPrice     *int   `json:"meal_price,omitempty" validate:"omitempty,gte=0"`
	IncludesMeal  bool   `json:"includes_meal"`
	RoomCount     int    `json:"room_count" validate:"required,gt=0"`
	Adults        int    `json:"adults" validate:"required,gt=0"`
	Children      int    `json:"children" validate:"gte=0"`
	CheckInDate   string `json:"check_in_date" validate:"required"`
	CheckOutDate  string `json:"check_out_date" validate:"required"`
	CouponCode    string `json:"coupon_code" validate:"omitempty,max=50"`
}

// AvailabilityQuery selects a room-type offer inside one hotel.
type AvailabilityQuery struct {
	HotelID       uint   `json:"hotel_id" validate:"required"`
	RoomType      string `json:"room_type" validate:"required,oneof=single double suite family"`
	PricePerNight int    `json:"price_per_night" validate:"required,gt=0"`
	MealPrice     *int   `json:"meal_price,omitempty" validate:"omitempty,gte=0"`
}
