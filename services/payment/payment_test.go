package payment

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"hotel-reservation/models/hotel"
	"hotel-reservation/models/reservation"
	"hotel-reservation/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubClient struct {
	items      []LineItem
	successURL string
	cancelURL  string
	err        error
}

func (s *stubClient) CreateSession(items []LineItem, successURL, cancelURL string) (*Session, error) {
	s.items = items
	s.successURL = successURL
	s.cancelURL = cancelURL
	if s.err != nil {
		return nil, s.err
	}
	return &Session{ID: "cs_test_123", URL: "https://checkout.example/cs_test_123"}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&hotel.Hotel{}, &reservation.Reservation{}, &reservation.ReservationRoom{}))
	return db
}

func seedReservation(t *testing.T, db *gorm.DB, userID uint, total int) reservation.Reservation {
	h := hotel.Hotel{Name: "Nile Palace", Address: "2 River St", City: "Cairo", CompanyID: 1}
	require.NoError(t, db.Create(&h).Error)

	r := reservation.Reservation{
		UserID:       userID,
		HotelID:      h.ID,
		Adults:       2,
		CheckInDate:  time.Now().AddDate(0, 0, 7),
		CheckOutDate: time.Now().AddDate(0, 0, 10),
		RoomCount:    2,
		TotalPrice:   total,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestCreateCheckoutSessionBuildsLineItems(t *testing.T) {
	db := setupTestDB(t)
	r := seedReservation(t, db, 7, 240)

	client := &stubClient{}
	svc := NewService(db, client)

	session, err := svc.CreateCheckoutSession(types.AuthContext{UserID: 7}, r.ID, "http://localhost:3000")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.example/cs_test_123", session.URL)

	require.Len(t, client.items, 1)
	item := client.items[0]
	assert.Equal(t, "Hotel: Nile Palace, Rooms: 2", item.Name)
	assert.Equal(t, int64(24000), item.Amount, "amount is in the smallest currency unit")
	assert.Equal(t, "egp", item.Currency)
	assert.Equal(t, int64(1), item.Quantity)

	assert.Equal(t, "http://localhost:3000/api/customer/booking/checkout/success", client.successURL)
	assert.Equal(t, "http://localhost:3000/api/customer/booking/checkout/cancel", client.cancelURL)
}

func TestCreateCheckoutSessionRejectsForeignReservation(t *testing.T) {
	db := setupTestDB(t)
	r := seedReservation(t, db, 7, 240)

	svc := NewService(db, &stubClient{})

	_, err := svc.CreateCheckoutSession(types.AuthContext{UserID: 8}, r.ID, "http://localhost:3000")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestConfirmSuccessMarksOnlyCallersUnpaid(t *testing.T) {
	db := setupTestDB(t)
	mine := seedReservation(t, db, 7, 240)
	other := seedReservation(t, db, 8, 100)

	paid := seedReservation(t, db, 7, 300)
	require.NoError(t, db.Model(&paid).Update("is_paid", true).Error)

	svc := NewService(db, &stubClient{})

	n, err := svc.ConfirmSuccess(types.AuthContext{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var got reservation.Reservation
	require.NoError(t, db.First(&got, mine.ID).Error)
	assert.True(t, got.IsPaid)

	got = reservation.Reservation{}
	require.NoError(t, db.First(&got, other.ID).Error)
	assert.False(t, got.IsPaid, "other users' reservations stay untouched")
}
