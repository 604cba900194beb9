package payment

import (
	"fmt"

	"hotel-reservation/constants"
	"hotel-reservation/metrics"
	"hotel-reservation/repository"
	"hotel-reservation/types"

	"gorm.io/gorm"
)

// LineItem is one externally-priced entry of a checkout session. Amount is in
// the currency's smallest unit.
type LineItem struct {
	Name     string
	Amount   int64
	Currency string
	Quantity int64
}

// Session is the hosted checkout flow the browser is redirected to.
type Session struct {
	ID  string
	URL string
}

// CheckoutClient opens hosted payment sessions. The Stripe implementation is
// the production one; tests substitute a stub.
type CheckoutClient interface {
	CreateSession(items []LineItem, successURL, cancelURL string) (*Session, error)
}

// Service bridges confirmed reservations to the payment gateway.
type Service struct {
	db     *gorm.DB
	client CheckoutClient
}

func NewService(db *gorm.DB, client CheckoutClient) *Service {
	return &Service{db: db, client: client}
}

// CreateCheckoutSession loads the caller's matching reservation with its
// hotel, builds one line item per reservation and opens a hosted session.
// The returned URL is where the browser goes next.
func (s *Service) CreateCheckoutSession(auth types.AuthContext, reservationID uint, baseURL string) (*Session, error) {
	reservations, err := repository.NewReservationRepository(s.db).ForUser(auth.UserID, reservationID)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	items := make([]LineItem, 0, len(reservations))
	for _, item := range reservations {
		items = append(items, LineItem{
			Name:     fmt.Sprintf("Hotel: %s, Rooms: %d", item.Hotel.Name, item.RoomCount),
			Amount:   int64(item.TotalPrice) * 100,
			Currency: constants.CheckoutCurrency,
			Quantity: 1,
		})
	}

	session, err := s.client.CreateSession(items,
		baseURL+"/api/customer/booking/checkout/success",
		baseURL+"/api/customer/booking/checkout/cancel",
	)
	if err != nil {
		return nil, err
	}

	metrics.IncCheckoutSession()
	return session, nil
}

// ConfirmSuccess handles the success redirect: the caller's unpaid
// reservations are marked paid. Returns how many reservations changed.
func (s *Service) ConfirmSuccess(auth types.AuthContext) (int64, error) {
	n, err := repository.NewReservationRepository(s.db).MarkPaid(auth.UserID)
	if err != nil {
		return 0, err
	}
	metrics.IncPaymentConfirmed()
	return n, nil
}
