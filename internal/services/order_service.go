package services

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/models"
	"pizzeria/internal/store"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingDelivery      = errors.New("delivery address and neighborhood are required")
	ErrInvalidPayment       = errors.New("payment method must be cash or transfer")
	ErrMissingTransferProof = errors.New("transfer proof is required for transfer payments")
	ErrInvalidStatus        = errors.New("status must be pending, in-progress or delivered")
	ErrOrderNotFound        = errors.New("order not found")
)

type CheckoutInput struct {
	Delivery      models.DeliveryInfo  `json:"delivery"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	TransferProof string               `json:"transfer_proof"`
	Note          string               `json:"note"`
}

// OrderSummary pairs an order with its unread customer-message count for the
// admin order list.
type OrderSummary struct {
	Order  models.Order `json:"order"`
	Unread int          `json:"unread"`
}

type OrderService interface {
	Checkout(token string, user models.User, in CheckoutInput) (models.Order, error)
	Orders() []models.Order
	OrderSummaries() ([]OrderSummary, int)
	Order(id uint) (models.Order, error)
	OrdersForCustomer(email string) []models.Order
	OrderForCustomer(email string, id uint) (models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) (models.Order, error)
	PostMessage(orderID uint, author models.MessageAuthor, content string)
	MarkThreadRead(orderID uint)
}

type orderService struct {
	ledger   *store.Ledger
	sessions SessionStore
}

func NewOrderService(ledger *store.Ledger, sessions SessionStore) OrderService {
	return &orderService{ledger: ledger, sessions: sessions}
}

// Checkout validates the session's cart and delivery details, snapshots the
// cart into a pending order and clears the cart. An optional note becomes the
// order's first customer message, unread.
func (s *orderService) Checkout(token string, user models.User, in CheckoutInput) (models.Order, error) {
	cart, err := s.sessions.LoadCart(token)
	if err != nil {
		return models.Order{}, err
	}

	if cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(in.Delivery.Address) == "" || strings.TrimSpace(in.Delivery.Neighborhood) == "" {
		return models.Order{}, ErrMissingDelivery
	}
	if !in.PaymentMethod.Valid() {
		return models.Order{}, ErrInvalidPayment
	}
	if in.PaymentMethod == models.PaymentTransfer && in.TransferProof == "" {
		return models.Order{}, ErrMissingTransferProof
	}

	now := time.Now()
	var messages []models.Message
	if note := strings.TrimSpace(in.Note); note != "" {
		messages = append(messages, models.Message{
			ID:        1,
			Author:    models.AuthorCustomer,
			Content:   note,
			CreatedAt: now,
			Read:      false,
		})
	}

	proof := ""
	if in.PaymentMethod == models.PaymentTransfer {
		proof = in.TransferProof
	}

	order := models.Order{
		CustomerID:    user.Email,
		CustomerName:  user.Name,
		CustomerPhone: user.Phone,
		Lines:         append([]models.CartLine(nil), cart.Lines...),
		Delivery:      in.Delivery,
		PaymentMethod: in.PaymentMethod,
		TransferProof: proof,
		Messages:      messages,
		Total:         cart.Totals().Total,
		Status:        models.OrderPending,
		CreatedAt:     now,
	}

	order = s.ledger.Append(order)

	if err := s.sessions.ClearCart(token); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) Orders() []models.Order {
	return s.ledger.Orders()
}

// OrderSummaries returns every order with its unread count plus the number of
// orders holding any unread customer message.
func (s *orderService) OrderSummaries() ([]OrderSummary, int) {
	orders := s.ledger.Orders()
	summaries := make([]OrderSummary, 0, len(orders))
	withUnread := 0
	for _, o := range orders {
		unread := o.UnreadFromCustomer()
		if unread > 0 {
			withUnread++
		}
		summaries = append(summaries, OrderSummary{Order: o, Unread: unread})
	}
	return summaries, withUnread
}

func (s *orderService) Order(id uint) (models.Order, error) {
	order, ok := s.ledger.Order(id)
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) OrdersForCustomer(email string) []models.Order {
	return s.ledger.OrdersByCustomer(email)
}

// OrderForCustomer hides other customers' orders behind not-found.
func (s *orderService) OrderForCustomer(email string, id uint) (models.Order, error) {
	order, ok := s.ledger.Order(id)
	if !ok || order.CustomerID != email {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus accepts any of the three states as a direct target. There is
// no transition table and no terminal state; reverting delivered to pending
// is allowed.
func (s *orderService) UpdateStatus(id uint, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidStatus
	}
	order, ok := s.ledger.SetStatus(id, status)
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// PostMessage appends to the order's thread. Unknown order ids and blank
// content are silently ignored.
func (s *orderService) PostMessage(orderID uint, author models.MessageAuthor, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	s.ledger.AppendMessage(orderID, author, content)
}

// MarkThreadRead is the blunt mark-all-read applied when a party opens the
// order's detail view.
func (s *orderService) MarkThreadRead(orderID uint) {
	s.ledger.MarkThreadRead(orderID)
}
