package store

import (
	"log"
	"sync"
	"time"

	"pizzeria/internal/models"
)

// OrderPersister mirrors ledger mutations to durable storage after they have
// been applied in memory.
type OrderPersister interface {
	SaveOrder(models.Order) error
}

// Ledger is the append-only collection of submitted orders. Orders are never
// deleted; only status, the message thread and message read flags change
// after submission. Ids are assigned densely in submission order.
type Ledger struct {
	mu        sync.RWMutex
	orders    []models.Order
	persister OrderPersister
}

func NewLedger(orders []models.Order, persister OrderPersister) *Ledger {
	cloned := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		cloned = append(cloned, o.Clone())
	}
	return &Ledger{orders: cloned, persister: persister}
}

// Append assigns id = ledger size + 1 and records the order. The id is a
// plain counter; it stays collision-free because orders are never removed.
func (l *Ledger) Append(order models.Order) models.Order {
	l.mu.Lock()
	order.ID = uint(len(l.orders)) + 1
	l.orders = append(l.orders, order.Clone())
	l.mu.Unlock()
	l.persist(order)
	return order
}

func (l *Ledger) Orders() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]models.Order, 0, len(l.orders))
	for _, o := range l.orders {
		result = append(result, o.Clone())
	}
	return result
}

func (l *Ledger) Order(id uint) (models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

// OrdersByCustomer returns the orders whose customer id (email) matches.
func (l *Ledger) OrdersByCustomer(email string) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var result []models.Order
	for _, o := range l.orders {
		if o.CustomerID == email {
			result = append(result, o.Clone())
		}
	}
	return result
}

// SetStatus sets the order's status to any of the three states. Transitions
// are not ordered; a delivered order may go back to pending.
func (l *Ledger) SetStatus(id uint, status models.OrderStatus) (models.Order, bool) {
	l.mu.Lock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			updated := l.orders[i].Clone()
			l.mu.Unlock()
			l.persist(updated)
			return updated, true
		}
	}
	l.mu.Unlock()
	return models.Order{}, false
}

// AppendMessage adds an unread message with id = thread length + 1. An
// unknown order id is a silent no-op.
func (l *Ledger) AppendMessage(orderID uint, author models.MessageAuthor, content string) (models.Message, bool) {
	l.mu.Lock()
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			msg := models.Message{
				ID:        uint(len(l.orders[i].Messages)) + 1,
				Author:    author,
				Content:   content,
				CreatedAt: time.Now(),
				Read:      false,
			}
			l.orders[i].Messages = append(l.orders[i].Messages, msg)
			updated := l.orders[i].Clone()
			l.mu.Unlock()
			l.persist(updated)
			return msg, true
		}
	}
	l.mu.Unlock()
	return models.Message{}, false
}

// MarkThreadRead flags every message in the order's thread as read,
// regardless of author. Invoked when a party opens the order's detail view.
func (l *Ledger) MarkThreadRead(orderID uint) bool {
	l.mu.Lock()
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			changed := false
			for j := range l.orders[i].Messages {
				if !l.orders[i].Messages[j].Read {
					l.orders[i].Messages[j].Read = true
					changed = true
				}
			}
			updated := l.orders[i].Clone()
			l.mu.Unlock()
			if changed {
				l.persist(updated)
			}
			return true
		}
	}
	l.mu.Unlock()
	return false
}

// OrdersWithUnread counts orders carrying at least one unread customer
// message, for the admin summary badge.
func (l *Ledger) OrdersWithUnread() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, o := range l.orders {
		if o.UnreadFromCustomer() > 0 {
			count++
		}
	}
	return count
}

func (l *Ledger) persist(order models.Order) {
	if l.persister == nil {
		return
	}
	if err := l.persister.SaveOrder(order); err != nil {
		log.Printf("Failed to persist order %d: %v", order.ID, err)
	}
}
