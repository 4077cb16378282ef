package store

import (
	"testing"

	"pizzeria/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOrderPersister struct {
	saves []models.Order
}

func (p *recordingOrderPersister) SaveOrder(order models.Order) error {
	p.saves = append(p.saves, order)
	return nil
}

func newOrder(email string) models.Order {
	return models.Order{
		CustomerID:    email,
		Lines:         []models.CartLine{{ItemID: 1, Name: "Pizza", UnitPrice: 189, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
		Status:        models.OrderPending,
		Total:         219,
	}
}

func TestAppendAssignsDenseIDs(t *testing.T) {
	ledger := NewLedger(nil, nil)

	first := ledger.Append(newOrder("a@example.com"))
	second := ledger.Append(newOrder("b@example.com"))
	third := ledger.Append(newOrder("a@example.com"))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, uint(3), third.ID)
	assert.Len(t, ledger.Orders(), 3)
}

func TestOrdersByCustomer(t *testing.T) {
	ledger := NewLedger(nil, nil)
	ledger.Append(newOrder("a@example.com"))
	ledger.Append(newOrder("b@example.com"))
	ledger.Append(newOrder("a@example.com"))

	mine := ledger.OrdersByCustomer("a@example.com")
	require.Len(t, mine, 2)
	assert.Equal(t, uint(1), mine[0].ID)
	assert.Equal(t, uint(3), mine[1].ID)
	assert.Empty(t, ledger.OrdersByCustomer("nobody@example.com"))
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	ledger := NewLedger(nil, nil)
	order := ledger.Append(newOrder("a@example.com"))

	updated, ok := ledger.SetStatus(order.ID, models.OrderDelivered)
	require.True(t, ok)
	assert.Equal(t, models.OrderDelivered, updated.Status)

	// no terminal state: delivered can go back to pending
	updated, ok = ledger.SetStatus(order.ID, models.OrderPending)
	require.True(t, ok)
	assert.Equal(t, models.OrderPending, updated.Status)

	_, ok = ledger.SetStatus(99, models.OrderDelivered)
	assert.False(t, ok)
}

func TestAppendMessageIDsPerThread(t *testing.T) {
	ledger := NewLedger(nil, nil)
	order := ledger.Append(newOrder("a@example.com"))
	other := ledger.Append(newOrder("b@example.com"))

	msg1, ok := ledger.AppendMessage(order.ID, models.AuthorCustomer, "is it on the way?")
	require.True(t, ok)
	msg2, ok := ledger.AppendMessage(order.ID, models.AuthorAdmin, "leaving now")
	require.True(t, ok)
	otherMsg, ok := ledger.AppendMessage(other.ID, models.AuthorCustomer, "hello")
	require.True(t, ok)

	assert.Equal(t, uint(1), msg1.ID)
	assert.Equal(t, uint(2), msg2.ID)
	assert.Equal(t, uint(1), otherMsg.ID, "message ids are scoped to their order")
	assert.False(t, msg1.Read)

	_, ok = ledger.AppendMessage(99, models.AuthorCustomer, "anyone?")
	assert.False(t, ok, "unknown order is a silent no-op")
}

func TestMarkThreadReadCoversBothAuthors(t *testing.T) {
	ledger := NewLedger(nil, nil)
	order := ledger.Append(newOrder("a@example.com"))
	ledger.AppendMessage(order.ID, models.AuthorCustomer, "question")
	ledger.AppendMessage(order.ID, models.AuthorAdmin, "answer")

	require.True(t, ledger.MarkThreadRead(order.ID))

	got, _ := ledger.Order(order.ID)
	require.Len(t, got.Messages, 2)
	for _, msg := range got.Messages {
		assert.True(t, msg.Read)
	}

	assert.False(t, ledger.MarkThreadRead(99))
}

func TestUnreadCounts(t *testing.T) {
	ledger := NewLedger(nil, nil)
	first := ledger.Append(newOrder("a@example.com"))
	second := ledger.Append(newOrder("b@example.com"))

	ledger.AppendMessage(first.ID, models.AuthorCustomer, "one")
	ledger.AppendMessage(first.ID, models.AuthorCustomer, "two")
	// admin messages never count toward the admin badge
	ledger.AppendMessage(first.ID, models.AuthorAdmin, "reply")
	ledger.AppendMessage(second.ID, models.AuthorAdmin, "hi")

	got, _ := ledger.Order(first.ID)
	assert.Equal(t, 2, got.UnreadFromCustomer())
	assert.Equal(t, 1, ledger.OrdersWithUnread())

	ledger.MarkThreadRead(first.ID)
	got, _ = ledger.Order(first.ID)
	assert.Equal(t, 0, got.UnreadFromCustomer())
	assert.Equal(t, 0, ledger.OrdersWithUnread())
}

func TestLedgerPersistsAfterMutation(t *testing.T) {
	persister := &recordingOrderPersister{}
	ledger := NewLedger(nil, persister)

	order := ledger.Append(newOrder("a@example.com"))
	require.Len(t, persister.saves, 1)
	assert.Equal(t, uint(1), persister.saves[0].ID)

	ledger.SetStatus(order.ID, models.OrderInProgress)
	require.Len(t, persister.saves, 2)
	assert.Equal(t, models.OrderInProgress, persister.saves[1].Status)

	ledger.AppendMessage(order.ID, models.AuthorCustomer, "hi")
	require.Len(t, persister.saves, 3)
	assert.Len(t, persister.saves[2].Messages, 1)

	// read flags already true: nothing new to persist
	ledger.MarkThreadRead(order.ID)
	require.Len(t, persister.saves, 4)
	ledger.MarkThreadRead(order.ID)
	assert.Len(t, persister.saves, 4)
}

func TestLedgerReturnsClones(t *testing.T) {
	ledger := NewLedger(nil, nil)
	order := ledger.Append(newOrder("a@example.com"))
	ledger.AppendMessage(order.ID, models.AuthorCustomer, "hi")

	got, _ := ledger.Order(order.ID)
	got.Messages[0].Content = "tampered"
	got.Lines[0].Quantity = 99

	fresh, _ := ledger.Order(order.ID)
	assert.Equal(t, "hi", fresh.Messages[0].Content)
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
}
