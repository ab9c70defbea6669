package internal

import (
	"asiapay/entity"
	"asiapay/services"
	"context"
	"sync"
)

type mockDatabase struct {
	mu            sync.Mutex
	orders        map[string]*entity.PaymentOrder
	notifications []*entity.NotificationRecord
	logs          []services.Data
	saveOrderErr  error
}

func newMockDatabase() *mockDatabase {
	return &mockDatabase{orders: map[string]*entity.PaymentOrder{}}
}

func (m *mockDatabase) WriteLogMessage(_ context.Context, data services.Data) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, data)
	return nil
}

func (m *mockDatabase) GetPaymentOrder(_ context.Context, orderRef string) (*entity.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderRef]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *mockDatabase) SavePaymentOrder(_ context.Context, order *entity.PaymentOrder) error {
	if m.saveOrderErr != nil {
		return m.saveOrderErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *order
	m.orders[order.OrderRef] = &copied
	return nil
}

func (m *mockDatabase) SaveNotification(_ context.Context, record *entity.NotificationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, record)
	return nil
}

func (m *mockDatabase) order(ref string) *entity.PaymentOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[ref]
}

type nopLogger struct{}

func (nopLogger) Debug(string)        {}
func (nopLogger) Info(string)         {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Error(string, error) {}
