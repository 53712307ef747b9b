package mocks

import (
	"context"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLedger struct {
	mock.Mock
	domain.Ledger
}

func (m *MockLedger) Record(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockLedger) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}
