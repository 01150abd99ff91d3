package reservation_actions

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

type ReservationService interface {
	Approve(ctx context.Context, capability domain.Capability, id int64, deposit *float64) (*models.TransitionResult, error)
	Reject(ctx context.Context, capability domain.Capability, id int64, reason *string) (*models.TransitionResult, error)
	MarkPaid(ctx context.Context, capability domain.Capability, id int64) (*models.TransitionResult, error)
	ResendPayment(ctx context.Context, capability domain.Capability, id int64) (*models.TransitionResult, error)
	RequestTransition(ctx context.Context, capability domain.Capability, id int64, req *models.TransitionRequest) (*models.TransitionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
