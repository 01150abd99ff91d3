package reservations

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/internal/integrations/stripe"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// Тексты предупреждений о сбоях побочных эффектов
const (
	warnEmailFailed    = "email notification could not be sent"
	warnEventFailed    = "lifecycle event could not be published"
	warnCalendarFailed = "dates could not be blocked in the property calendar"
	warnCalendarSaved  = "calendar reservation id could not be saved"
)

// Метки внешних сервисов для метрик
const (
	upstreamStripe = "stripe"
	upstreamSmoobu = "smoobu"
	upstreamMail   = "smtp"
	upstreamEvents = "redis"
)

// Service машина состояний бронирования
// Каждый переход - один условный UPDATE, затем побочные эффекты по принципу best-effort
type Service struct {
	repo         ReservationRepository
	links        PaymentLinkProvider
	notifier     Notifier
	calendar     CalendarBlocker
	events       EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	currency     string
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	links PaymentLinkProvider,
	notifier Notifier,
	calendar CalendarBlocker,
	events EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	currency string,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		links:        links,
		notifier:     notifier,
		calendar:     calendar,
		events:       events,
		metrics:      metrics,
		timeProvider: timeProvider,
		currency:     currency,
		logger:       logger,
	}
}

// Get получает бронирование, доступное запросу
func (s *Service) Get(ctx context.Context, capability domain.Capability, id int64) (*models.ReservationResponse, error) {
	r, err := s.load(ctx, capability, id, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(r), nil
}

// List получает список бронирований (только оператор)
func (s *Service) List(ctx context.Context, capability domain.Capability, status *string) (*models.ReservationListResponse, error) {
	if !capability.IsFull() {
		s.logger.Warn("List: access denied for capability=%s", capability)
		return nil, ErrAccessDenied
	}

	filter := domain.ReservationFilter{}
	if status != nil && *status != "" {
		st, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &st
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Approve одобряет заявку: создает ссылку на оплату депозита и переводит в approved
// Если ссылку создать не удалось - бронирование не меняется
func (s *Service) Approve(ctx context.Context, capability domain.Capability, id int64, deposit *float64) (*models.TransitionResult, error) {
	s.logger.Info("Approve: reservation id=%d by %s", id, capability)

	r, err := s.loadForAction(ctx, capability, id, domain.ActionApprove)
	if err != nil {
		return nil, err
	}

	// предложенный депозит не может превышать сумму к оплате (промокод мог ее уменьшить)
	amount := math.Min(r.DepositAmount, math.Round(r.AmountDue()*100)/100)
	if deposit != nil {
		amount = *deposit
	}
	if amount <= 0 || amount > r.AmountDue() {
		s.logger.Warn("Approve: invalid deposit %.2f for reservation id=%d (due %.2f)", amount, id, r.AmountDue())
		return nil, fmt.Errorf("%w: deposit must be in (0, %.2f]", ErrInvalidInput, r.AmountDue())
	}

	link, err := s.createLink(ctx, r, amount)
	if err != nil {
		s.metrics.IncTransition(string(domain.ActionApprove), "upstream_error")
		return nil, err
	}

	change := domain.StatusChange{
		From:           domain.StatusPending,
		To:             domain.StatusApproved,
		DepositAmount:  &amount,
		PaymentLinkURL: &link,
	}
	if err := s.applyChange(ctx, r, domain.ActionApprove, change); err != nil {
		return nil, err
	}

	r.DepositAmount = amount
	r.StripePaymentLinkURL = &link

	warnings := s.sideEffects(ctx, r, mailer.KindApproved, domain.EventApproved)

	s.logger.Info("Approve: reservation id=%d approved, deposit=%.2f", id, amount)
	return s.result(r, true, warnings), nil
}

// Reject отклоняет заявку с необязательной причиной
func (s *Service) Reject(ctx context.Context, capability domain.Capability, id int64, reason *string) (*models.TransitionResult, error) {
	s.logger.Info("Reject: reservation id=%d by %s", id, capability)

	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if len([]rune(trimmed)) > domain.MaxRejectionReasonLength {
			return nil, fmt.Errorf("%w: rejection reason exceeds %d characters", ErrInvalidInput, domain.MaxRejectionReasonLength)
		}
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	r, err := s.loadForAction(ctx, capability, id, domain.ActionReject)
	if err != nil {
		return nil, err
	}

	change := domain.StatusChange{
		From:            domain.StatusPending,
		To:              domain.StatusRejected,
		RejectionReason: reason,
	}
	if err := s.applyChange(ctx, r, domain.ActionReject, change); err != nil {
		return nil, err
	}

	r.RejectionReason = reason

	warnings := s.sideEffects(ctx, r, mailer.KindRejected, domain.EventRejected)

	s.logger.Info("Reject: reservation id=%d rejected", id)
	return s.result(r, true, warnings), nil
}

// MarkPaid фиксирует оплату депозита и блокирует даты в PMS
// Сбой PMS или письма не откатывает статус, а попадает в предупреждения
func (s *Service) MarkPaid(ctx context.Context, capability domain.Capability, id int64) (*models.TransitionResult, error) {
	s.logger.Info("MarkPaid: reservation id=%d by %s", id, capability)

	r, err := s.loadForAction(ctx, capability, id, domain.ActionMarkPaid)
	if err != nil {
		return nil, err
	}

	change := domain.StatusChange{
		From: domain.StatusApproved,
		To:   domain.StatusPaid,
	}
	if err := s.applyChange(ctx, r, domain.ActionMarkPaid, change); err != nil {
		return nil, err
	}

	warnings := make([]string, 0)
	warnings = append(warnings, s.blockCalendar(ctx, r)...)
	warnings = append(warnings, s.sideEffects(ctx, r, mailer.KindPaid, domain.EventPaid)...)

	s.logger.Info("MarkPaid: reservation id=%d paid, %d warning(s)", id, len(warnings))
	return s.result(r, true, warnings), nil
}

// ResendPayment повторно отправляет гостю ссылку на оплату
// Новая ссылка создается, только если сохраненной нет
func (s *Service) ResendPayment(ctx context.Context, capability domain.Capability, id int64) (*models.TransitionResult, error) {
	s.logger.Info("ResendPayment: reservation id=%d by %s", id, capability)

	r, err := s.loadForAction(ctx, capability, id, domain.ActionResendPayment)
	if err != nil {
		return nil, err
	}

	changed := false
	if r.StripePaymentLinkURL == nil || *r.StripePaymentLinkURL == "" {
		link, err := s.createLink(ctx, r, r.DepositAmount)
		if err != nil {
			s.metrics.IncTransition(string(domain.ActionResendPayment), "upstream_error")
			return nil, err
		}

		change := domain.StatusChange{
			From:           domain.StatusApproved,
			To:             domain.StatusApproved,
			PaymentLinkURL: &link,
		}
		if err := s.applyChange(ctx, r, domain.ActionResendPayment, change); err != nil {
			return nil, err
		}
		r.StripePaymentLinkURL = &link
		changed = true
	} else {
		s.metrics.IncTransition(string(domain.ActionResendPayment), "ok")
	}

	warnings := make([]string, 0)
	if err := s.notifier.Notify(ctx, mailer.KindApproved, r); err != nil {
		s.logger.Error("ResendPayment: failed to send payment link for reservation id=%d: %v", id, err)
		s.metrics.IncUpstreamError(upstreamMail)
		warnings = append(warnings, warnEmailFailed)
	}

	s.logger.Info("ResendPayment: payment link sent for reservation id=%d", id)
	return s.result(r, changed, warnings), nil
}

// RequestTransition обрабатывает перенос карточки в колонку канбана
// Перенос в текущую колонку - no-op; колонки без действия отклоняются
func (s *Service) RequestTransition(ctx context.Context, capability domain.Capability, id int64, req *models.TransitionRequest) (*models.TransitionResult, error) {
	target, err := models.ToDomainStatus(req.Target)
	if err != nil {
		s.logger.Warn("RequestTransition: invalid target status=%q for reservation id=%d", req.Target, id)
		return nil, fmt.Errorf("%w: invalid target status", ErrInvalidInput)
	}

	r, err := s.load(ctx, capability, id, "RequestTransition")
	if err != nil {
		return nil, err
	}

	if r.Status == target {
		s.logger.Info("RequestTransition: reservation id=%d already %s, nothing to do", id, target)
		return s.result(r, false, nil), nil
	}

	action, ok := domain.ActionForColumn(target)
	if !ok {
		s.logger.Warn("RequestTransition: no action for %s -> %s, reservation id=%d", r.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoMappedAction, r.Status, target)
	}

	s.logger.Info("RequestTransition: reservation id=%d %s -> %s mapped to %s", id, r.Status, target, action)

	switch action {
	case domain.ActionApprove:
		return s.Approve(ctx, capability, id, req.DepositAmount)
	case domain.ActionReject:
		return s.Reject(ctx, capability, id, req.RejectionReason)
	case domain.ActionMarkPaid:
		return s.MarkPaid(ctx, capability, id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoMappedAction, action)
	}
}

// Вспомогательные методы

// load получает бронирование и проверяет права запроса
func (s *Service) load(ctx context.Context, capability domain.Capability, id int64, op string) (*domain.Reservation, error) {
	if capability.IsDenied() {
		s.logger.Warn("%s: access denied for reservation id=%d", op, id)
		return nil, ErrAccessDenied
	}

	if !capability.Allows(id) {
		s.logger.Warn("%s: capability=%s does not cover reservation id=%d", op, capability, id)
		return nil, ErrAccessDenied
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return r, nil
}

// loadForAction получает бронирование и проверяет, что действие допустимо из текущего статуса
func (s *Service) loadForAction(ctx context.Context, capability domain.Capability, id int64, action domain.Action) (*domain.Reservation, error) {
	op := actionOp(action)

	r, err := s.load(ctx, capability, id, op)
	if err != nil {
		return nil, err
	}

	if !r.CanApply(action) {
		required, _ := domain.RequiredStatus(action)
		s.logger.Warn("%s: reservation id=%d is %s, requires %s", op, id, r.Status, required)
		s.metrics.IncTransition(string(action), "invalid")
		return nil, fmt.Errorf("%w: %s requires status %s, got %s", ErrInvalidTransition, action, required, r.Status)
	}

	return r, nil
}

// applyChange выполняет условное обновление статуса
func (s *Service) applyChange(ctx context.Context, r *domain.Reservation, action domain.Action, change domain.StatusChange) error {
	op := actionOp(action)

	if err := s.repo.UpdateStatus(ctx, r.ID, change); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrStatusConflict):
			s.logger.Warn("%s: reservation id=%d left %s concurrently", op, r.ID, change.From)
			s.metrics.IncTransition(string(action), "conflict")
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("%s: reservation id=%d not found during update", op, r.ID)
			return ErrNotFound
		default:
			s.logger.Error("%s: repository error for reservation id=%d: %v", op, r.ID, err)
			s.metrics.IncTransition(string(action), "error")
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}

	r.Status = change.To
	r.UpdatedAt = s.timeProvider.Now()
	s.metrics.IncTransition(string(action), "ok")
	return nil
}

// createLink создает ссылку на оплату депозита
func (s *Service) createLink(ctx context.Context, r *domain.Reservation, amount float64) (string, error) {
	link, err := s.links.CreateLink(ctx, stripe.LinkRequest{
		ReservationID: r.ID,
		Amount:        amount,
		Currency:      s.currency,
		Description:   fmt.Sprintf("Deposit, reservation #%d (%s - %s)", r.ID, r.ArrivalDate, r.DepartureDate),
		CustomerEmail: r.Email,
	})
	if err != nil {
		s.logger.Error("createLink: payment link failed for reservation id=%d: %v", r.ID, err)
		s.metrics.IncUpstreamError(upstreamStripe)
		return "", fmt.Errorf("%w: payment link: %v", ErrUpstreamUnavailable, err)
	}
	return link, nil
}

// blockCalendar блокирует даты в PMS и сохраняет id брони PMS
func (s *Service) blockCalendar(ctx context.Context, r *domain.Reservation) []string {
	notice := ""
	if r.Message != nil {
		notice = *r.Message
	}

	smoobuID, err := s.calendar.BlockDates(ctx, smoobu.BlockRequest{
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Guests:        r.Guests,
		Price:         r.AmountDue(),
		Notice:        notice,
	})
	if err != nil {
		s.logger.Error("MarkPaid: failed to block dates for reservation id=%d: %v", r.ID, err)
		s.metrics.IncUpstreamError(upstreamSmoobu)
		return []string{warnCalendarFailed}
	}

	if err := s.repo.SetSmoobuReservationID(ctx, r.ID, smoobuID); err != nil {
		s.logger.Error("MarkPaid: failed to save smoobu id=%d for reservation id=%d: %v", smoobuID, r.ID, err)
		return []string{warnCalendarSaved}
	}

	r.SmoobuReservationID = &smoobuID
	return nil
}

// sideEffects письмо гостю и событие жизненного цикла
func (s *Service) sideEffects(ctx context.Context, r *domain.Reservation, kind mailer.Kind, event domain.EventType) []string {
	warnings := make([]string, 0)

	if err := s.notifier.Notify(ctx, kind, r); err != nil {
		s.logger.Error("sideEffects: %s email failed for reservation id=%d: %v", kind, r.ID, err)
		s.metrics.IncUpstreamError(upstreamMail)
		warnings = append(warnings, warnEmailFailed)
	}

	if err := s.events.Publish(ctx, domain.NewReservationEvent(event, r, s.timeProvider.Now())); err != nil {
		s.logger.Error("sideEffects: %s event failed for reservation id=%d: %v", event, r.ID, err)
		s.metrics.IncUpstreamError(upstreamEvents)
		warnings = append(warnings, warnEventFailed)
	}

	return warnings
}

func (s *Service) result(r *domain.Reservation, changed bool, warnings []string) *models.TransitionResult {
	if warnings == nil {
		warnings = []string{}
	}
	return &models.TransitionResult{
		Reservation: models.FromDomainReservation(r),
		Warnings:    warnings,
		Changed:     changed,
	}
}

func actionOp(action domain.Action) string {
	switch action {
	case domain.ActionApprove:
		return "Approve"
	case domain.ActionReject:
		return "Reject"
	case domain.ActionMarkPaid:
		return "MarkPaid"
	case domain.ActionResendPayment:
		return "ResendPayment"
	default:
		return string(action)
	}
}
