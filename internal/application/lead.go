package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/input"
	"signalsite/internal/ports/output"
)

var _ input.LeadUseCase = (*LeadService)(nil)

const (
	settleWait = 5 * time.Second
	settlePoll = 50 * time.Millisecond
)

type LeadService struct {
	sink       output.LeadSink
	guard      output.SubmissionGuard
	translator output.T
	prefixes   []string
	now        func() time.Time
	settleWait time.Duration
	logger     *zap.Logger
}

func NewLeadService(
	sink output.LeadSink,
	guard output.SubmissionGuard,
	translator output.T,
	prefixes []string,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		sink:       sink,
		guard:      guard,
		translator: translator,
		prefixes:   prefixes,
		now:        time.Now,
		settleWait: settleWait,
		logger:     logger,
	}
}

// Validate returns the localized inline error of every failed field.
func (s *LeadService) Validate(ctx context.Context, in entities.LeadInput) map[domain.Field]string {
	return s.localize(ctx, domain.Validate(in))
}

// Submit validates in and hands the normalized lead to the sink. token
// identifies the rendered form. A repeated submission of the same form waits
// for the first one to settle: it returns domain.ErrAlreadySubmitted once the
// first was stored, retries when the first failed, and gives up with
// domain.ErrSubmissionInFlight after settleWait.
func (s *LeadService) Submit(ctx context.Context, token string, in entities.LeadInput) (*entities.Lead, error) {
	if fieldErrs := domain.Validate(in); !fieldErrs.Valid() {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrMissingFormToken
	}

	if err := s.acquire(ctx, token); err != nil {
		return nil, err
	}

	in.PhonePrefix = domain.NormalizePrefix(in.PhonePrefix, s.prefixes)
	lead := domain.Normalize(in, s.now())
	if err := s.sink.Insert(ctx, &lead); err != nil {
		// Keep the form usable for a retry.
		if relErr := s.guard.Release(context.WithoutCancel(ctx), token); relErr != nil {
			s.logger.Warn("release submission token", zap.Error(relErr))
		}
		s.logger.Error("lead submission failed",
			zap.String("code", domain.Code(err)),
			zap.Error(err))
		return nil, err
	}

	if err := s.guard.Complete(context.WithoutCancel(ctx), token); err != nil {
		s.logger.Warn("complete submission token", zap.Error(err))
	}
	s.logger.Info("lead submitted", zap.Int64("id", lead.ID), zap.String("phone_prefix", in.PhonePrefix))
	return &lead, nil
}

func (s *LeadService) acquire(ctx context.Context, token string) error {
	timeout := time.NewTimer(s.settleWait)
	defer timeout.Stop()
	ticker := time.NewTicker(settlePoll)
	defer ticker.Stop()

	for {
		acquired, err := s.guard.Acquire(ctx, token)
		if err != nil {
			return fmt.Errorf("acquire submission: %w: %w", domain.ErrSinkUnavailable, err)
		}
		if acquired {
			return nil
		}

		state, err := s.guard.State(ctx, token)
		if err != nil {
			return fmt.Errorf("submission state: %w: %w", domain.ErrSinkUnavailable, err)
		}
		switch state {
		case output.SubmissionDone:
			return domain.ErrAlreadySubmitted
		case output.SubmissionUnknown:
			// Released or expired between the two calls.
			continue
		}

		select {
		case <-ctx.Done():
			return domain.ErrSubmissionInFlight
		case <-timeout.C:
			return domain.ErrSubmissionInFlight
		case <-ticker.C:
		}
	}
}

// ErrorMessage resolves the alert shown for a failed submission.
func (s *LeadService) ErrorMessage(ctx context.Context, err error) string {
	locale := domain.LocaleFromContext(ctx)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return ""
	}
	code := domain.Code(err)
	if code == "" {
		code = "generic"
	}
	return s.translator.T(locale, "contact.error."+code, nil)
}

// FieldMessages localizes the field errors carried by a ValidationError.
func (s *LeadService) FieldMessages(ctx context.Context, err error) map[domain.Field]string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	return s.localize(ctx, verr.Fields)
}

func (s *LeadService) localize(ctx context.Context, fieldErrs domain.FieldErrors) map[domain.Field]string {
	locale := domain.LocaleFromContext(ctx)
	out := make(map[domain.Field]string, len(fieldErrs))
	for field, key := range fieldErrs {
		out[field] = s.translator.T(locale, key, nil)
	}
	return out
}
