package service

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/fallback"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/rs/zerolog"
)

// ContactNotifier is told about every stored inquiry.
type ContactNotifier interface {
	NotifyContactInquiry(ctx context.Context, inquiry model.ContactInquiry) error
}

// ContactService takes contact form submissions. An inquiry is never lost to
// a backend failure: the fallback store takes it instead.
type ContactService struct {
	contacts repository.ContactRepository
	fallback *fallback.Store
	notifier ContactNotifier
	logger   *zerolog.Logger
	clock    clock
}

func NewContactService(
	contacts repository.ContactRepository,
	fallbackStore *fallback.Store,
	notifier ContactNotifier,
	logger *zerolog.Logger,
) *ContactService {
	return &ContactService{
		contacts: contacts,
		fallback: fallbackStore,
		notifier: notifier,
		logger:   logger,
	}
}

// SubmitInquiry validates, normalizes and stores a submission.
func (s *ContactService) SubmitInquiry(ctx context.Context, in *model.ContactInput) (*model.ContactReceipt, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	inquiry := in.Normalized().Inquiry(s.clock.now())

	if err := s.store(ctx, &inquiry); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContactInquiry(ctx, inquiry); err != nil {
			s.logger.Warn().Err(err).Str("inquiry_id", inquiry.ID).Msg("could not schedule inquiry notification")
		}
	}

	return &model.ContactReceipt{OK: true, InquiryID: inquiry.ID}, nil
}

func (s *ContactService) store(ctx context.Context, inquiry *model.ContactInquiry) error {
	if s.contacts != nil {
		err := s.contacts.Create(ctx, inquiry)
		if err == nil || s.fallback == nil {
			return err
		}
		s.logger.Warn().Err(err).Str("inquiry_id", inquiry.ID).Msg("contact backend failed, storing inquiry in fallback store")
	}

	if s.fallback == nil {
		return unavailable("Contact")
	}
	return s.fallback.Contacts().Create(ctx, inquiry)
}

// ListInquiries returns stored inquiries, newest first.
func (s *ContactService) ListInquiries(ctx context.Context) ([]model.ContactInquiry, error) {
	if s.contacts == nil {
		return nil, unavailable("Contact")
	}

	inquiries, err := s.contacts.Find(ctx)
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []model.ContactInquiry{}
	}
	return inquiries, nil
}
