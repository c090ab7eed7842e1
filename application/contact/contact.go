package contact

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/contact-manager/cmd/config"
	"github.com/muhammadheryan/contact-manager/constant"
	"github.com/muhammadheryan/contact-manager/model"
	contactrepo "github.com/muhammadheryan/contact-manager/repository/contact"
	redisrepo "github.com/muhammadheryan/contact-manager/repository/redis"
	"github.com/muhammadheryan/contact-manager/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-manager/utils/errors"
	"github.com/muhammadheryan/contact-manager/utils/logger"
	"github.com/muhammadheryan/contact-manager/utils/normalize"
	"go.uber.org/zap"
)

type ContactApp interface {
	List(ctx context.Context) ([]model.ContactEntity, error)
	Create(ctx context.Context, req *model.ContactRequest) (*model.ContactEntity, error)
	Update(ctx context.Context, id uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	Delete(ctx context.Context, id uint64) (*model.DeleteContactResponse, error)
	FlushCache(ctx context.Context) error
}

// EventPublisher is satisfied by rabbitmq.Publisher. A nil publisher
// disables event delivery.
type EventPublisher interface {
	PublishContactEvent(msg rabbitmq.ContactEventMessage) error
}

type contactAppImpl struct {
	config      *config.Config
	contactRepo contactrepo.ContactRepository
	cacheRepo   redisrepo.Repository
	publisher   EventPublisher
}

func NewContactApp(config *config.Config, contactRepo contactrepo.ContactRepository, cacheRepo redisrepo.Repository, publisher EventPublisher) ContactApp {
	return &contactAppImpl{
		config:      config,
		contactRepo: contactRepo,
		cacheRepo:   cacheRepo,
		publisher:   publisher,
	}
}

func (s *contactAppImpl) List(ctx context.Context) ([]model.ContactEntity, error) {
	if s.cacheRepo != nil {
		cached, err := s.cacheRepo.GetContactList(ctx)
		if err != nil {
			logger.Warn("[List] err cacheRepo.GetContactList", zap.String("error", err.Error()))
		}
		if cached != nil {
			return cached, nil
		}
	}

	opCtx, cancel := s.queryContext(ctx)
	defer cancel()

	contacts, err := s.contactRepo.List(opCtx)
	if err != nil {
		logger.Error("[List] err contactRepo.List", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetContactList(ctx, contacts, s.config.Redis.CacheTTL); err != nil {
			logger.Warn("[List] err cacheRepo.SetContactList", zap.String("error", err.Error()))
		}
	}

	return contacts, nil
}

func (s *contactAppImpl) Create(ctx context.Context, req *model.ContactRequest) (*model.ContactEntity, error) {
	req.Name = strings.TrimSpace(req.Name)
	if fieldErrs := validateRequest(req); len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(fieldErrs)
	}

	email := normalize.Email(req.Email)
	phone := normalize.Phone(req.Phone)

	opCtx, cancel := s.queryContext(ctx)
	defer cancel()

	// Pre-check the pair so duplicates get a structured 409 instead of a
	// raw index violation. The unique index still backs this up if two
	// creates race past the check at once.
	existing, err := s.contactRepo.Get(opCtx, &model.ContactFilter{Email: email, Phone: phone})
	if err != nil {
		logger.Error("[Create] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}
	if existing != nil {
		return nil, errors.NewDuplicateError(email, phone)
	}

	now := time.Now().UTC().Truncate(time.Second)
	entity := &model.ContactEntity{
		Name:      req.Name,
		Email:     email,
		Phone:     phone,
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}

	entity, err = s.contactRepo.Create(opCtx, entity)
	if err != nil {
		if stderrors.Is(err, contactrepo.ErrDuplicateEntry) {
			return nil, errors.NewDuplicateError(email, phone)
		}
		logger.Error("[Create] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}

	s.afterWrite(ctx, constant.EventContactCreated, entity.ID)
	return entity, nil
}

func (s *contactAppImpl) Update(ctx context.Context, id uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	req.Name = strings.TrimSpace(req.Name)
	if fieldErrs := validateRequest(req); len(fieldErrs) > 0 {
		return nil, errors.NewValidationError(fieldErrs)
	}

	email := normalize.Email(req.Email)
	phone := normalize.Phone(req.Phone)

	opCtx, cancel := s.queryContext(ctx)
	defer cancel()

	// Duplicate check excludes the contact itself, so re-saving a
	// contact with its own unchanged pair is not a conflict.
	conflict, err := s.contactRepo.Get(opCtx, &model.ContactFilter{Email: email, Phone: phone, ExcludeID: id})
	if err != nil {
		logger.Error("[Update] err contactRepo.Get pair", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}
	if conflict != nil {
		return nil, errors.NewDuplicateError(email, phone)
	}

	current, err := s.contactRepo.Get(opCtx, &model.ContactFilter{ID: id})
	if err != nil {
		logger.Error("[Update] err contactRepo.Get id", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.ContactEntity{
		ID:        current.ID,
		Name:      req.Name,
		Email:     email,
		Phone:     phone,
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: current.CreatedAt,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := s.contactRepo.Update(opCtx, entity); err != nil {
		if stderrors.Is(err, contactrepo.ErrDuplicateEntry) {
			return nil, errors.NewDuplicateError(email, phone)
		}
		logger.Error("[Update] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}

	s.afterWrite(ctx, constant.EventContactUpdated, entity.ID)
	return entity, nil
}

func (s *contactAppImpl) Delete(ctx context.Context, id uint64) (*model.DeleteContactResponse, error) {
	opCtx, cancel := s.queryContext(ctx)
	defer cancel()

	deleted, err := s.contactRepo.Delete(opCtx, id)
	if err != nil {
		logger.Error("[Delete] err contactRepo.Delete", zap.String("error", err.Error()))
		return nil, s.storageError(opCtx, err)
	}
	if !deleted {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	s.afterWrite(ctx, constant.EventContactDeleted, id)
	return &model.DeleteContactResponse{Message: "Contact deleted successfully"}, nil
}

func (s *contactAppImpl) FlushCache(ctx context.Context) error {
	if s.cacheRepo == nil {
		return nil
	}
	return s.cacheRepo.InvalidateContactList(ctx)
}

// afterWrite invalidates the list cache and announces the change.
// Both are best effort; the write already committed.
func (s *contactAppImpl) afterWrite(ctx context.Context, event string, contactID uint64) {
	if s.cacheRepo != nil {
		if err := s.cacheRepo.InvalidateContactList(ctx); err != nil {
			logger.Warn("[afterWrite] err InvalidateContactList", zap.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		msg := rabbitmq.ContactEventMessage{
			Event:      event,
			ContactID:  contactID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.publisher.PublishContactEvent(msg); err != nil {
			logger.Warn("[afterWrite] err PublishContactEvent",
				zap.String("event", event),
				zap.Uint64("contact_id", contactID),
				zap.String("error", err.Error()))
		}
	}
}

func (s *contactAppImpl) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := 5 * time.Second
	if s.config != nil && s.config.Database.QueryTimeout > 0 {
		timeout = s.config.Database.QueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storageError distinguishes a timed-out storage call from any other
// backend failure. Both surface to the client as a generic 500.
func (s *contactAppImpl) storageError(ctx context.Context, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return errors.SetCustomError(constant.ErrStorageUnavailable)
	}
	return errors.SetCustomError(constant.ErrInternal)
}
