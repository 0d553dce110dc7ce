// Package subscribe validates newsletter sign-ups and records them.
package subscribe

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/jetlaghelper/api/internal/validate"
)

// ValidationError is returned for addresses that are missing or malformed.
// Msg is safe to show to the visitor.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrEmailRequired = &ValidationError{Msg: "Email is required"}
	ErrInvalidEmail  = &ValidationError{Msg: "Invalid email format"}
)

type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt time.Time
}

// Store persists subscribers. Record reports whether the address was new.
type Store interface {
	Record(ctx context.Context, sub Subscriber) (created bool, err error)
}

type signup struct {
	Email string `json:"email" validate:"required,basic_email"`
}

type Service struct {
	store    Store
	logger   *slog.Logger
	validate *validate.Validator
	now      func() time.Time
}

// NewService returns a Service. A nil store makes Subscribe log the
// address and nothing else.
func NewService(logger *slog.Logger, store Store) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		validate: validate.New(validate.BasicEmail),
		now:      time.Now,
	}
}

// Subscribe validates email and records it. Subscribing the same address
// twice succeeds both times.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if err := s.check(email); err != nil {
		return err
	}

	s.logger.Info("new email subscription", "email", email)

	if s.store == nil {
		return nil
	}

	sub := Subscriber{
		ID:           SubscriberID(email),
		Email:        email,
		SubscribedAt: s.now().UTC(),
	}
	created, err := s.store.Record(ctx, sub)
	if err != nil {
		return fmt.Errorf("recording subscriber: %w", err)
	}
	if !created {
		s.logger.Debug("subscriber already recorded", "id", sub.ID)
	}
	return nil
}

func (s *Service) check(email string) error {
	err := s.validate.Struct(signup{Email: email})
	if err == nil {
		return nil
	}
	failures := validate.Failures(err)
	if len(failures) == 0 {
		return err
	}
	if failures[0].Tag == "required" {
		return ErrEmailRequired
	}
	return ErrInvalidEmail
}

// SubscriberID is a stable key for an address, insensitive to case and
// surrounding space.
func SubscriberID(email string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
