// Package profile edits the account profile shown on the dashboard settings
// page. WhatsApp numbers are validated and stored in normalized form.
package profile

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/models"
	"conectezap-dashboard/internal/phone"
	"conectezap-dashboard/internal/repository"

	"go.uber.org/zap"
)

const maxNameLength = 255

type Storage interface {
	FetchProfile(ctx context.Context, accountID string) (*models.Profile, error)
	WriteProfile(ctx context.Context, p *models.Profile) error
}

type Service struct {
	storage Storage
	log     *zap.Logger
}

func NewService(storage Storage, log *zap.Logger) *Service {
	return &Service{storage: storage, log: log}
}

// Input is what the settings form submits. WhatsApp is the raw number as
// typed; an empty value clears it.
type Input struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	WhatsApp    string `json:"whatsapp"`
}

func (s *Service) Get(ctx context.Context, accountID string) (models.Profile, error) {
	p, err := s.storage.FetchProfile(ctx, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Profile{AccountID: accountID}, nil
	}
	if err != nil {
		s.log.Error("profile load failed", zap.String("account_id", accountID), zap.Error(err))
		return models.Profile{}, &apperr.PersistenceError{Op: "load", Err: err}
	}
	return *p, nil
}

// Update validates the input before touching storage.
func (s *Service) Update(ctx context.Context, accountID string, in Input) (models.Profile, error) {
	var number string
	if strings.TrimSpace(in.WhatsApp) != "" {
		n, err := phone.Validate(in.WhatsApp)
		if err != nil {
			return models.Profile{}, err
		}
		number = n
	}

	p := models.Profile{
		AccountID:   accountID,
		FullName:    clip(strings.TrimSpace(in.FullName)),
		CompanyName: clip(strings.TrimSpace(in.CompanyName)),
		WhatsApp:    number,
	}
	if err := s.storage.WriteProfile(ctx, &p); err != nil {
		s.log.Error("profile save failed", zap.String("account_id", accountID), zap.Error(err))
		return models.Profile{}, &apperr.PersistenceError{Op: "save", Err: err}
	}
	return p, nil
}

func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxNameLength {
		return s
	}
	return string([]rune(s)[:maxNameLength])
}
