package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/models"
	"conectezap-dashboard/internal/repository"

	"go.uber.org/zap"
)

type memStorage struct {
	profiles map[string]models.Profile
	writeErr error
	writes   int
}

func (m *memStorage) FetchProfile(_ context.Context, id string) (*models.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *memStorage) WriteProfile(_ context.Context, p *models.Profile) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.profiles[p.AccountID] = *p
	return nil
}

func newMem() *memStorage { return &memStorage{profiles: map[string]models.Profile{}} }

func TestService_GetMissingProfile(t *testing.T) {
	svc := NewService(newMem(), zap.NewNop())
	p, err := svc.Get(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if p.AccountID != "acc-1" || p.FullName != "" {
		t.Fatalf("profile=%+v", p)
	}
}

func TestService_UpdateNormalizesNumber(t *testing.T) {
	mem := newMem()
	svc := NewService(mem, zap.NewNop())

	p, err := svc.Update(context.Background(), "acc-1", Input{FullName: "  Ana  ", WhatsApp: "+55 (11) 98765-4321"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if p.WhatsApp != "5511987654321" || p.FullName != "Ana" {
		t.Fatalf("profile=%+v", p)
	}
	if mem.profiles["acc-1"].WhatsApp != "5511987654321" {
		t.Fatalf("stored=%+v", mem.profiles["acc-1"])
	}
}

func TestService_UpdateRejectsBadNumberBeforeWrite(t *testing.T) {
	mem := newMem()
	svc := NewService(mem, zap.NewNop())

	_, err := svc.Update(context.Background(), "acc-1", Input{WhatsApp: "5501987654321"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Kind != apperr.InvalidShape {
		t.Fatalf("err=%v", err)
	}
	if mem.writes != 0 {
		t.Fatalf("writes=%d", mem.writes)
	}
}

func TestService_UpdateEmptyNumberClears(t *testing.T) {
	mem := newMem()
	mem.profiles["acc-1"] = models.Profile{AccountID: "acc-1", WhatsApp: "5511987654321"}
	svc := NewService(mem, zap.NewNop())

	p, err := svc.Update(context.Background(), "acc-1", Input{FullName: "Ana", WhatsApp: "   "})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if p.WhatsApp != "" {
		t.Fatalf("whatsapp=%q", p.WhatsApp)
	}
}

func TestService_UpdateClipsNames(t *testing.T) {
	svc := NewService(newMem(), zap.NewNop())
	p, err := svc.Update(context.Background(), "acc-1", Input{CompanyName: strings.Repeat("é", 300)})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if n := len([]rune(p.CompanyName)); n != 255 {
		t.Fatalf("runes=%d", n)
	}
}

func TestService_UpdateStorageFailure(t *testing.T) {
	mem := newMem()
	mem.writeErr = errors.New("disk full")
	svc := NewService(mem, zap.NewNop())

	_, err := svc.Update(context.Background(), "acc-1", Input{FullName: "Ana"})
	var pe *apperr.PersistenceError
	if !errors.As(err, &pe) || pe.Op != "save" {
		t.Fatalf("err=%v", err)
	}
}
