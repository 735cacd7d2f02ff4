package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidConsentPhone  = errors.New("invalid consent phone")
	ErrInvalidConsentAction = errors.New("invalid consent action")
	ErrConsentUnchanged     = errors.New("consent state unchanged")
)

// ConsentState is the current messaging-consent standing of a phone number,
// derived from the latest event in its audit trail.
type ConsentState struct {
	CustomerPhone string                 `json:"customer_phone"`
	OptedIn       bool                   `json:"opted_in"`
	LastAction    entities.ConsentAction `json:"last_action,omitempty"`
	UpdatedAt     *time.Time             `json:"updated_at,omitempty"`
}

type IConsentUseCase interface {
	Record(ctx context.Context, phone string, action entities.ConsentAction, source, note string) (entities.ConsentEvent, error)
	GetState(ctx context.Context, phone string) (ConsentState, error)
	History(ctx context.Context, phone string) ([]entities.ConsentEvent, error)
}

type ConsentUseCase struct {
	repo interfaces.IConsentRepository
}

var _ IConsentUseCase = (*ConsentUseCase)(nil)

func NewConsentUseCase(repo interfaces.IConsentRepository) *ConsentUseCase {
	return &ConsentUseCase{repo: repo}
}

// Record appends a consent transition. A transition that would not change the
// current state (double opt-in, opt-out without prior opt-in) is rejected so
// the audit trail only holds real state changes.
func (u *ConsentUseCase) Record(ctx context.Context, phone string, action entities.ConsentAction, source, note string) (entities.ConsentEvent, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return entities.ConsentEvent{}, ErrInvalidConsentPhone
	}
	if action != entities.ConsentOptIn && action != entities.ConsentOptOut {
		return entities.ConsentEvent{}, ErrInvalidConsentAction
	}

	history, err := u.repo.ListByPhone(ctx, phone)
	if err != nil {
		return entities.ConsentEvent{}, err
	}

	var current entities.ConsentAction
	if latest := latestConsentEvent(history); latest != nil {
		current = latest.Action
	}
	if !entities.ConsentTransitionAllowed(current, action) {
		return entities.ConsentEvent{}, ErrConsentUnchanged
	}

	e := entities.ConsentEvent{
		ID:            uuid.NewString(),
		CustomerPhone: phone,
		Channel:       entities.ConsentChannelWhatsApp,
		Action:        action,
		Source:        strings.TrimSpace(source),
		Note:          strings.TrimSpace(note),
		CreatedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *ConsentUseCase) GetState(ctx context.Context, phone string) (ConsentState, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ConsentState{}, ErrInvalidConsentPhone
	}

	history, err := u.repo.ListByPhone(ctx, phone)
	if err != nil {
		return ConsentState{}, err
	}

	state := ConsentState{CustomerPhone: phone}
	if latest := latestConsentEvent(history); latest != nil {
		state.OptedIn = latest.Action == entities.ConsentOptIn
		state.LastAction = latest.Action
		t := latest.CreatedAt
		state.UpdatedAt = &t
	}
	return state, nil
}

func (u *ConsentUseCase) History(ctx context.Context, phone string) ([]entities.ConsentEvent, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidConsentPhone
	}

	history, err := u.repo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	sort.Slice(history, func(a, b int) bool { return history[a].CreatedAt.After(history[b].CreatedAt) })
	return history, nil
}

func latestConsentEvent(events []entities.ConsentEvent) *entities.ConsentEvent {
	var latest *entities.ConsentEvent
	for i := range events {
		if latest == nil || events[i].CreatedAt.After(latest.CreatedAt) {
			latest = &events[i]
		}
	}
	return latest
}
