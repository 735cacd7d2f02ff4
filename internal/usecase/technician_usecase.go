package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTechnicianNotFound     = errors.New("technician not found")
	ErrInvalidTechnicianID    = errors.New("invalid technician id")
	ErrInvalidTechnicianInput = errors.New("invalid technician input")
)

// UpdateTechnicianInput carries the mutable fields; nil means unchanged.
type UpdateTechnicianInput struct {
	Name   *string
	Phone  *string
	Email  *string
	Skills *[]string
}

type ITechnicianUseCase interface {
	Create(ctx context.Context, name, phone, email string, skills []string) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Technician, error)
	Update(ctx context.Context, id string, in UpdateTechnicianInput) (entities.Technician, error)
	Deactivate(ctx context.Context, id string) (entities.Technician, error)
}

type TechnicianUseCase struct {
	repo interfaces.ITechnicianRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, name, phone, email string, skills []string) (entities.Technician, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Technician{}, ErrInvalidTechnicianInput
	}

	now := time.Now().UTC()
	t := entities.Technician{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		Skills:    skills,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if t.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

func (u *TechnicianUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Technician, error) {
	return u.repo.List(ctx, activeOnly)
}

func (u *TechnicianUseCase) Update(ctx context.Context, id string, in UpdateTechnicianInput) (entities.Technician, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}

	if in.Name != nil {
		if v := strings.TrimSpace(*in.Name); v != "" {
			t.Name = v
		} else {
			return entities.Technician{}, ErrInvalidTechnicianInput
		}
	}
	if in.Phone != nil {
		t.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		t.Email = strings.TrimSpace(*in.Email)
	}
	if in.Skills != nil {
		t.Skills = *in.Skills
	}

	t.UpdatedAt = time.Now().UTC()
	return u.update(ctx, t)
}

func (u *TechnicianUseCase) Deactivate(ctx context.Context, id string) (entities.Technician, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}

	t.Active = false
	t.UpdatedAt = time.Now().UTC()
	return u.update(ctx, t)
}

// update persists the technician and maps the repository's zero value,
// returned when the conditional write finds no row, to not-found.
func (u *TechnicianUseCase) update(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Technician{}, err
	}
	if updated.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return updated, nil
}
