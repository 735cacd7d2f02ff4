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
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidVehicleID     = errors.New("invalid vehicle id")
	ErrInvalidVehicleInput  = errors.New("invalid vehicle input")
	ErrInvalidVehicleStatus = errors.New("invalid vehicle status")
)

// CreateVehicleInput carries the fields accepted when registering a vehicle.
type CreateVehicleInput struct {
	Name  string
	Plate string
	Make  string
	Model string
	Year  int
}

// UpdateVehicleInput carries the mutable fields; nil means unchanged.
type UpdateVehicleInput struct {
	Name  *string
	Plate *string
	Make  *string
	Model *string
	Year  *int
}

type IVehicleUseCase interface {
	Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, status entities.VehicleStatus) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error)
	ChangeStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error)
	AssignTechnician(ctx context.Context, id, technicianID string) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo     interfaces.IVehicleRepository
	techRepo interfaces.ITechnicianRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, techRepo interfaces.ITechnicianRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, techRepo: techRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Plate = strings.TrimSpace(in.Plate)
	if in.Name == "" || in.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	now := time.Now().UTC()
	v := entities.Vehicle{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Plate:     in.Plate,
		Make:      strings.TrimSpace(in.Make),
		Model:     strings.TrimSpace(in.Model),
		Year:      in.Year,
		Status:    entities.VehicleStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context, status entities.VehicleStatus) ([]entities.Vehicle, error) {
	if status != "" && !entities.ValidVehicleStatus(status) {
		return nil, ErrInvalidVehicleStatus
	}
	return u.repo.List(ctx, status)
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	if in.Name != nil {
		if s := strings.TrimSpace(*in.Name); s != "" {
			v.Name = s
		} else {
			return entities.Vehicle{}, ErrInvalidVehicleInput
		}
	}
	if in.Plate != nil {
		if s := strings.TrimSpace(*in.Plate); s != "" {
			v.Plate = s
		} else {
			return entities.Vehicle{}, ErrInvalidVehicleInput
		}
	}
	if in.Make != nil {
		v.Make = strings.TrimSpace(*in.Make)
	}
	if in.Model != nil {
		v.Model = strings.TrimSpace(*in.Model)
	}
	if in.Year != nil {
		v.Year = *in.Year
	}

	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VehicleUseCase) ChangeStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error) {
	if !entities.ValidVehicleStatus(status) {
		return entities.Vehicle{}, ErrInvalidVehicleStatus
	}

	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v.Status = status
	if status == entities.VehicleStatusRetired {
		v.AssignedTechnicianID = ""
	}
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VehicleUseCase) AssignTechnician(ctx context.Context, id, technicianID string) (entities.Vehicle, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	technicianID = strings.TrimSpace(technicianID)
	if technicianID != "" {
		tech, err := u.techRepo.GetByID(ctx, technicianID)
		if err != nil {
			return entities.Vehicle{}, err
		}
		if tech.ID == "" {
			return entities.Vehicle{}, ErrTechnicianNotFound
		}
	}

	v.AssignedTechnicianID = technicianID
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

// update persists the vehicle and maps the repository's zero value, returned
// when the conditional write finds no row, to not-found.
func (u *VehicleUseCase) update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}
