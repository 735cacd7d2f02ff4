package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/pricing"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrInvalidJobInput    = errors.New("invalid job input")
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
	ErrPricingModeLocked  = errors.New("pricing mode locked")
)

// CreateJobInput carries the fields accepted when opening a job.
type CreateJobInput struct {
	CustomerName     string
	Title            string
	Description      string
	PricingMode      entities.PricingMode
	EstimatedTotal   *float64
	DefaultVisitRate *float64
}

// UpdateJobInput carries the mutable job fields; nil means "leave unchanged".
type UpdateJobInput struct {
	CustomerName     *string
	Title            *string
	Description      *string
	EstimatedTotal   *float64
	DefaultVisitRate *float64
	Status           *entities.JobStatus
}

// JobPricing bundles the job with its visits and the calculator output, the
// shape the pricing endpoint serializes.
type JobPricing struct {
	Job         entities.Job
	Visits      []entities.Visit
	Calculation pricing.PricingCalculation
}

// IJobUseCase exposes job operations for the dashboard:
//   - CRUD over job records
//   - pricing mode changes, guarded by the completed-visit lock
//   - the pricing endpoint (load job + visits, run the calculator)

type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	UpdateDetails(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error)
	ChangePricingMode(ctx context.Context, id string, mode entities.PricingMode) (entities.Job, error)
	GetPricing(ctx context.Context, id string) (JobPricing, error)
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	visitRepo interfaces.IVisitRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, visitRepo interfaces.IVisitRepository) *JobUseCase {
	return &JobUseCase{repo: repo, visitRepo: visitRepo}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Title = strings.TrimSpace(in.Title)
	if in.CustomerName == "" || in.Title == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	if !entities.ValidPricingMode(in.PricingMode) {
		return entities.Job{}, ErrInvalidPricingMode
	}
	if in.EstimatedTotal != nil && *in.EstimatedTotal <= 0 {
		return entities.Job{}, ErrInvalidJobInput
	}
	if in.DefaultVisitRate != nil && *in.DefaultVisitRate <= 0 {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:               uuid.NewString(),
		CustomerName:     in.CustomerName,
		Title:            in.Title,
		Description:      strings.TrimSpace(in.Description),
		PricingMode:      in.PricingMode,
		EstimatedTotal:   in.EstimatedTotal,
		DefaultVisitRate: in.DefaultVisitRate,
		Status:           entities.JobStatusOpen,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	return u.repo.List(ctx, status)
}

func (u *JobUseCase) UpdateDetails(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if in.CustomerName != nil {
		if v := strings.TrimSpace(*in.CustomerName); v != "" {
			j.CustomerName = v
		} else {
			return entities.Job{}, ErrInvalidJobInput
		}
	}
	if in.Title != nil {
		if v := strings.TrimSpace(*in.Title); v != "" {
			j.Title = v
		} else {
			return entities.Job{}, ErrInvalidJobInput
		}
	}
	if in.Description != nil {
		j.Description = strings.TrimSpace(*in.Description)
	}
	if in.EstimatedTotal != nil {
		if *in.EstimatedTotal <= 0 {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.EstimatedTotal = in.EstimatedTotal
	}
	if in.DefaultVisitRate != nil {
		if *in.DefaultVisitRate <= 0 {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.DefaultVisitRate = in.DefaultVisitRate
	}
	if in.Status != nil {
		switch *in.Status {
		case entities.JobStatusOpen, entities.JobStatusInProgress, entities.JobStatusCompleted, entities.JobStatusCancelled:
			j.Status = *in.Status
		default:
			return entities.Job{}, ErrInvalidJobInput
		}
	}

	j.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) ChangePricingMode(ctx context.Context, id string, mode entities.PricingMode) (entities.Job, error) {
	if !entities.ValidPricingMode(mode) {
		return entities.Job{}, ErrInvalidPricingMode
	}

	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.PricingMode == mode {
		return j, nil
	}

	visits, err := u.visitRepo.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.Job{}, err
	}
	if !pricing.CanChangePricingMode(visits) {
		return entities.Job{}, ErrPricingModeLocked
	}

	updated, err := u.repo.UpdatePricingMode(ctx, j.ID, mode)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) GetPricing(ctx context.Context, id string) (JobPricing, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return JobPricing{}, err
	}

	visits, err := u.visitRepo.ListByJobID(ctx, j.ID)
	if err != nil {
		return JobPricing{}, err
	}
	sort.Slice(visits, func(a, b int) bool { return visits[a].VisitNumber < visits[b].VisitNumber })

	return JobPricing{
		Job:         j,
		Visits:      visits,
		Calculation: pricing.CalculateJobTotal(j, visits),
	}, nil
}
