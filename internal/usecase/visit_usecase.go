package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/pricing"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVisitNotFound              = errors.New("visit not found")
	ErrInvalidVisitID             = errors.New("invalid visit id")
	ErrInvalidVisitInput          = errors.New("invalid visit input")
	ErrVisitClosed                = errors.New("visit already closed")
	ErrJobClosed                  = errors.New("job already closed")
	ErrNoProposedPrice            = errors.New("no proposed price to approve")
	ErrDepositNotRequired         = errors.New("visit does not require a deposit")
	ErrDepositAlreadyPaid         = errors.New("deposit already paid")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// CreateVisitInput carries the fields accepted when adding a visit to a job.
type CreateVisitInput struct {
	ScheduledDate   *time.Time
	EstimatedPrice  *float64
	RequiresDeposit bool
	DepositAmount   *float64
}

// IVisitUseCase exposes visit operations:
//   - creation under a job with sequential numbering
//   - lifecycle transitions (assign/schedule/start/complete/cancel)
//   - technician price proposals with variance validation
//   - deposit collection through the payment gateway

type IVisitUseCase interface {
	CreateVisit(ctx context.Context, jobID string, in CreateVisitInput) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Visit, error)
	Assign(ctx context.Context, visitID, technicianID, vehicleID string) (entities.Visit, error)
	Schedule(ctx context.Context, visitID string, date time.Time) (entities.Visit, error)
	Start(ctx context.Context, visitID string) (entities.Visit, error)
	Complete(ctx context.Context, visitID string, actualPrice *float64) (entities.Visit, error)
	Cancel(ctx context.Context, visitID string) (entities.Visit, error)
	ProposePrice(ctx context.Context, visitID string, proposed float64) (entities.Visit, pricing.VarianceResult, error)
	ApproveProposedPrice(ctx context.Context, visitID string) (entities.Visit, error)
	PayDeposit(ctx context.Context, visitID string, payload json.RawMessage) (entities.Visit, error)
}

type VisitUseCase struct {
	repo    interfaces.IVisitRepository
	jobRepo interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(repo interfaces.IVisitRepository, jobRepo interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *VisitUseCase {
	return &VisitUseCase{repo: repo, jobRepo: jobRepo, gateway: gateway}
}

func (u *VisitUseCase) CreateVisit(ctx context.Context, jobID string, in CreateVisitInput) (entities.Visit, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Visit{}, ErrInvalidJobID
	}
	if in.EstimatedPrice != nil && *in.EstimatedPrice <= 0 {
		return entities.Visit{}, ErrInvalidVisitInput
	}
	if in.DepositAmount != nil && *in.DepositAmount <= 0 {
		return entities.Visit{}, ErrInvalidVisitInput
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Visit{}, err
	}
	if job.ID == "" {
		return entities.Visit{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusCancelled || job.Status == entities.JobStatusCompleted {
		return entities.Visit{}, ErrJobClosed
	}

	existing, err := u.repo.ListByJobID(ctx, job.ID)
	if err != nil {
		return entities.Visit{}, err
	}

	now := time.Now().UTC()
	v := entities.Visit{
		ID:              uuid.NewString(),
		JobID:           job.ID,
		VisitNumber:     len(existing) + 1,
		ScheduledDate:   in.ScheduledDate,
		Status:          entities.VisitStatusPending,
		EstimatedPrice:  in.EstimatedPrice,
		RequiresDeposit: in.RequiresDeposit,
		DepositAmount:   in.DepositAmount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.ScheduledDate != nil {
		v.Status = entities.VisitStatusScheduled
	}
	return u.repo.Create(ctx, v)
}

// update persists the visit and maps the repository's zero value, returned
// when the conditional write finds no row, to not-found.
func (u *VisitUseCase) update(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Visit{}, err
	}
	if updated.ID == "" {
		return entities.Visit{}, ErrVisitNotFound
	}
	return updated, nil
}

func (u *VisitUseCase) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Visit{}, ErrInvalidVisitID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.ID == "" {
		return entities.Visit{}, ErrVisitNotFound
	}
	return v, nil
}

func (u *VisitUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Visit, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	visits, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	sort.Slice(visits, func(a, b int) bool { return visits[a].VisitNumber < visits[b].VisitNumber })
	return visits, nil
}

// Assign sets (or clears, with an empty technicianID) the visit's technician.
// A pending visit becomes ASSIGNED; a scheduled one keeps its schedule.
func (u *VisitUseCase) Assign(ctx context.Context, visitID, technicianID, vehicleID string) (entities.Visit, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.Status.Terminal() {
		return entities.Visit{}, ErrVisitClosed
	}

	v.TechnicianID = strings.TrimSpace(technicianID)
	if vehicleID = strings.TrimSpace(vehicleID); vehicleID != "" {
		v.VehicleID = vehicleID
	}
	switch {
	case v.TechnicianID == "" && v.Status == entities.VisitStatusAssigned:
		v.Status = entities.VisitStatusPending
	case v.TechnicianID != "" && v.Status == entities.VisitStatusPending:
		v.Status = entities.VisitStatusAssigned
	}

	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VisitUseCase) Schedule(ctx context.Context, visitID string, date time.Time) (entities.Visit, error) {
	if date.IsZero() {
		return entities.Visit{}, ErrInvalidVisitInput
	}

	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.Status.Terminal() || v.Status == entities.VisitStatusInProgress {
		return entities.Visit{}, ErrVisitClosed
	}

	d := date.UTC()
	v.ScheduledDate = &d
	v.Status = entities.VisitStatusScheduled
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VisitUseCase) Start(ctx context.Context, visitID string) (entities.Visit, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.Status.Terminal() {
		return entities.Visit{}, ErrVisitClosed
	}

	v.Status = entities.VisitStatusInProgress
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VisitUseCase) Complete(ctx context.Context, visitID string, actualPrice *float64) (entities.Visit, error) {
	if actualPrice != nil && *actualPrice < 0 {
		return entities.Visit{}, ErrInvalidVisitInput
	}

	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.Status.Terminal() {
		return entities.Visit{}, ErrVisitClosed
	}

	if actualPrice != nil {
		v.ActualPrice = actualPrice
	}
	v.Status = entities.VisitStatusCompleted
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

func (u *VisitUseCase) Cancel(ctx context.Context, visitID string) (entities.Visit, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.Status.Terminal() {
		return entities.Visit{}, ErrVisitClosed
	}

	v.Status = entities.VisitStatusCancelled
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

// ProposePrice stores a technician's proposed price and validates it against
// the visit estimate. The proposal is stored even when it needs approval; the
// variance result tells the caller which case they are in.
func (u *VisitUseCase) ProposePrice(ctx context.Context, visitID string, proposed float64) (entities.Visit, pricing.VarianceResult, error) {
	if proposed <= 0 {
		return entities.Visit{}, pricing.VarianceResult{}, ErrInvalidVisitInput
	}

	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, pricing.VarianceResult{}, err
	}
	if v.Status.Terminal() {
		return entities.Visit{}, pricing.VarianceResult{}, ErrVisitClosed
	}

	estimated := 0.0
	if v.EstimatedPrice != nil {
		estimated = *v.EstimatedPrice
	}
	result := pricing.ValidatePriceVariance(estimated, proposed, pricing.DefaultMaxVariancePercent)

	v.TechProposedPrice = &proposed
	v.UpdatedAt = time.Now().UTC()
	updated, err := u.update(ctx, v)
	if err != nil {
		return entities.Visit{}, pricing.VarianceResult{}, err
	}
	return updated, result, nil
}

func (u *VisitUseCase) ApproveProposedPrice(ctx context.Context, visitID string) (entities.Visit, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.TechProposedPrice == nil {
		return entities.Visit{}, ErrNoProposedPrice
	}

	v.ActualPrice = v.TechProposedPrice
	v.UpdatedAt = time.Now().UTC()
	return u.update(ctx, v)
}

// PayDeposit charges the visit deposit through the payment gateway and stamps
// DepositPaidAt. The amount always comes from the stored visit, never from
// the caller's payload.
func (u *VisitUseCase) PayDeposit(ctx context.Context, visitID string, payload json.RawMessage) (entities.Visit, error) {
	log.Printf("[deposit][usecase] pay start raw_visit_id=%q payload_len=%d", visitID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if !v.RequiresDeposit || v.DepositAmount == nil {
		log.Printf("[deposit][usecase] deposit not required visit_id=%s", v.ID)
		return entities.Visit{}, ErrDepositNotRequired
	}
	if v.DepositPaidAt != nil {
		log.Printf("[deposit][usecase] deposit already paid visit_id=%s paid_at=%s", v.ID, v.DepositPaidAt.Format(time.RFC3339))
		return entities.Visit{}, ErrDepositAlreadyPaid
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[deposit][usecase] gateway not configured visit_id=%s", v.ID)
		return entities.Visit{}, errors.New("payment gateway not configured")
	}

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode && len(payload) > 0 {
			return entities.Visit{}, ErrInvalidVisitInput
		}
		payload = json.RawMessage("{}")
	}

	// Link the charge to the visit and force the amount from the DB record.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = v.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Deposit for visit %d of job %s", v.VisitNumber, v.JobID)
		}
		reqMap["transaction_amount"] = *v.DepositAmount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	var providerPaymentID string
	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway visit_id=%s", v.ID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	} else {
		log.Printf("[deposit][usecase] calling payment gateway visit_id=%s amount=%.2f", v.ID, *v.DepositAmount)
		id, status, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed visit_id=%s err=%v", v.ID, err)
			if isGatewayUnauthorized(err) {
				return entities.Visit{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Visit{}, ErrPaymentGatewayBadRequest
			}
			return entities.Visit{}, err
		}
		log.Printf("[deposit][usecase] payment gateway success visit_id=%s provider_payment_id=%s provider_status=%s", v.ID, id, status)
		providerPaymentID = id
	}

	now := time.Now().UTC()
	v.DepositPaidAt = &now
	v.DepositPaymentID = providerPaymentID
	v.UpdatedAt = now

	updated, err := u.update(ctx, v)
	if err != nil {
		log.Printf("[deposit][usecase] visit update failed visit_id=%s err=%v", v.ID, err)
		return entities.Visit{}, err
	}
	log.Printf("[deposit][usecase] pay success visit_id=%s payment_id=%s", updated.ID, providerPaymentID)
	return updated, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
