package service

import (
	"context"
	"time"

	"spendaily/internal/budget"
	"spendaily/internal/dto"
	"spendaily/internal/events"
	"spendaily/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SavingsGoalService coordinates savings-goal mutations. The update surface
// is deliberately split into two named operations: AddFunds for a bare
// contribution and Replace for a full in-place edit that preserves the goal's
// identity.
type SavingsGoalService struct {
	store  SavingsGoalStore
	bus    events.Publisher
	logger *zap.Logger
	now    func() time.Time
}

func NewSavingsGoalService(store SavingsGoalStore, bus events.Publisher, logger *zap.Logger) *SavingsGoalService {
	return &SavingsGoalService{
		store:  store,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// Create persists the goal and, for goals with a future target date,
// immediately applies the first day's contribution before announcing it.
func (s *SavingsGoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSavingsGoalRequest) (*dto.SavingsGoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	goal := &models.SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		IsActive:      true,
		CreatedAt:     now,
	}
	if req.TargetDate != "" {
		targetDate, _ := dto.ParseDate(req.TargetDate)
		goal.TargetDate = &targetDate
	}

	if err := s.store.Create(ctx, goal); err != nil {
		return nil, err
	}

	if jumpStart := budget.JumpStart(goal, now); jumpStart.IsPositive() {
		updated, err := s.store.AddAmount(ctx, goal.ID, jumpStart)
		if err != nil {
			s.logger.Error("Failed to apply jump-start contribution", zap.Error(err), zap.String("goal", goal.Name))
		} else {
			goal = updated
		}
	}

	resp := dto.NewSavingsGoalResponse(goal)
	s.bus.Publish(events.Event{Type: events.SavingsGoalAdded, Data: resp})

	return &resp, nil
}

// List returns the user's active goals; archived ones stay hidden.
func (s *SavingsGoalService) List(ctx context.Context, userID uuid.UUID) ([]dto.SavingsGoalResponse, error) {
	goals, err := s.store.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewSavingsGoalResponses(goals), nil
}

// AddFunds accumulates a contribution into the goal's current amount.
func (s *SavingsGoalService) AddFunds(ctx context.Context, userID, id uuid.UUID, req *dto.PatchSavingsGoalRequest) (*dto.SavingsGoalResponse, error) {
	if req.Amount == nil {
		return nil, &dto.ValidationError{Field: "amount", Message: "is required"}
	}

	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}

	goal, err := s.store.AddAmount(ctx, id, *req.Amount)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	resp := dto.NewSavingsGoalResponse(goal)
	s.bus.Publish(events.Event{Type: events.SavingsGoalUpdated, Data: resp})

	return &resp, nil
}

// Replace rewrites the goal's fields in place. Identity is preserved; absent
// currentAmount and targetDate keep their stored values.
func (s *SavingsGoalService) Replace(ctx context.Context, userID, id uuid.UUID, req *dto.PatchSavingsGoalRequest) (*dto.SavingsGoalResponse, error) {
	if err := req.ValidateReplace(); err != nil {
		return nil, err
	}

	goal, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	goal.Name = *req.Name
	goal.TargetAmount = *req.TargetAmount
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			goal.TargetDate = nil
		} else {
			targetDate, _ := dto.ParseDate(*req.TargetDate)
			goal.TargetDate = &targetDate
		}
	}

	if err := s.store.Replace(ctx, goal); err != nil {
		return nil, translateStoreErr(err)
	}

	resp := dto.NewSavingsGoalResponse(goal)
	s.bus.Publish(events.Event{Type: events.SavingsGoalUpdated, Data: resp})

	return &resp, nil
}

// Archive soft-deletes the goal. Its accumulated balance is forfeited from
// the spendable pool, not folded back into the budget.
func (s *SavingsGoalService) Archive(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.store.Archive(ctx, id); err != nil {
		return translateStoreErr(err)
	}

	s.bus.Publish(events.Event{Type: events.SavingsGoalDeleted, Data: map[string]string{"id": id.String()}})
	return nil
}

func (s *SavingsGoalService) owned(ctx context.Context, userID, id uuid.UUID) (*models.SavingsGoal, error) {
	goal, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if goal.UserID != userID {
		return nil, ErrPermissionDenied
	}
	if !goal.IsActive {
		// Archived goals are invisible to all reads and writes.
		return nil, ErrNotFound
	}
	return goal, nil
}
