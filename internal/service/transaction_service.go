package service

import (
	"context"
	"time"

	"spendaily/internal/dto"
	"spendaily/internal/events"
	"spendaily/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService coordinates transaction mutations: validate, check
// ownership, persist, then publish the typed event. Any failure aborts the
// whole operation with nothing persisted and no event.
type TransactionService struct {
	store  TransactionStore
	bus    events.Publisher
	logger *zap.Logger
}

func NewTransactionService(store TransactionStore, bus events.Publisher, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := dto.ParseDate(req.Date)

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        models.TransactionType(req.Type),
		CreatedAt:   time.Now(),
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, &dto.ValidationError{Field: "categoryId", Message: "must be a valid id"}
		}
		tx.CategoryID = &categoryID
	}

	if err := s.store.Create(ctx, tx); err != nil {
		return nil, err
	}

	resp := dto.NewTransactionResponse(tx)
	s.bus.Publish(events.Event{Type: events.TransactionAdded, Data: resp})

	return &resp, nil
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error) {
	transactions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewTransactionResponses(transactions), nil
}

func (s *TransactionService) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]dto.TransactionResponse, error) {
	transactions, err := s.store.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return dto.NewTransactionResponses(transactions), nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		tx.Date, _ = dto.ParseDate(*req.Date)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Type != nil {
		tx.Type = models.TransactionType(*req.Type)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			tx.CategoryID = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, &dto.ValidationError{Field: "categoryId", Message: "must be a valid id"}
			}
			tx.CategoryID = &categoryID
		}
	}

	if err := s.store.Update(ctx, tx); err != nil {
		return nil, translateStoreErr(err)
	}

	resp := dto.NewTransactionResponse(tx)
	s.bus.Publish(events.Event{Type: events.TransactionUpdated, Data: resp})

	return &resp, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return translateStoreErr(err)
	}

	s.bus.Publish(events.Event{Type: events.TransactionDeleted, Data: map[string]string{"id": id.String()}})
	return nil
}

// owned fetches the transaction and enforces that the acting user owns it.
func (s *TransactionService) owned(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if tx.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return tx, nil
}
