package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/logger"
	"github.com/hance08/ffly/internal/model"
)

type TransactionService struct {
	api    TransactionAPI
	logger *slog.Logger
}

func NewTransactionService(api TransactionAPI, log *slog.Logger) *TransactionService {
	return &TransactionService{api: api, logger: log.With(logger.FieldComponent, "transactions")}
}

// GetTransactions returns one flattened page.
func (ts *TransactionService) GetTransactions(ctx context.Context, f firefly.TransactionFilter) (model.Page[model.Transaction], error) {
	groups, err := ts.api.ListTransactions(ctx, f)
	if err != nil {
		return model.Page[model.Transaction]{}, fmt.Errorf("failed to get transactions: %w", err)
	}
	ts.noteDroppedLegs(groups.Groups)
	return FlattenPage(groups), nil
}

// GetAllTransactions walks every page matching f, starting at page 1.
func (ts *TransactionService) GetAllTransactions(ctx context.Context, f firefly.TransactionFilter) ([]model.Transaction, error) {
	return collectPages(ctx, func(ctx context.Context, page int) (model.Page[model.Transaction], error) {
		f.Page = page
		return ts.GetTransactions(ctx, f)
	})
}

// GetRecentTransactions returns at most limit records from the first page.
func (ts *TransactionService) GetRecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	page, err := ts.GetTransactions(ctx, firefly.TransactionFilter{Page: 1})
	if err != nil {
		return nil, err
	}
	if len(page.Data) > limit {
		return page.Data[:limit], nil
	}
	return page.Data, nil
}

func (ts *TransactionService) GetTransactionByID(ctx context.Context, id string) (model.Transaction, error) {
	group, err := ts.api.GetTransaction(ctx, id)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	ts.noteDroppedLegs([]firefly.TransactionGroup{group})

	tx, ok := FlattenGroup(group)
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %s has no splits", id)
	}
	return tx, nil
}

func (ts *TransactionService) CreateTransaction(ctx context.Context, form *TransactionForm) (model.Transaction, error) {
	group, err := ts.api.CreateTransaction(ctx, form.Payload())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	tx, _ := FlattenGroup(group)
	return tx, nil
}

func (ts *TransactionService) UpdateTransaction(ctx context.Context, id string, form *TransactionForm) (model.Transaction, error) {
	group, err := ts.api.UpdateTransaction(ctx, id, form.Payload())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}
	tx, _ := FlattenGroup(group)
	return tx, nil
}

func (ts *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := ts.api.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

// TODO: drop this once split transactions are rendered leg by leg.
func (ts *TransactionService) noteDroppedLegs(groups []firefly.TransactionGroup) {
	if n := DroppedLegs(groups); n > 0 {
		ts.logger.Debug("split legs beyond the first are not shown", "dropped_legs", n)
	}
}
