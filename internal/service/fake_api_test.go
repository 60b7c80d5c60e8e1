package service

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/model"
)

// fakeAPI serves canned pages and records mutations.
type fakeAPI struct {
	accountPages []model.Page[model.Account]
	accountTypes []model.AccountType
	accountsErr  error

	groupPages []firefly.GroupPage
	group      firefly.TransactionGroup
	filters    []firefly.TransactionFilter
	txErr      error

	categories []model.Category
	currencies []model.Currency

	created     []model.TransactionPayload
	updated     map[string]model.TransactionPayload
	deleted     []string
	notes       []string
	currencyIn  []model.CurrencyInput
	updatedCode string
	enabled     []string
	disabled    []string
}

var _ API = (*fakeAPI)(nil)

func pageOf[T any](data []T, current, total int) model.Page[T] {
	return model.Page[T]{
		Data:       data,
		Pagination: model.Pagination{Count: len(data), CurrentPage: current, TotalPages: total},
	}
}

func groupOf(id string, legs ...firefly.TransactionSplit) firefly.TransactionGroup {
	return firefly.TransactionGroup{
		ID:         id,
		Attributes: firefly.TransactionGroupAttributes{CreatedAt: "2026-10-01T08:00:00+00:00", Transactions: legs},
	}
}

func (f *fakeAPI) ListAccounts(_ context.Context, accType model.AccountType, page int) (model.Page[model.Account], error) {
	f.accountTypes = append(f.accountTypes, accType)
	if f.accountsErr != nil {
		return model.Page[model.Account]{}, f.accountsErr
	}
	if page < 1 || page > len(f.accountPages) {
		return model.Page[model.Account]{}, fmt.Errorf("unexpected page %d", page)
	}
	return f.accountPages[page-1], nil
}

func (f *fakeAPI) GetAccount(_ context.Context, id string) (model.Account, error) {
	for _, p := range f.accountPages {
		for _, a := range p.Data {
			if a.ID == id {
				return a, nil
			}
		}
	}
	return model.Account{}, &firefly.APIError{StatusCode: 404}
}

func (f *fakeAPI) CreateAccount(_ context.Context, in model.AccountInput) (model.Account, error) {
	return model.Account{ID: "new", Name: in.Name, Type: in.Type}, nil
}

func (f *fakeAPI) UpdateAccount(_ context.Context, id string, in model.AccountInput) (model.Account, error) {
	return model.Account{ID: id, Name: in.Name, Type: in.Type}, nil
}

func (f *fakeAPI) DeleteAccount(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListCategories(_ context.Context, page int) (model.Page[model.Category], error) {
	return pageOf(f.categories, 1, 1), nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, name, notes string) (model.Category, error) {
	f.notes = append(f.notes, notes)
	return model.Category{ID: "c1", Name: name, Notes: notes}, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, id, name, notes string) (model.Category, error) {
	f.notes = append(f.notes, notes)
	return model.Category{ID: id, Name: name, Notes: notes}, nil
}

func (f *fakeAPI) DeleteCategory(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListCurrencies(_ context.Context, page int) (model.Page[model.Currency], error) {
	return pageOf(f.currencies, 1, 1), nil
}

func (f *fakeAPI) CreateCurrency(_ context.Context, in model.CurrencyInput) (model.Currency, error) {
	f.currencyIn = append(f.currencyIn, in)
	return model.Currency{Code: in.Code, Name: in.Name, Enabled: in.Enabled}, nil
}

func (f *fakeAPI) UpdateCurrency(_ context.Context, code string, in model.CurrencyInput) (model.Currency, error) {
	f.updatedCode = code
	f.currencyIn = append(f.currencyIn, in)
	return model.Currency{Code: in.Code, Name: in.Name, Enabled: in.Enabled}, nil
}

func (f *fakeAPI) DeleteCurrency(_ context.Context, code string) error {
	f.deleted = append(f.deleted, code)
	return nil
}

func (f *fakeAPI) EnableCurrency(_ context.Context, code string) error {
	f.enabled = append(f.enabled, code)
	return nil
}

func (f *fakeAPI) DisableCurrency(_ context.Context, code string) error {
	f.disabled = append(f.disabled, code)
	return nil
}

func (f *fakeAPI) ListTransactions(_ context.Context, filter firefly.TransactionFilter) (firefly.GroupPage, error) {
	f.filters = append(f.filters, filter)
	if f.txErr != nil {
		return firefly.GroupPage{}, f.txErr
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	if page > len(f.groupPages) {
		return firefly.GroupPage{}, fmt.Errorf("unexpected page %d", page)
	}
	return f.groupPages[page-1], nil
}

func (f *fakeAPI) GetTransaction(_ context.Context, id string) (firefly.TransactionGroup, error) {
	if f.txErr != nil {
		return firefly.TransactionGroup{}, f.txErr
	}
	return f.group, nil
}

func (f *fakeAPI) CreateTransaction(_ context.Context, payload model.TransactionPayload) (firefly.TransactionGroup, error) {
	if f.txErr != nil {
		return firefly.TransactionGroup{}, f.txErr
	}
	f.created = append(f.created, payload)
	return groupOf("99", firefly.TransactionSplit{Type: string(payload.Type), Amount: payload.Amount}), nil
}

func (f *fakeAPI) UpdateTransaction(_ context.Context, id string, payload model.TransactionPayload) (firefly.TransactionGroup, error) {
	if f.updated == nil {
		f.updated = make(map[string]model.TransactionPayload)
	}
	f.updated[id] = payload
	return groupOf(id, firefly.TransactionSplit{Type: string(payload.Type), Amount: payload.Amount}), nil
}

func (f *fakeAPI) DeleteTransaction(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
