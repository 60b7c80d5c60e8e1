package firefly

import "github.com/hance08/ffly/internal/model"

// resource is the {id, type, attributes} envelope every object comes in.
type resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

type listResponse[T any] struct {
	Data []resource[T] `json:"data"`
	Meta struct {
		Pagination model.Pagination `json:"pagination"`
	} `json:"meta"`
}

type singleResponse[T any] struct {
	Data resource[T] `json:"data"`
}

type accountAttributes struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	CurrentBalance string `json:"current_balance"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
	Active         bool   `json:"active"`
}

type accountRequest struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	Active             bool   `json:"active"`
	AccountRole        string `json:"account_role,omitempty"`
	OpeningBalance     string `json:"opening_balance,omitempty"`
	OpeningBalanceDate string `json:"opening_balance_date,omitempty"`
}

type categoryAttributes struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type categoryRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

type currencyAttributes struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimal_places"`
	Enabled       bool   `json:"enabled"`
	Default       bool   `json:"default"`
}

type currencyRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimal_places"`
	Enabled       bool   `json:"enabled"`
}

// TransactionGroup is a transaction as the server stores it: a group of one
// or more split legs.
type TransactionGroup struct {
	ID         string                     `json:"id"`
	Attributes TransactionGroupAttributes `json:"attributes"`
}

type TransactionGroupAttributes struct {
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
	GroupTitle   string             `json:"group_title"`
	Transactions []TransactionSplit `json:"transactions"`
}

// TransactionSplit is one leg of a group.
type TransactionSplit struct {
	Type            string `json:"type"`
	Date            string `json:"date"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	CurrencyCode    string `json:"currency_code"`
	CurrencySymbol  string `json:"currency_symbol"`
	SourceID        string `json:"source_id"`
	SourceName      string `json:"source_name"`
	DestinationID   string `json:"destination_id"`
	DestinationName string `json:"destination_name"`
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name"`
}

type GroupPage struct {
	Groups     []TransactionGroup
	Pagination model.Pagination
}

type transactionGroupRequest struct {
	Transactions []model.TransactionPayload `json:"transactions"`
}
