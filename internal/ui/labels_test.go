package ui

import (
	"testing"

	"github.com/hance08/ffly/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEndpointLabels(t *testing.T) {
	tests := []struct {
		kind     model.TransactionKind
		wantSrc  string
		wantDest string
	}{
		{model.KindWithdrawal, "From account", "Payee"},
		{model.KindDeposit, "Payer", "To account"},
		{model.KindTransfer, "From account", "To account"},
	}

	for _, tt := range tests {
		src, dest := EndpointLabels(tt.kind)
		assert.Equal(t, tt.wantSrc, src, tt.kind)
		assert.Equal(t, tt.wantDest, dest, tt.kind)
	}
}

func TestCounterparties(t *testing.T) {
	src, dest := Counterparties(model.Transaction{SourceName: "Checking"})
	assert.Equal(t, "Checking", src)
	assert.Equal(t, "-", dest)
}
