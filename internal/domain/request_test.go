package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"loan", KindLoan, false},
		{" Mortgage ", KindMortgage, false},
		{"compound-interest", KindCompound, false},
		{"budget", KindBudget, false},
		{"lottery", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveKind(t *testing.T) {
	t.Run("inferred from section", func(t *testing.T) {
		req := CalculationRequest{Budget: &BudgetParameters{}}
		kind, err := req.ResolveKind()
		require.NoError(t, err)
		assert.Equal(t, KindBudget, kind)
	})

	t.Run("explicit kind matches section", func(t *testing.T) {
		req := CalculationRequest{Kind: "loan", Loan: &LoanParameters{}}
		kind, err := req.ResolveKind()
		require.NoError(t, err)
		assert.Equal(t, KindLoan, kind)
	})

	t.Run("explicit kind without section", func(t *testing.T) {
		req := CalculationRequest{Kind: "loan", Budget: &BudgetParameters{}}
		_, err := req.ResolveKind()
		assert.Error(t, err)
	})

	t.Run("no sections", func(t *testing.T) {
		req := CalculationRequest{}
		_, err := req.ResolveKind()
		assert.Error(t, err)
	})

	t.Run("ambiguous sections", func(t *testing.T) {
		req := CalculationRequest{Loan: &LoanParameters{}, Budget: &BudgetParameters{}}
		_, err := req.ResolveKind()
		assert.Error(t, err)
	})
}

func TestOutcomeHelpers(t *testing.T) {
	ok := CalculationOutcome{Kind: KindLoan}
	bad := CalculationOutcome{Kind: KindBudget, Name: "March", Error: "boom"}

	assert.False(t, ok.Failed())
	assert.True(t, bad.Failed())
	assert.Equal(t, "loan", ok.Title())
	assert.Equal(t, "March", bad.Title())

	batch := BatchResult{Outcomes: []CalculationOutcome{ok, bad}}
	assert.Equal(t, 1, batch.FailedCount())
}

func TestNewRequest(t *testing.T) {
	for _, kind := range Kinds() {
		req := NewRequest(kind)
		resolved, err := req.ResolveKind()
		assert.NoError(t, err, string(kind))
		assert.Equal(t, kind, resolved)
		assert.NotNil(t, req.Params(kind), string(kind))
	}

	empty := CalculationRequest{}
	assert.Nil(t, empty.Params(KindLoan))
}
