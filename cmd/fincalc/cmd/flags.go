package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	"github.com/TwistedSD/Financial-Calculators/internal/store"
)

// decimalValue binds a flag to a decimal field. "$1,500" and "7.5%" are accepted.
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(d *decimal.Decimal) *decimalValue {
	return &decimalValue{d: d}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	cleaned := strings.NewReplacer(",", "", "$", "", "%", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// categoriesValue upserts "Name=Amount" entries into a budget's categories.
// Several entries may be given comma separated or by repeating the flag.
type categoriesValue struct {
	categories *domain.ExpenseCategories
	applied    []string
}

func (v *categoriesValue) String() string {
	return strings.Join(v.applied, ",")
}

func (v *categoriesValue) Set(s string) error {
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, raw, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("category %q must look like Name=Amount", entry)
		}
		var amount decimal.Decimal
		if err := newDecimalValue(&amount).Set(raw); err != nil {
			return fmt.Errorf("category %s: %w", name, err)
		}
		v.upsert(name, amount)
		v.applied = append(v.applied, entry)
	}
	return nil
}

func (v *categoriesValue) upsert(name string, amount decimal.Decimal) {
	for i := range *v.categories {
		if strings.EqualFold((*v.categories)[i].Name, name) {
			(*v.categories)[i].Amount = amount
			return
		}
	}
	*v.categories = append(*v.categories, domain.ExpenseCategory{Name: name, Amount: amount})
}

func (v *categoriesValue) Type() string { return "name=amount" }

// restoreInputs loads the saved parameters of kind into params, then re-applies
// every flag the user set explicitly so that flags win over saved values.
// Nothing saved is not an error.
func restoreInputs(ctx context.Context, cmd *cobra.Command, st store.Store, kind domain.Kind, params any) (bool, error) {
	explicit := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := st.Load(ctx, kind, params); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("restore %s inputs: %w", kind, err)
	}
	for name, value := range explicit {
		if err := cmd.Flags().Set(name, value); err != nil {
			return true, fmt.Errorf("re-apply --%s: %w", name, err)
		}
	}
	return true, nil
}
