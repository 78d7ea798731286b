package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ExpenseCategory is one named monthly expense
type ExpenseCategory struct {
	Name   string          `yaml:"name" json:"name" toml:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount" toml:"amount"`
}

// ExpenseCategories keeps categories in the order they were entered.
// It decodes from either a mapping (name: amount) or a list of {name, amount}.
type ExpenseCategories []ExpenseCategory

// UnmarshalYAML implements custom YAML unmarshaling that preserves mapping order
func (c *ExpenseCategories) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		out := make(ExpenseCategories, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			var amount decimal.Decimal
			if err := value.Content[i+1].Decode(&amount); err != nil {
				return fmt.Errorf("category %q: %w", value.Content[i].Value, err)
			}
			out = append(out, ExpenseCategory{Name: value.Content[i].Value, Amount: amount})
		}
		*c = out
		return nil
	case yaml.SequenceNode:
		var list []ExpenseCategory
		if err := value.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	default:
		return fmt.Errorf("categories must be a mapping or a list, got %s", value.Tag)
	}
}

// MarshalYAML writes categories back as an ordered mapping
func (c ExpenseCategories) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, cat := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cat.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: cat.Amount.String()},
		)
	}
	return node, nil
}

// UnmarshalJSON accepts an object (order preserved) or an array
func (c *ExpenseCategories) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []ExpenseCategory
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*c = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories must be an object or an array")
	}
	out := ExpenseCategories{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category name must be a string")
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		out = append(out, ExpenseCategory{Name: name, Amount: amount})
	}
	*c = out
	return nil
}

// MarshalJSON writes categories as an ordered object
func (c ExpenseCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		val, err := cat.Amount.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BudgetParameters holds monthly income and the expense categories
type BudgetParameters struct {
	MonthlyIncome decimal.Decimal   `yaml:"monthly_income" json:"monthly_income" toml:"monthly_income"`
	Categories    ExpenseCategories `yaml:"categories" json:"categories" toml:"categories"`
}

// BudgetLine is one category's share of total expenses
type BudgetLine struct {
	Category       string          `yaml:"category" json:"category"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	PercentOfTotal decimal.Decimal `yaml:"percent_of_total" json:"percent_of_total"`
}

// BudgetResult is the outcome of a budget allocation
type BudgetResult struct {
	Income             decimal.Decimal `yaml:"income" json:"income"`
	TotalExpenses      decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	Remaining          decimal.Decimal `yaml:"remaining" json:"remaining"`
	SavingsRatePercent decimal.Decimal `yaml:"savings_rate_percent" json:"savings_rate_percent"`
	Breakdown          []BudgetLine    `yaml:"breakdown" json:"breakdown"`
}
