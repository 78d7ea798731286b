package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	pdec "github.com/TwistedSD/Financial-Calculators/pkg/decimal"
)

var minusHundred = decimal.NewFromInt(-100)

func checkGrowthRate(field string, percent decimal.Decimal) error {
	if percent.LessThanOrEqual(minusHundred) {
		return invalid(field, "must be greater than -100%")
	}
	return nil
}

// CalculateInvestment projects a lump sum plus periodic contributions.
//
// The lump sum compounds once a year at the annual rate; contributions compound
// at rate/contributionsPerYear. The inflation-adjusted value discounts the
// nominal future value by the inflation rate over the same horizon.
func CalculateInvestment(params domain.InvestmentParameters) (*domain.InvestmentResult, error) {
	if params.Years < 0 {
		return nil, invalid("years", "must not be negative")
	}
	if params.InitialAmount.IsNegative() {
		return nil, invalid("initial_amount", "must not be negative")
	}
	if params.PeriodicContribution.IsNegative() {
		return nil, invalid("periodic_contribution", "must not be negative")
	}
	if err := checkGrowthRate("annual_rate_percent", params.AnnualRatePercent); err != nil {
		return nil, err
	}
	if err := checkGrowthRate("inflation_rate_percent", params.InflationRatePercent); err != nil {
		return nil, err
	}
	perYear, err := frequency("contributions_per_year", params.ContributionsPerYear)
	if err != nil {
		return nil, err
	}

	annual := pdec.FromPercent(params.AnnualRatePercent)
	lumpSum := FutureValueLumpSum(params.InitialAmount, annual, params.Years)

	r, err := PeriodicRate(params.AnnualRatePercent, perYear)
	if err != nil {
		return nil, err
	}
	n := params.Years * perYear
	var contributions decimal.Decimal
	switch params.ContributionTiming {
	case domain.TimingBeginning:
		contributions = FutureValueAnnuityDue(params.PeriodicContribution, r, n)
	case domain.TimingEnd, "":
		contributions = FutureValueAnnuity(params.PeriodicContribution, r, n)
	default:
		return nil, invalid("contribution_timing", "must be end or beginning")
	}

	futureValue := lumpSum.Add(contributions)
	contributed := params.InitialAmount.Add(params.PeriodicContribution.Mul(decimal.NewFromInt(int64(n))))
	growth := futureValue.Sub(contributed)

	return &domain.InvestmentResult{
		FutureValue:               futureValue,
		TotalContributed:          contributed,
		TotalGrowth:               growth,
		ReturnOnInvestmentPercent: pdec.PercentOf(growth, contributed),
		InflationAdjustedValue:    PresentValue(futureValue, pdec.FromPercent(params.InflationRatePercent), params.Years),
		Currency:                  params.Currency,
	}, nil
}

// CalculateCompoundInterest grows a principal compounded compoundsPerYear times a
// year, plus monthly deposits compounded monthly.
func CalculateCompoundInterest(params domain.CompoundParameters) (*domain.CompoundResult, error) {
	if params.Years < 0 {
		return nil, invalid("years", "must not be negative")
	}
	if params.Principal.IsNegative() {
		return nil, invalid("principal", "must not be negative")
	}
	if params.MonthlyContribution.IsNegative() {
		return nil, invalid("monthly_contribution", "must not be negative")
	}
	if err := checkGrowthRate("annual_rate_percent", params.AnnualRatePercent); err != nil {
		return nil, err
	}
	perYear, err := frequency("compounds_per_year", params.CompoundsPerYear)
	if err != nil {
		return nil, err
	}

	r, err := PeriodicRate(params.AnnualRatePercent, perYear)
	if err != nil {
		return nil, err
	}
	monthly, err := PeriodicRate(params.AnnualRatePercent, pdec.MonthsPerYear)
	if err != nil {
		return nil, err
	}
	months := params.Years * pdec.MonthsPerYear

	futureValue := FutureValueLumpSum(params.Principal, r, params.Years*perYear).
		Add(FutureValueAnnuity(params.MonthlyContribution, monthly, months))
	contributions := params.Principal.Add(params.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))

	return &domain.CompoundResult{
		FutureValue:        futureValue,
		TotalContributions: contributions,
		TotalInterest:      futureValue.Sub(contributions),
	}, nil
}
