package aql

import (
	"github.com/harrison/garmentqc/internal/models"
)

// TotalsSource supplies the defect totals of one inspection. *ledger.Ledger
// satisfies it.
type TotalsSource interface {
	Totals() models.DefectTotals
}

// Evaluator decides lot acceptance against a sampling table.
type Evaluator struct {
	table  *Table
	policy LotSizePolicy
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLotSizePolicy sets how lots of size 0 and 1 are handled.
func WithLotSizePolicy(p LotSizePolicy) Option {
	return func(e *Evaluator) {
		e.policy = p
	}
}

// NewEvaluator creates an Evaluator over table. A nil table selects DefaultTable.
func NewEvaluator(table *Table, opts ...Option) *Evaluator {
	if table == nil {
		table = DefaultTable()
	}
	e := &Evaluator{table: table, policy: PolicyReject}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the sampling table the evaluator uses.
func (e *Evaluator) Table() *Table {
	return e.table
}

// Policy returns the evaluator's lot size policy.
func (e *Evaluator) Policy() LotSizePolicy {
	return e.policy
}

// Evaluate looks up the plan for lotSize, totals the source's defects and
// applies the decision rule.
func (e *Evaluator) Evaluate(lotSize int, source TotalsSource) (models.LotVerdict, error) {
	plan, err := e.table.LookupWithPolicy(lotSize, e.policy)
	if err != nil {
		return models.LotVerdict{}, err
	}

	if source == nil {
		return models.LotVerdict{}, models.NewInvalidInput("ledger", nil, "defect ledger is required")
	}
	totals := source.Totals()
	if err := totals.Validate(); err != nil {
		return models.LotVerdict{}, err
	}

	return models.LotVerdict{
		SampleSize: plan.SampleSize,
		Totals:     totals,
		Status:     Decide(plan, totals),
		PlanUsed:   plan,
	}, nil
}

// Decide applies the tiered decision rule. Clauses are evaluated in order and
// the first match is final. The critical limit is always zero.
func Decide(plan models.SamplingPlanRow, totals models.DefectTotals) models.LotStatus {
	switch {
	case totals.Critical > 0:
		return models.LotFailed
	case totals.Major > plan.MaxMajor:
		return models.LotFailed
	case totals.Minor > plan.MaxMinor:
		return models.LotRework
	default:
		return models.LotPassed
	}
}
