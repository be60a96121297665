package aql

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/garmentqc/internal/models"
)

// Lot is one entry of a batch evaluation.
type Lot struct {
	Name   string
	Size   int
	Source TotalsSource
}

// EvaluateBatch evaluates independent lots in parallel, running at most
// limit evaluations at once (limit <= 0 means unbounded). Verdicts are
// returned in input order. The first failing lot cancels the remaining work.
// Each onDone hook runs from the worker goroutine after a lot succeeds, so
// hooks must be safe for concurrent use.
func (e *Evaluator) EvaluateBatch(ctx context.Context, lots []Lot, limit int, onDone ...func(Lot, models.LotVerdict)) ([]models.LotVerdict, error) {
	verdicts := make([]models.LotVerdict, len(lots))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, lot := range lots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Evaluate(lot.Size, lot.Source)
			if err != nil {
				return fmt.Errorf("lot %s: %w", lotName(lot, i), err)
			}
			verdicts[i] = v
			for _, hook := range onDone {
				hook(lot, v)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

func lotName(lot Lot, i int) string {
	if lot.Name != "" {
		return lot.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
