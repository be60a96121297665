// Package aql implements AQL acceptance sampling for production lots.
//
// A Table maps lot-size ranges to sampling plans. An Evaluator looks up the
// plan for a lot, sums the caller's defect tallies and applies the tiered
// decision rule:
//
//  1. any critical defect fails the lot,
//  2. major defects above the plan's limit fail the lot,
//  3. minor defects above the plan's limit send the lot to rework,
//  4. anything else passes.
//
// Everything in this package is pure; a Table is immutable after construction
// and may be shared between goroutines.
package aql
