// Package display renders garmentqc results for humans.
//
// It covers three kinds of output:
//
// # Verdict Reports
//
// Renderer turns lot and sample verdicts into boxed text reports and the
// sampling table into a grid:
//
//	r := display.NewRenderer(colorEnabled)
//	fmt.Fprintln(os.Stdout, r.LotVerdict("PO-1042", 120, verdict))
//
// # Warnings
//
// Warning prints a titled yellow warning with optional items and a
// suggestion. WarnClampedLot and WarnPendingPoints build the common ones.
//
// # Progress
//
// ProgressIndicator reports per-lot progress during batch evaluation:
//
//	progress := display.NewProgressIndicator(os.Stderr, len(lots))
//	progress.Start()
//	progress.Step("PO-1042")
//	progress.Complete()
//
// All functions accept io.Writer or return strings for testability.
package display
