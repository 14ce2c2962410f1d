package policy

// Outcome says whether a transfer attempt scheduled anything.
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeSkipped Outcome = "skipped"
)

// SkipReason distinguishes "no water needed" from a blocked transfer.
type SkipReason string

const (
	ReasonNone            SkipReason = ""
	ReasonNoDeficit       SkipReason = "no-deficit"
	ReasonNoSurplus       SkipReason = "no-surplus"
	ReasonDestinationFull SkipReason = "destination-full"
	ReasonAmountTooSmall  SkipReason = "amount-too-small"
)

// Decision records one pairwise transfer attempt for the run ledger.
type Decision struct {
	Hour        int
	Canal       string
	Source      string
	Destination string

	Outcome Outcome
	Reason  SkipReason

	// Amount is the volume the evaluator wanted moved this hour; Rate is
	// the resulting flow-rate setting; Delivered is what the (possibly
	// clamped) rate will actually move. Delivered < Amount flags a capped
	// transfer.
	Amount    float64
	Rate      float64
	Delivered float64
}

// Applied reports whether the attempt scheduled a transfer.
func (d Decision) Applied() bool { return d.Outcome == OutcomeApplied }
