package mastery

// Status is the per-skill progress snapshot the engine reads at the
// start of each round. It is owned by the progress store; the engine
// never mutates it.
type Status struct {
	// CurrentPoints is the cumulative point total for the skill.
	CurrentPoints int

	// CompletedQuestionIDs holds the identities of bank questions the
	// student has already answered.
	CompletedQuestionIDs map[string]bool
}

// Result is the outcome of a mastery check for one submission.
type Result struct {
	// JustMastered is true only on the threshold-crossing submission.
	JustMastered bool

	// NewTotal is the skill's point total after this round, floored
	// at zero.
	NewTotal int
}

// Check decides whether this round's score pushed the skill across the
// mastery threshold. The check is edge-triggered: it fires exactly once,
// on the transition, and never again while the total stays above the
// threshold.
//
// Penalty rules can drive a round score negative; the stored total is
// floored at zero so a bad round cannot bury a skill below its real
// progress.
func Check(priorPoints, roundScore, threshold int) Result {
	newTotal := priorPoints + roundScore
	if newTotal < 0 {
		newTotal = 0
	}
	return Result{
		JustMastered: priorPoints < threshold && newTotal >= threshold,
		NewTotal:     newTotal,
	}
}
