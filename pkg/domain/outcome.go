package domain

// Outcome reports how far a state mutation got. Mutations are applied in
// memory first and persisted afterwards; a failed persist leaves the
// in-memory change in place and is surfaced as OutcomeApplied.
type Outcome string

const (
	// OutcomeSaved means the mutation was applied and persisted.
	OutcomeSaved Outcome = "saved"
	// OutcomeApplied means the mutation was applied in memory but could
	// not be persisted.
	OutcomeApplied Outcome = "applied"
)
