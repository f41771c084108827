package sync

// Outcome classifies one fetch cycle of the sync loop.
type Outcome string

const (
	// OutcomeApplied: a new document was fetched and handed to the applier.
	OutcomeApplied Outcome = "applied"

	// OutcomeUnchanged: the server answered 304; the cache is current.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeFailed: the fetch failed; the cached document was kept as is.
	OutcomeFailed Outcome = "failed"

	// OutcomeSkipped: another fetch was already in flight.
	OutcomeSkipped Outcome = "skipped"
)

// Result is the typed outcome of a fetch cycle. The loop decides
// stale-vs-fail explicitly from it instead of swallowing errors.
type Result struct {
	Outcome Outcome
	Err     error

	// Fallback marks a result served from the bundled static document
	// because the primary endpoint is not deployed.
	Fallback bool
}
