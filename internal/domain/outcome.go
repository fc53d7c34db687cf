package domain

// OutcomeKind is the result of processing one mapping entry.
type OutcomeKind string

// Outcome kinds.
const (
	OutcomeCopied        OutcomeKind = "copied"
	OutcomeSourceMissing OutcomeKind = "source-missing"
	OutcomeCopyFailed    OutcomeKind = "copy-failed"
)

// Outcome records what happened to a single mapping entry.
// Fields are ordered to minimize memory padding.
type Outcome struct {
	Err   error // nil for OutcomeCopied
	Entry MappingEntry
	Kind  OutcomeKind
}

// OK reports whether the entry was copied.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeCopied
}
