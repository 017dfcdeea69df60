package assessment

// Kind controls question polarity.
type Kind string

const (
	KindDirect  Kind = "direct"
	KindInverse Kind = "inverse"
)

// IsInverse reports whether answers to the question must be flipped.
// Anything other than "inverse", including the empty string, is direct.
func (k Kind) IsInverse() bool {
	return k == KindInverse
}

// Status marks reference data as eligible for a report run.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// Active reports whether the row participates in scoring.
func (s Status) Active() bool {
	return s == StatusActive
}
