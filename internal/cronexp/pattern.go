package cronexp

// PatternKind distinguishes the three constraint forms a field can hold.
type PatternKind int

const (
	// At fires exactly at one value.
	At PatternKind = iota
	// Every fires every Step units from the field's natural origin.
	Every
	// Range fires every Step units within [From, To].
	Range
)

// Pattern is a single constraint within a field. The value type V is
// either int (minute, hour, day-of-month) or string (month and
// day-of-week, which carry their three-letter names).
type Pattern[V any] struct {
	Kind  PatternKind
	Value V   // the exact value for At patterns
	From  V   // the lower bound for Range patterns
	To    V   // the upper bound for Range patterns
	Step  int // the step for Every and Range patterns
}

func atPattern[V any](v V) Pattern[V] {
	return Pattern[V]{Kind: At, Value: v}
}

func everyPattern[V any](step int) Pattern[V] {
	return Pattern[V]{Kind: Every, Step: step}
}

func rangePattern[V any](from, to V, step int) Pattern[V] {
	return Pattern[V]{Kind: Range, From: from, To: to, Step: step}
}

// IsTrivial reports whether the pattern is the unrestricted `*` form,
// which places no constraint on its field.
func (p Pattern[V]) IsTrivial() bool {
	return p.Kind == Every && p.Step == 1
}
