package domain

// Widget is the transient configuration of a single chart: what it is
// called, how it is drawn, and the bucket interval it asked for. Interval
// may be empty, in which case the selector default applies.
type Widget struct {
	Title    string
	Kind     ChartKind
	Interval string
}
