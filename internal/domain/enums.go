package domain

type ChartKind string

const (
	ChartArea      ChartKind = "area"
	ChartBar       ChartKind = "bar"
	ChartLine      ChartKind = "line"
	ChartTable     ChartKind = "table"
	ChartBigNumber ChartKind = "big_number"
	ChartTopN      ChartKind = "top_n"
)

// ValidChartKinds is the canonical set of accepted chart kind strings.
var ValidChartKinds = map[string]bool{
	"area": true, "bar": true, "line": true,
	"table": true, "big_number": true, "top_n": true,
}

type Fidelity string

const (
	FidelityHigh   Fidelity = "high"
	FidelityMedium Fidelity = "medium"
	FidelityLow    Fidelity = "low"
)

// ValidFidelities is the canonical set of accepted fidelity tier strings.
var ValidFidelities = map[string]bool{
	"high": true, "medium": true, "low": true,
}
