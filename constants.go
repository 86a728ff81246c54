package nanops

// Formatting
const (
	maxPrintElements = 64 // Larger arrays print as shape only
)

// Selection
const (
	halfDivisor = 2 // Divisor for the median position
)

// Boolean results are stored as float64 in result arrays.
const (
	trueValue  = 1.0
	falseValue = 0.0
)
