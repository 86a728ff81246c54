package bench

// Signature is an optional call signature such as "(a, 1)".
type Signature struct {
	text    string
	present bool
}

// Sig returns a present signature.
func Sig(text string) Signature {
	return Signature{text: text, present: true}
}

// Absent marks a row that does not apply to a slot.
var Absent = Signature{}

// Get returns the signature text and whether it is present.
func (s Signature) Get() (string, bool) {
	return s.text, s.present
}

// Row is one line of the benchmark table: an array expression, how many
// timing batches to run on it and the call signature per slot.
type Row struct {
	Repeat       int
	Array        string
	OneInput     Signature
	MovingWindow Signature
	Replace      Signature
}

// Signature returns the signature for slot s.
func (r Row) Signature(s Slot) (string, bool) {
	switch s {
	case SlotOneInput:
		return r.OneInput.Get()
	case SlotMovingWindow:
		return r.MovingWindow.Get()
	case SlotReplace:
		return r.Replace.Get()
	default:
		return "", false
	}
}

// The last row has no replace signature: replace on a zero-dimensional
// array is not benchmarked.
var table = [...]Row{
	{10, "rand(1)", Sig("(a)"), Sig("(a, 1)"), Sig("(a, nan, 0)")},
	{10, "rand(10)", Sig("(a)"), Sig("(a, 2)"), Sig("(a, nan, 0)")},
	{6, "rand(100)", Sig("(a)"), Sig("(a, 20)"), Sig("(a, nan, 0)")},
	{3, "rand(1000)", Sig("(a)"), Sig("(a, 200)"), Sig("(a, nan, 0)")},
	{2, "rand(1000000)", Sig("(a)"), Sig("(a, 200)"), Sig("(a, nan, 0)")},

	{6, "rand(10, 10)", Sig("(a)"), Sig("(a, 2)"), Sig("(a, nan, 0)")},
	{3, "rand(100, 100)", Sig("(a)"), Sig("(a, 20)"), Sig("(a, nan, 0)")},
	{2, "rand(1000, 1000)", Sig("(a)"), Sig("(a, 200)"), Sig("(a, nan, 0)")},

	{6, "rand(10, 10)", Sig("(a, 1)"), Absent, Absent},
	{3, "rand(100, 100)", Sig("(a, 1)"), Absent, Absent},
	{3, "rand(1000, 1000)", Sig("(a, 1)"), Absent, Absent},
	{2, "rand(100000, 2)", Sig("(a, 1)"), Sig("(a, 2)"), Absent},

	{6, "rand(10, 10)", Sig("(a, 0)"), Absent, Absent},
	{3, "rand(100, 100)", Sig("(a, 0)"), Absent, Absent},
	{2, "rand(1000, 1000)", Sig("(a, 0)"), Absent, Absent},

	{2, "rand(100, 100, 100)", Sig("(a, 0)"), Absent, Absent},
	{2, "rand(100, 100, 100)", Sig("(a, 1)"), Absent, Absent},
	{2, "rand(100, 100, 100)", Sig("(a, 2)"), Sig("(a, 20)"), Sig("(a, nan, 0)")},

	{10, "array(1)", Sig("(a)"), Absent, Absent},
}

// Rows returns a copy of the benchmark table in report order.
func Rows() []Row {
	return append([]Row(nil), table[:]...)
}
