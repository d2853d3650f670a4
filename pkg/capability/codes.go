// Package capability resolves symbolic style codes (clear, red, bold, ...)
// into the control sequences the current terminal understands.
//
// The table is built once per process with Build and is read-only afterwards.
// A code the terminal does not support resolves to the empty string.
package capability

// Code is a symbolic style token together with the terminfo capability
// that implements it.
type Code struct {
	Name   string
	Cap    string
	Params []int
}

// codes is the declared order of symbolic codes. Positions are significant:
// the table is aligned with this slice and substitution walks it in order.
var codes = []Code{
	{Name: "clear", Cap: "sgr0"},
	{Name: "black", Cap: "setaf", Params: []int{0}},
	{Name: "red", Cap: "setaf", Params: []int{1}},
	{Name: "green", Cap: "setaf", Params: []int{2}},
	{Name: "yellow", Cap: "setaf", Params: []int{3}},
	{Name: "blue", Cap: "setaf", Params: []int{4}},
	{Name: "magenta", Cap: "setaf", Params: []int{5}},
	{Name: "cyan", Cap: "setaf", Params: []int{6}},
	{Name: "white", Cap: "setaf", Params: []int{7}},
	{Name: "bold", Cap: "bold"},
	{Name: "dim", Cap: "dim"},
	{Name: "reverse", Cap: "rev"},
	{Name: "under", Cap: "smul"},
	{Name: "nounder", Cap: "rmul"},
}

// Codes returns a copy of the symbolic codes in declared order
func Codes() []Code {
	out := make([]Code, len(codes))
	for i, c := range codes {
		out[i] = Code{Name: c.Name, Cap: c.Cap, Params: append([]int(nil), c.Params...)}
	}
	return out
}

// Names returns the symbolic code names in declared order
func Names() []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.Name
	}
	return names
}

// Placeholder returns the format-string token for a code name, e.g. "{red}"
func Placeholder(name string) string {
	return "{" + name + "}"
}
