package roadtrip

import "fmt"

// Step is one border crossing of a route.
type Step struct {
	From  string
	To    string
	Km    int  // capital distance; meaningful only when Known
	Known bool // false when the distance could not be resolved
}

// String renders the step as "<from> --> <to> (<N> km.)", or with
// "(Distance unknown)" in place of the distance.
func (s Step) String() string {
	if !s.Known {
		return fmt.Sprintf("%s --> %s (Distance unknown)", s.From, s.To)
	}
	return fmt.Sprintf("%s --> %s (%d km.)", s.From, s.To, s.Km)
}
