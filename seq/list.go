package seq

import (
	"github.com/emirpasic/gods/lists"

	"github.com/npillmayer/parseq"
)

// List is a gods list viewed as a sequence of its values. Splitting advances
// an index into the shared container; the container itself is never touched.
// Callers must not mutate the list while a parse over it is in progress.
//
// The part type is interface{}, as that is what gods containers hold.
type List struct {
	list lists.List
	at   int
}

var _ parseq.Sequence[List, interface{}] = List{}

// FromList wraps a gods list, e.g. an arraylist or a doublylinkedlist.
func FromList(l lists.List) List {
	return List{list: l}
}

// SplitFirst returns the value at the sequence's current front, and a
// remainder positioned one value further.
func (s List) SplitFirst() (interface{}, List, bool) {
	v, ok := s.list.Get(s.at)
	if !ok {
		return nil, s, false
	}
	return v, List{list: s.list, at: s.at + 1}, true
}
