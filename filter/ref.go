package filter

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/smig/internal/wire"
)

// Ref refers to another filter in the same chain, by identifier or by
// position in the filter list.
type Ref struct {
	name   string
	index  int
	byName bool
}

// ByName refers to the filter whose identifier is id.
func ByName(id string) Ref {
	return Ref{name: id, byName: true}
}

// ByIndex refers to the filter at position i in the chain.
func ByIndex(i int) Ref {
	return Ref{index: i}
}

// Name returns the identifier if r refers by name.
func (r Ref) Name() (string, bool) { return r.name, r.byName }

// Index returns the position if r refers by index.
func (r Ref) Index() (int, bool) { return r.index, !r.byName }

func (r Ref) String() string {
	if r.byName {
		return fmt.Sprintf("filter %q", r.name)
	}
	return fmt.Sprintf("filter #%d", r.index)
}

// Document returns {mifiltername} or {cifilterindex}.
func (r Ref) Document() (any, error) {
	var o wire.Object
	r.write(&o)
	b, err := o.Bytes()
	return json.RawMessage(b), err
}

func (r Ref) write(o *wire.Object) {
	if r.byName {
		o.Field("mifiltername", r.name)
		return
	}
	o.Field("cifilterindex", r.index)
}

// MarshalJSON encodes the reference document.
func (r Ref) MarshalJSON() ([]byte, error) {
	v, err := r.Document()
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// UnmarshalJSON decodes {mifiltername} or {cifilterindex}.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var w struct {
		Name  *string `json:"mifiltername"`
		Index *int    `json:"cifilterindex"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ref, ok := refFrom(w.Name, w.Index)
	if !ok {
		return fmt.Errorf("filter: reference needs mifiltername or cifilterindex")
	}
	*r = ref
	return nil
}

func refFrom(name *string, index *int) (Ref, bool) {
	switch {
	case name != nil:
		return ByName(*name), true
	case index != nil:
		return ByIndex(*index), true
	}
	return Ref{}, false
}
