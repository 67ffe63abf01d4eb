package votesmart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Record is a kind-tagged view over one payload node of a response.
// Fields holds the node's key/value pairs exactly as the service returned
// them; Nested holds the sub-sequences some kinds carry (Election stages,
// BillDetail sponsors/actions/amendments).
type Record struct {
	Kind   Kind
	Fields map[string]any
	Nested map[string][]Record
}

func newRecord(kind Kind) Record {
	return Record{Kind: kind, Fields: make(map[string]any)}
}

// Get returns the raw value of a field
func (r Record) Get(key string) (any, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Text returns a field coerced to a string, or "" when absent
func (r Record) Text(key string) string {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(s)
}

// Keys returns the field names in sorted order
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsMap returns the record as a plain map with nested sequences inlined
// under their own keys.
func (r Record) AsMap() map[string]any {
	out := make(map[string]any, len(r.Fields)+len(r.Nested))
	for k, v := range r.Fields {
		out[k] = v
	}
	for k, children := range r.Nested {
		items := make([]map[string]any, 0, len(children))
		for _, child := range children {
			items = append(items, child.AsMap())
		}
		out[k] = items
	}
	return out
}

// Display returns a human readable summary derived from well-known fields.
// Missing fields never cause an error; the summary just gets shorter.
func (r Record) Display() string {
	if f, ok := displayByKind[r.Kind]; ok {
		if s := strings.TrimSpace(f(r)); s != "" {
			return s
		}
	}
	for _, key := range []string{"name", "title", "billNumber", "id"} {
		if s := r.Text(key); s != "" {
			return s
		}
	}
	return string(r.Kind)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func personName(r Record) string {
	return joinNonEmpty(" ", r.Text("title"), r.Text("firstName"), r.Text("middleName"), r.Text("lastName"), r.Text("suffix"))
}

func withParen(main, extra string) string {
	if extra == "" {
		return main
	}
	if main == "" {
		return "(" + extra + ")"
	}
	return main + " (" + extra + ")"
}

var displayByKind = map[Kind]func(Record) string{
	KindAddress: func(r Record) string {
		return joinNonEmpty(", ", r.Text("street"), r.Text("city"), joinNonEmpty(" ", r.Text("state"), r.Text("zip")))
	},
	KindWebAddress: func(r Record) string {
		return joinNonEmpty(": ", r.Text("webAddressType"), r.Text("webAddress"))
	},
	KindBio: func(r Record) string {
		return personName(r)
	},
	KindAddlBio: func(r Record) string {
		return joinNonEmpty(": ", r.Text("name"), r.Text("data"))
	},
	KindCandidate: func(r Record) string {
		return personName(r)
	},
	KindCommitteeMember: func(r Record) string {
		return withParen(personName(r), r.Text("position"))
	},
	KindStage: func(r Record) string {
		return withParen(r.Text("name"), r.Text("electionDate"))
	},
	KindStageCandidate: func(r Record) string {
		return withParen(personName(r), r.Text("party"))
	},
	KindLeader: func(r Record) string {
		return withParen(personName(r), r.Text("position"))
	},
	KindMeasure: func(r Record) string {
		return joinNonEmpty(" ", r.Text("measureCode"), r.Text("title"))
	},
	KindMeasureDetail: func(r Record) string {
		return joinNonEmpty(" ", r.Text("measureCode"), r.Text("title"))
	},
	KindNpat: func(r Record) string {
		return r.Text("surveyMessage")
	},
	KindRating: func(r Record) string {
		return withParen(r.Text("rating"), r.Text("timespan"))
	},
	KindBill: func(r Record) string {
		return joinNonEmpty(" ", r.Text("billNumber"), r.Text("title"))
	},
	KindBillDetail: func(r Record) string {
		return joinNonEmpty(" ", r.Text("billNumber"), r.Text("title"))
	},
	KindBillSponsor: func(r Record) string {
		return withParen(r.Text("name"), r.Text("type"))
	},
	KindBillAction: func(r Record) string {
		return withParen(r.Text("statusDate"), r.Text("stage"))
	},
	KindBillAmendment: func(r Record) string {
		return joinNonEmpty(" ", r.Text("amendmentNumber"), r.Text("title"))
	},
	KindBillActionDetail: func(r Record) string {
		return joinNonEmpty(" ", r.Text("billNumber"), r.Text("title"))
	},
	KindVote: func(r Record) string {
		return joinNonEmpty(": ", r.Text("candidateName"), r.Text("action"))
	},
	KindVeto: func(r Record) string {
		return joinNonEmpty(" ", r.Text("billNumber"), r.Text("billTitle"))
	},
}
