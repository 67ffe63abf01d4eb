package votesmart

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// mapper turns decoded response envelopes into records
type mapper struct {
	logger zerolog.Logger
}

// mapEnvelope navigates to the operation's payload node and builds one
// record per result. Single-shaped operations always yield exactly one record.
func (m *mapper) mapEnvelope(op Operation, envelope map[string]any) ([]Record, error) {
	node, err := navigate(op, envelope)
	if err != nil {
		return nil, err
	}

	path := strings.Join(op.Path, ".")

	if op.Shape == ShapeSingle {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, &DecodeError{
				Operation: op.Name,
				Key:       path,
				Reason:    fmt.Sprintf("expected object, got %s", describe(node)),
			}
		}
		rec, err := m.buildRecord(op.Name, op.Kind, obj)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	}

	items, err := m.normalizeList(op.Name, path, node)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := m.buildRecord(op.Name, op.Kind, item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// navigate descends through the operation's path. A missing key means the
// remote schema did not match the table and is reported, never skipped.
func navigate(op Operation, envelope map[string]any) (any, error) {
	var node any = envelope
	for i, key := range op.Path {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, &DecodeError{
				Operation: op.Name,
				Key:       strings.Join(op.Path[:i], "."),
				Reason:    fmt.Sprintf("expected object, got %s", describe(node)),
			}
		}
		next, ok := obj[key]
		if !ok {
			return nil, &DecodeError{
				Operation: op.Name,
				Key:       strings.Join(op.Path[:i+1], "."),
				Reason:    "key not found",
			}
		}
		node = next
	}
	return node, nil
}

// normalizeList turns a payload node into an ordered list of objects.
// The service collapses single-item sequences into a bare object, so a map is
// wrapped into a one-element list. Falsy elements (the service emits "" as a
// placeholder) are dropped.
func (m *mapper) normalizeList(operation, key string, node any) ([]map[string]any, error) {
	switch typed := node.(type) {
	case map[string]any:
		if len(typed) == 0 {
			return nil, nil
		}
		return []map[string]any{typed}, nil
	case []any:
		items := make([]map[string]any, 0, len(typed))
		for i, elem := range typed {
			if isFalsy(elem) {
				m.logger.Warn().
					Str("operation", operation).
					Str("key", key).
					Int("index", i).
					Str("value", describe(elem)).
					Msg("Dropping empty element from result sequence")
				continue
			}
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, &DecodeError{
					Operation: operation,
					Key:       fmt.Sprintf("%s[%d]", key, i),
					Reason:    fmt.Sprintf("expected object, got %s", describe(elem)),
				}
			}
			items = append(items, obj)
		}
		return items, nil
	default:
		if isFalsy(node) {
			return nil, nil
		}
		return nil, &DecodeError{
			Operation: operation,
			Key:       key,
			Reason:    fmt.Sprintf("expected object or list, got %s", describe(node)),
		}
	}
}

// buildRecord constructs a record of the given kind from a payload object
func (m *mapper) buildRecord(operation string, kind Kind, payload map[string]any) (Record, error) {
	switch kind {
	case KindAddress:
		return m.buildAddress(operation, payload)
	case KindElection:
		return m.buildElection(operation, payload)
	case KindBillDetail:
		return m.buildBillDetail(operation, payload)
	}

	rec := newRecord(kind)
	for k, v := range payload {
		rec.Fields[k] = v
	}
	return rec, nil
}

// buildAddress merges the address, phone and notes sub-objects into one
// flat record. Only address is mandatory.
func (m *mapper) buildAddress(operation string, payload map[string]any) (Record, error) {
	rec := newRecord(KindAddress)

	for _, key := range []string{"address", "phone", "notes"} {
		sub, ok := payload[key]
		if !ok || isFalsy(sub) {
			if key == "address" {
				return Record{}, &DecodeError{Operation: operation, Key: key, Reason: "key not found"}
			}
			continue
		}
		obj, ok := sub.(map[string]any)
		if !ok {
			return Record{}, &DecodeError{
				Operation: operation,
				Key:       key,
				Reason:    fmt.Sprintf("expected object, got %s", describe(sub)),
			}
		}
		for k, v := range obj {
			rec.Fields[k] = v
		}
	}

	return rec, nil
}

// buildElection flattens an election and attaches its stages
func (m *mapper) buildElection(operation string, payload map[string]any) (Record, error) {
	rec := newRecord(KindElection)
	for k, v := range payload {
		if k == "stage" {
			continue
		}
		rec.Fields[k] = v
	}

	stage, ok := payload["stage"]
	if !ok || isFalsy(stage) {
		return rec, nil
	}

	stages, err := m.nestedRecords(operation, "stage", stage, KindStage)
	if err != nil {
		return Record{}, err
	}
	rec.Nested = map[string][]Record{"stages": stages}
	return rec, nil
}

// buildBillDetail flattens a bill and attaches sponsors, actions and
// amendments. Sponsors and actions must be present; amendments may be
// absent or empty, in which case no amendments sequence is attached.
func (m *mapper) buildBillDetail(operation string, payload map[string]any) (Record, error) {
	rec := newRecord(KindBillDetail)
	for k, v := range payload {
		switch k {
		case "sponsors", "actions", "amendments":
			continue
		}
		rec.Fields[k] = v
	}
	rec.Nested = make(map[string][]Record)

	parts := []struct {
		key, item string
		kind      Kind
		required  bool
	}{
		{"sponsors", "sponsor", KindBillSponsor, true},
		{"actions", "action", KindBillAction, true},
		{"amendments", "amendment", KindBillAmendment, false},
	}

	for _, part := range parts {
		node, ok := payload[part.key]
		if !ok && part.required {
			return Record{}, &DecodeError{Operation: operation, Key: part.key, Reason: "key not found"}
		}
		if !ok || isFalsy(node) {
			if part.required {
				rec.Nested[part.key] = []Record{}
			}
			continue
		}

		wrapper, ok := node.(map[string]any)
		if !ok {
			return Record{}, &DecodeError{
				Operation: operation,
				Key:       part.key,
				Reason:    fmt.Sprintf("expected object, got %s", describe(node)),
			}
		}
		inner, ok := wrapper[part.item]
		if !ok {
			return Record{}, &DecodeError{
				Operation: operation,
				Key:       part.key + "." + part.item,
				Reason:    "key not found",
			}
		}

		children, err := m.nestedRecords(operation, part.key+"."+part.item, inner, part.kind)
		if err != nil {
			return Record{}, err
		}
		if len(children) == 0 && !part.required {
			continue
		}
		rec.Nested[part.key] = children
	}

	return rec, nil
}

// nestedRecords maps a sub-node with the same singleton normalization used
// for top-level lists.
func (m *mapper) nestedRecords(operation, key string, node any, kind Kind) ([]Record, error) {
	items, err := m.normalizeList(operation, key, node)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := m.buildRecord(operation, kind, item)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// isFalsy reports whether v is an empty placeholder value
func isFalsy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case float64:
		return typed == 0
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
