package votesmart

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body string) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func mapBody(t *testing.T, name, body string) ([]Record, error) {
	t.Helper()
	op, ok := LookupOperation(name)
	require.True(t, ok, "operation %s", name)
	m := &mapper{logger: zerolog.Nop()}
	return m.mapEnvelope(op, decodeEnvelope(t, body))
}

func TestSingletonCollapse(t *testing.T) {
	bare, err := mapBody(t, "Candidates.getByOfficeState",
		`{"candidateList":{"candidate":{"candidateId":"1","lastName":"Smith"}}}`)
	require.NoError(t, err)

	wrapped, err := mapBody(t, "Candidates.getByOfficeState",
		`{"candidateList":{"candidate":[{"candidateId":"1","lastName":"Smith"}]}}`)
	require.NoError(t, err)

	require.Len(t, bare, 1)
	assert.Equal(t, wrapped, bare)
	assert.Equal(t, KindCandidate, bare[0].Kind)
}

func TestFalsyElementsDropped(t *testing.T) {
	var buf bytes.Buffer
	op, _ := LookupOperation("Candidates.getByOfficeState")
	m := &mapper{logger: zerolog.New(&buf)}

	records, err := m.mapEnvelope(op, decodeEnvelope(t,
		`{"candidateList":{"candidate":[{"candidateId":"1"},"",{"candidateId":"2"},null]}}`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Text("candidateId"))
	assert.Equal(t, "2", records[1].Text("candidateId"))

	assert.Contains(t, buf.String(), "Dropping empty element from result sequence")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestEmptyPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty list", `{"candidateList":{"candidate":[]}}`},
		{"empty string", `{"candidateList":{"candidate":""}}`},
		{"null", `{"candidateList":{"candidate":null}}`},
		{"empty object", `{"candidateList":{"candidate":{}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := mapBody(t, "Candidates.getByOfficeState", tt.body)
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestListOrderPreserved(t *testing.T) {
	records, err := mapBody(t, "Office.getLevels",
		`{"levels":{"level":[{"officeLevelId":"F","name":"Federal"},{"officeLevelId":"S","name":"State"},{"officeLevelId":"L","name":"Local"}]}}`)
	require.NoError(t, err)
	require.Len(t, records, 3)

	var names []string
	for _, r := range records {
		names = append(names, r.Display())
	}
	assert.Equal(t, []string{"Federal", "State", "Local"}, names)
}

func TestMissingKeyIsDecodeError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantKey string
	}{
		{"missing outer", `{"somethingElse":{}}`, "candidateList"},
		{"missing inner", `{"candidateList":{"generalInfo":{}}}`, "candidateList.candidate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapBody(t, "Candidates.getByOfficeState", tt.body)
			require.Error(t, err)
			assert.Equal(t, KindDecodeFailure, KindOf(err))

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, tt.wantKey, decErr.Key)
			assert.Equal(t, "Candidates.getByOfficeState", decErr.Operation)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestIntermediateNotObject(t *testing.T) {
	_, err := mapBody(t, "State.getStateIDs", `{"stateList":{"list":"nope"}}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSingleShapeRequiresObject(t *testing.T) {
	_, err := mapBody(t, "CandidateBio.getBio", `{"bio":{"candidate":[{"candidateId":"1"}]}}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	records, err := mapBody(t, "CandidateBio.getBio", `{"bio":{"candidate":{"candidateId":"1","firstName":"Ada","lastName":"Lovelace"}}}`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ada Lovelace", records[0].Display())
}

func TestNonObjectListElement(t *testing.T) {
	_, err := mapBody(t, "Candidates.getByOfficeState", `{"candidateList":{"candidate":[{"candidateId":"1"},"junk"]}}`)
	require.Error(t, err)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "candidateList.candidate[1]", decErr.Key)
}

func TestAddressMerge(t *testing.T) {
	t.Run("all parts", func(t *testing.T) {
		records, err := mapBody(t, "Address.getOffice", `{"address":{"office":{
			"address":{"street":"1 Main St","city":"Albany"},
			"phone":{"phone1":"555-0100"},
			"notes":{"note":"Mornings only"}
		}}}`)
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, KindAddress, rec.Kind)
		assert.Equal(t, "1 Main St", rec.Text("street"))
		assert.Equal(t, "555-0100", rec.Text("phone1"))
		assert.Equal(t, "Mornings only", rec.Text("note"))
		assert.Equal(t, []string{"city", "note", "phone1", "street"}, rec.Keys())
	})

	t.Run("phone and notes optional", func(t *testing.T) {
		records, err := mapBody(t, "Address.getOffice",
			`{"address":{"office":[{"address":{"street":"1 Main St"},"notes":""},{"address":{"street":"2 Elm St"}}]}}`)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "2 Elm St", records[1].Text("street"))
	})

	t.Run("address required", func(t *testing.T) {
		_, err := mapBody(t, "Address.getOffice", `{"address":{"office":{"phone":{"phone1":"555"}}}}`)
		require.Error(t, err)

		var decErr *DecodeError
		require.True(t, errors.As(err, &decErr))
		assert.Equal(t, "address", decErr.Key)
	})
}

func TestElectionStages(t *testing.T) {
	records, err := mapBody(t, "Election.getElection", `{"elections":{"election":{
		"electionId":"1","name":"Presidential",
		"stage":{"stageId":"P","name":"Primary","electionDate":"2020-03-01"}
	}}}`)
	require.NoError(t, err)
	require.Len(t, records, 1)

	election := records[0]
	_, hasStage := election.Get("stage")
	assert.False(t, hasStage)
	require.Len(t, election.Nested["stages"], 1)

	stage := election.Nested["stages"][0]
	assert.Equal(t, KindStage, stage.Kind)
	assert.Equal(t, "Primary (2020-03-01)", stage.Display())

	stages, ok := election.AsMap()["stages"].([]map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Primary", stages[0]["name"])
}

func TestElectionWithoutStages(t *testing.T) {
	records, err := mapBody(t, "Election.getElectionByYearState",
		`{"elections":{"election":[{"electionId":"1","name":"A"},{"electionId":"2","name":"B","stage":""}]}}`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Nested)
	assert.Empty(t, records[1].Nested)
}

func TestBillDetail(t *testing.T) {
	t.Run("without amendments", func(t *testing.T) {
		records, err := mapBody(t, "Votes.getBill", `{"bill":{
			"billNumber":"HR 1","title":"Stimulus",
			"sponsors":{"sponsor":[{"name":"A"},{"name":"B"}]},
			"actions":{"action":{"actionId":"1"}}
		}}`)
		require.NoError(t, err)
		require.Len(t, records, 1)

		bill := records[0]
		assert.Len(t, bill.Nested["sponsors"], 2)
		assert.Len(t, bill.Nested["actions"], 1)
		_, hasAmendments := bill.Nested["amendments"]
		assert.False(t, hasAmendments)
		assert.Equal(t, "HR 1 Stimulus", bill.Display())
	})

	t.Run("with amendments", func(t *testing.T) {
		records, err := mapBody(t, "Votes.getBill", `{"bill":{
			"sponsors":{"sponsor":{"name":"A"}},
			"actions":{"action":{"actionId":"1"}},
			"amendments":{"amendment":[{"amendmentId":"9","title":"Fix"}]}
		}}`)
		require.NoError(t, err)
		require.Len(t, records[0].Nested["amendments"], 1)
		assert.Equal(t, KindBillAmendment, records[0].Nested["amendments"][0].Kind)
	})

	t.Run("empty sponsors become empty list", func(t *testing.T) {
		records, err := mapBody(t, "Votes.getBill", `{"bill":{"sponsors":"","actions":{"action":{"actionId":"1"}}}}`)
		require.NoError(t, err)
		sponsors, ok := records[0].Nested["sponsors"]
		assert.True(t, ok)
		assert.Empty(t, sponsors)
	})

	t.Run("missing actions", func(t *testing.T) {
		_, err := mapBody(t, "Votes.getBill", `{"bill":{"sponsors":{"sponsor":{"name":"A"}}}}`)
		require.Error(t, err)

		var decErr *DecodeError
		require.True(t, errors.As(err, &decErr))
		assert.Equal(t, "actions", decErr.Key)
	})

	t.Run("wrapper without sub-key", func(t *testing.T) {
		_, err := mapBody(t, "Votes.getBill", `{"bill":{"sponsors":{"other":{}},"actions":{"action":{}}}}`)
		require.Error(t, err)

		var decErr *DecodeError
		require.True(t, errors.As(err, &decErr))
		assert.Equal(t, "sponsors.sponsor", decErr.Key)
	})
}

func TestIsFalsy(t *testing.T) {
	for _, v := range []any{nil, "", false, float64(0), map[string]any{}, []any{}} {
		assert.True(t, isFalsy(v), "%#v", v)
	}
	for _, v := range []any{"x", true, float64(1), map[string]any{"a": 1}, []any{1}} {
		assert.False(t, isFalsy(v), "%#v", v)
	}
}

// envelopeAt wraps payload in objects keyed by path, outermost first
func envelopeAt(path []string, payload any) map[string]any {
	node := payload
	for i := len(path) - 1; i >= 0; i-- {
		node = map[string]any{path[i]: node}
	}
	return node.(map[string]any)
}

// listItem builds a minimal payload element for kind. Address elements must
// carry the address sub-object.
func listItem(kind Kind, id string) map[string]any {
	if kind == KindAddress {
		return map[string]any{"address": map[string]any{"id": id}}
	}
	return map[string]any{"id": id}
}

func TestListOperationsNormalizeEveryPayload(t *testing.T) {
	m := &mapper{logger: zerolog.Nop()}

	for _, o := range operationTable {
		if o.Shape != ShapeList {
			continue
		}
		t.Run(o.Name, func(t *testing.T) {
			bare, err := m.mapEnvelope(o, envelopeAt(o.Path, listItem(o.Kind, "1")))
			require.NoError(t, err)
			require.Len(t, bare, 1)
			assert.Equal(t, o.Kind, bare[0].Kind)
			assert.Equal(t, "1", bare[0].Text("id"))

			seq := []any{listItem(o.Kind, "1"), "", listItem(o.Kind, "2")}
			records, err := m.mapEnvelope(o, envelopeAt(o.Path, seq))
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "1", records[0].Text("id"))
			assert.Equal(t, "2", records[1].Text("id"))
		})
	}
}

func TestAddressOperationsRequireAddressObject(t *testing.T) {
	m := &mapper{logger: zerolog.Nop()}

	var checked int
	for _, o := range operationTable {
		if o.Kind != KindAddress {
			continue
		}
		checked++
		t.Run(o.Name, func(t *testing.T) {
			_, err := m.mapEnvelope(o, envelopeAt(o.Path, []any{map[string]any{"id": "1"}}))
			require.Error(t, err)
			assert.Equal(t, KindDecodeFailure, KindOf(err))

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, "address", decErr.Key)
		})
	}
	assert.Equal(t, 4, checked)
}
