package votesmart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationTable(t *testing.T) {
	seen := make(map[string]bool)

	for _, o := range operationTable {
		t.Run(o.Name, func(t *testing.T) {
			assert.False(t, seen[o.Name], "duplicate operation")
			seen[o.Name] = true

			assert.NotEmpty(t, o.Namespace())
			assert.NotEmpty(t, o.Method())
			assert.Equal(t, o.Namespace()+"."+o.Method(), o.Name)
			assert.NotEmpty(t, o.Kind)

			require.NotEmpty(t, o.Path)
			for _, key := range o.Path {
				assert.NotEmpty(t, key)
			}

			for _, p := range o.Required {
				assert.NotContains(t, o.Optional, p, "parameter both required and optional")
				assert.True(t, o.accepts(p))
			}
			for _, p := range o.Optional {
				assert.True(t, o.accepts(p))
			}
			assert.False(t, o.accepts("key"))
		})
	}

	assert.Len(t, seen, len(operationsByName))
}

func TestLookupOperation(t *testing.T) {
	o, ok := LookupOperation("Votes.getBill")
	require.True(t, ok)
	assert.Equal(t, ShapeSingle, o.Shape)
	assert.Equal(t, KindBillDetail, o.Kind)
	assert.Equal(t, []string{"bill"}, o.Path)
	assert.Equal(t, []string{"billId"}, o.Required)

	o, ok = LookupOperation("State.getStateIDs")
	require.True(t, ok)
	assert.Equal(t, []string{"stateList", "list", "state"}, o.Path)
	assert.Equal(t, ShapeList, o.Shape)

	_, ok = LookupOperation("votes.getBill")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = LookupOperation("getBill")
	assert.False(t, ok, "unqualified names are ambiguous and not accepted")
}

func TestStageCandidatesUsesOwnMethod(t *testing.T) {
	o, ok := LookupOperation("Election.getStageCandidates")
	require.True(t, ok)
	assert.Equal(t, "getStageCandidates", o.Method())
	assert.Equal(t, []string{"electionId", "stageId"}, o.Required)
	assert.Equal(t, []string{"party", "districtId", "stateId"}, o.Optional)
}

func TestSingleShapedOperations(t *testing.T) {
	var single []string
	for _, o := range Operations() {
		if o.Shape == ShapeSingle {
			single = append(single, o.Name)
		}
	}

	assert.ElementsMatch(t, []string{
		"CandidateBio.getBio",
		"Committee.getCommittee",
		"Election.getElection",
		"Measure.getMeasure",
		"Npat.getNpat",
		"Rating.getSig",
		"State.getState",
		"Votes.getBill",
		"Votes.getBillAction",
	}, single)
}

func TestOperationsSorted(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, len(operationTable))
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1].Name, ops[i].Name)
	}

	ops[0].Name = "mutated"
	_, ok := LookupOperation("mutated")
	assert.False(t, ok)
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, []string{
		"Address", "CandidateBio", "Candidates", "Committee", "District",
		"Election", "Leadership", "Local", "Measure", "Npat",
		"Office", "Officials", "Rating", "State", "Votes",
	}, Namespaces())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "Single", ShapeSingle.String())
	assert.Equal(t, "List", ShapeList.String())
	assert.True(t, strings.HasPrefix(ShapeList.String(), "L"))
}
