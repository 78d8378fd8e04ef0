package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan_Length(t *testing.T) {
	tests := []struct {
		name        string
		catalogSize int
		maxTrials   int
		expected    int
	}{
		{"catalog smaller than cap", 3, 30, 3},
		{"catalog equal to cap", 30, 30, 30},
		{"catalog larger than cap", 50, 30, 30},
		{"cap of one", 10, 1, 1},
		{"zero cap means no cap", 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			plan, err := NewPlan(tt.catalogSize, tt.maxTrials, rng)
			require.NoError(t, err)
			assert.Len(t, plan, tt.expected)
		})
	}
}

func TestNewPlan_EmptyCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewPlan(0, 30, rng)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewPlan(-1, 30, rng)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewPlan_IndicesDistinctAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	plan, err := NewPlan(20, 10, rng)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, idx := range plan {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 20)
		assert.False(t, seen[idx], "index %d repeated", idx)
		seen[idx] = true
	}
}

func TestNewOrderSource_ParticipantPolicyIsReproducible(t *testing.T) {
	planFor := func(participantID string) TrialPlan {
		rng := NewOrderSource(OrderingParticipant, participantID)
		plan, err := NewPlan(25, 25, rng)
		require.NoError(t, err)
		return plan
	}

	assert.Equal(t, planFor("ABCD1234"), planFor("ABCD1234"))
	assert.NotEqual(t, planFor("ABCD1234"), planFor("ZZZZ9999"))
}

func TestParseOrderingPolicy(t *testing.T) {
	policy, err := ParseOrderingPolicy("independent")
	require.NoError(t, err)
	assert.Equal(t, OrderingIndependent, policy)

	policy, err = ParseOrderingPolicy("participant")
	require.NoError(t, err)
	assert.Equal(t, OrderingParticipant, policy)

	_, err = ParseOrderingPolicy("alphabetical")
	assert.Error(t, err)
}

func TestTrialPlan_EncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		plan    TrialPlan
		encoded string
	}{
		{"empty", TrialPlan{}, ""},
		{"single", TrialPlan{4}, "4"},
		{"several", TrialPlan{2, 0, 1}, "2,0,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, tt.plan.Encode())

			decoded, err := DecodePlan(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.plan, decoded)
		})
	}
}

func TestDecodePlan_Invalid(t *testing.T) {
	_, err := DecodePlan("1,two,3")
	assert.Error(t, err)
}
