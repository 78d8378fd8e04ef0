package domain

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
)

// TrialPlan is the fixed, pre-randomized sequence of catalog indices a
// participant will see. Never mutated after creation.
type TrialPlan []int

// OrderingPolicy selects how the trial sequencer is seeded
type OrderingPolicy string

const (
	// OrderingIndependent draws a fresh random order for every plan
	OrderingIndependent OrderingPolicy = "independent"
	// OrderingParticipant seeds the order from the participant id, making
	// the presentation order reproducible per participant
	OrderingParticipant OrderingPolicy = "participant"
)

// ParseOrderingPolicy validates a raw policy string
func ParseOrderingPolicy(raw string) (OrderingPolicy, error) {
	switch OrderingPolicy(raw) {
	case OrderingIndependent, OrderingParticipant:
		return OrderingPolicy(raw), nil
	}
	return "", fmt.Errorf("unknown ordering policy %q (valid: independent, participant)", raw)
}

// NewOrderSource returns the random source for a plan under the given policy.
// The participant id only matters for OrderingParticipant.
func NewOrderSource(policy OrderingPolicy, participantID string) *rand.Rand {
	if policy == OrderingParticipant {
		h := fnv.New64a()
		h.Write([]byte(participantID))
		return rand.New(rand.NewSource(int64(h.Sum64())))
	}

	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Entropy failure is not worth aborting a session over; fall back
		// to the global source's behavior with an arbitrary seed
		return rand.New(rand.NewSource(int64(fnv64(participantID))))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

func fnv64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// NewPlan shuffles the identity permutation [0, catalogSize) and truncates it
// to min(catalogSize, cap). Every index is unique; no replacement across
// trials.
func NewPlan(catalogSize, maxTrials int, rng *rand.Rand) (TrialPlan, error) {
	if catalogSize <= 0 {
		return nil, ErrEmptyCatalog
	}

	order := make([]int, catalogSize)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	n := catalogSize
	if maxTrials > 0 && maxTrials < n {
		n = maxTrials
	}
	return TrialPlan(order[:n]), nil
}

// Encode renders the plan as a comma-separated index list, the form stored
// in progress rows
func (p TrialPlan) Encode() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// DecodePlan parses a comma-separated index list back into a TrialPlan
func DecodePlan(encoded string) (TrialPlan, error) {
	if encoded == "" {
		return TrialPlan{}, nil
	}

	parts := strings.Split(encoded, ",")
	plan := make(TrialPlan, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid order sequence %q: %w", encoded, err)
		}
		plan[i] = idx
	}
	return plan, nil
}
