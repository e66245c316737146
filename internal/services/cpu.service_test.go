package services

import (
	"errors"
	"testing"
)

func TestCollectPerCoreFirstTierWins(t *testing.T) {
	t.Parallel()

	secondCalled := false
	samplers := []cpuSampler{
		{name: "first", sample: func() ([]float64, error) { return []float64{10, 20}, nil }},
		{name: "second", sample: func() ([]float64, error) {
			secondCalled = true
			return []float64{99}, nil
		}},
	}

	got := collectPerCore(samplers)
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Fatalf("unexpected per-core values: %v", got)
	}
	if secondCalled {
		t.Fatal("second sampler invoked although first tier succeeded")
	}
}

func TestCollectPerCoreFallsThroughOnErrorAndEmpty(t *testing.T) {
	t.Parallel()

	samplers := []cpuSampler{
		{name: "failing", sample: func() ([]float64, error) { return nil, errors.New("counters gone") }},
		{name: "empty", sample: func() ([]float64, error) { return []float64{}, nil }},
		{name: "working", sample: func() ([]float64, error) { return []float64{50, 70}, nil }},
	}

	got := collectPerCore(samplers)
	if len(got) != 2 || got[0] != 50 {
		t.Fatalf("expected third tier values, got %v", got)
	}
}

func TestCollectLoadMeanOfPerCore(t *testing.T) {
	t.Parallel()

	legacyCalled := false
	samplers := []cpuSampler{
		{name: "empty", sample: func() ([]float64, error) { return nil, nil }},
		{name: "sampled", sample: func() ([]float64, error) { return []float64{25, 75, 50, 50}, nil }},
	}
	legacy := func() ([]float64, error) {
		legacyCalled = true
		return []float64{12}, nil
	}

	load, perCore := collectLoad(samplers, legacy)
	if load == nil || *load != 50 {
		t.Fatalf("load = %v, want 50", load)
	}
	if len(perCore) != 4 {
		t.Fatalf("per-core length = %d", len(perCore))
	}
	if legacyCalled {
		t.Fatal("legacy tier invoked although a sampler produced data")
	}
}

func TestCollectLoadLegacyValueUsedDirectly(t *testing.T) {
	t.Parallel()

	samplers := []cpuSampler{
		{name: "broken", sample: func() ([]float64, error) { return nil, errors.New("no counters") }},
	}
	legacy := func() ([]float64, error) { return []float64{37.5}, nil }

	load, perCore := collectLoad(samplers, legacy)
	if load == nil || *load != 37.5 {
		t.Fatalf("load = %v, want 37.5", load)
	}
	if len(perCore) != 0 {
		t.Fatalf("legacy tier must not produce per-core detail, got %v", perCore)
	}
}

func TestCollectLoadTotalFailure(t *testing.T) {
	t.Parallel()

	samplers := []cpuSampler{
		{name: "broken", sample: func() ([]float64, error) { return nil, errors.New("down") }},
	}
	legacy := func() ([]float64, error) { return nil, errors.New("also down") }

	load, perCore := collectLoad(samplers, legacy)
	if load != nil {
		t.Fatalf("load = %v, want nil", *load)
	}
	if perCore == nil || len(perCore) != 0 {
		t.Fatalf("per-core should be an empty array, got %v", perCore)
	}
}

func TestMeanOf(t *testing.T) {
	t.Parallel()

	if got := meanOf([]float64{10, 20, 30}); got != 20 {
		t.Fatalf("meanOf = %v", got)
	}
}
