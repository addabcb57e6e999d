package domain

// SampledArm holds the accumulated observations for one arm. Total counts
// trials and is not required to equal Win+Loss, so outcomes such as draws
// are tolerated; the payoff formula only reads Win, Loss and Total.
type SampledArm struct {
	Win   float64 `json:"win"`
	Loss  float64 `json:"loss"`
	Total float64 `json:"total"`
}

// HistoricalInfo aggregates the sampled arms for one allocation request.
// It is owned by the caller and read-only to the bandit engine.
type HistoricalInfo struct {
	ArmsSampled map[string]SampledArm `json:"arms_sampled"`
}

// NumArms returns the number of distinct arm identifiers.
func (h HistoricalInfo) NumArms() int {
	return len(h.ArmsSampled)
}

// Allocation maps every sampled arm to a probability in [0, 1]. Values sum
// to 1 whenever the historical info is non-empty.
type Allocation map[string]float64

// BanditDefaults are the runtime-tunable fallback hyperparameters applied
// when a request omits hyperparameter_info fields for a subtype.
type BanditDefaults struct {
	Subtype      string  `json:"subtype"`
	Epsilon      float64 `json:"epsilon"`
	TotalSamples float64 `json:"total_samples"`
}
