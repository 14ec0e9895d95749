package generate

import (
	"math"
	"math/rand"
	"sort"
)

// DifficultyWeights returns the relative spawn weight of each of n templates
// ordered weakest to strongest. Templates below difficulty weigh 1; each
// step above it halves the weight.
func DifficultyWeights(n, difficulty int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		if i < difficulty {
			weights[i] = 1
		} else {
			weights[i] = math.Pow(0.5, float64(i-difficulty+1))
		}
	}
	return weights
}

// WeightTable is a cumulative weight table sampled with a single draw.
type WeightTable struct {
	cum []float64
}

// NewWeightTable builds the cumulative table for weights. Negative weights
// count as zero.
func NewWeightTable(weights []float64) WeightTable {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cum[i] = total
	}
	return WeightTable{cum: cum}
}

// Total returns the sum of all weights.
func (t WeightTable) Total() float64 {
	if len(t.cum) == 0 {
		return 0
	}
	return t.cum[len(t.cum)-1]
}

// Pick draws one index with probability proportional to its weight.
// It returns -1 when the table has no positive weight.
func (t WeightTable) Pick(rng *rand.Rand) int {
	total := t.Total()
	if total <= 0 {
		return -1
	}
	r := rng.Float64() * total
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > r })
	if i >= len(t.cum) {
		i = len(t.cum) - 1
	}
	return i
}
