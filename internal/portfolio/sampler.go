package portfolio

import "math/rand"

// Sampler generates random portfolio weight vectors from an explicitly seeded
// random source. The same seed always yields the same sequence of weight
// vectors for a given asset count, which keeps reports reproducible.
//
// Weights are drawn as independent uniform(0,1) values normalized by their
// sum. This is not a uniform distribution over the simplex (it concentrates
// mass toward the center relative to a Dirichlet(1,...,1) draw); swapping in
// a Dirichlet sampler would change every seeded fixture downstream, so the
// normalized-uniform draw is kept. Outputs are guaranteed non-negative and
// sum to one within floating-point tolerance.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Weights draws one random weight vector of length n.
func (s *Sampler) Weights(n int) []float64 {
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		w[i] = s.rng.Float64()
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// WeightVectors draws m weight vectors of length n in a fixed order. The
// single underlying random stream is consumed sequentially, so the result is
// fully determined by the seed, n, and m.
func (s *Sampler) WeightVectors(n, m int) [][]float64 {
	vectors := make([][]float64, m)
	for i := range vectors {
		vectors[i] = s.Weights(n)
	}
	return vectors
}
