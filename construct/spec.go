package construct

// GraphSpec is the immutable (size, seed, algorithm-tag) triple naming
// everything needed to deterministically reconstruct a Graph from a
// seeded PRNG.
type GraphSpec struct {
	// Size is n, the number of nodes.
	Size int
	// Seed seeds the deterministic PRNG used by stochastic constructors.
	// Non-stochastic constructors (KConnector) ignore it.
	Seed [32]byte
	// Algorithm names the constructor tag: "meta-bucket", "k-connector" or
	// "uniform-graph".
	Algorithm string
}

// Seed64 folds the 32-byte seed into a single int64 suitable for
// math/rand.NewSource, by XOR-folding it 8 bytes at a time. Exported so
// callers (e.g. the driver) that need one PRNG to persist across several
// Build calls can seed it themselves instead of via WithSpec, which
// derives a fresh PRNG from the same seed on every call.
func (s GraphSpec) Seed64() int64 {
	return s.seedInt64()
}

// seedInt64 folds the 32-byte seed into a single int64 suitable for
// math/rand.NewSource, by XOR-folding it 8 bytes at a time.
func (s GraphSpec) seedInt64() int64 {
	var folded uint64
	for i := 0; i < len(s.Seed); i += 8 {
		var chunk uint64
		for j := 0; j < 8; j++ {
			chunk = chunk<<8 | uint64(s.Seed[i+j])
		}
		folded ^= chunk
	}
	return int64(folded)
}
