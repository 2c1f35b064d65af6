package agglo

// autoCachedThreshold is the input size above which AlgorithmAuto switches
// from the plain rescan to the cached distance matrix.
const autoCachedThreshold = 64

// selectAlgorithm resolves AlgorithmAuto into a concrete algorithm for n
// input points. Both concrete algorithms produce bit-identical results, so
// the choice only affects speed and memory.
func selectAlgorithm(cfg Config, n int) Algorithm {
	if cfg.Algorithm != AlgorithmAuto {
		return cfg.Algorithm
	}
	if n <= autoCachedThreshold {
		return AlgorithmNaive
	}
	return AlgorithmCached
}
