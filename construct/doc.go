// Package construct builds the synthetic, n-node depth-robust-candidate
// graph constructors: MetaBucket, KConnector and UniformGraph. It
// mirrors lvlath/builder's functional-options orchestration (a private
// config mutated by public Option values, a seeded
// *rand.Rand for reproducibility, sentinel validation errors) generalized
// from vertex-ID/weight construction to DAG parent-list construction.
package construct
