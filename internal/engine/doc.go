// Package engine computes the velocity change of a multi-stage rocket.
//
// It is the core of deltav, responsible for:
//   - Parsing and validating raw stage fields into Stage values
//   - Applying the Tsiolkovsky rocket equation to each stage in burn order
//   - Summing the per-stage results into a total
//
// The engine is pure: it holds no state and never mutates its input, so
// Calculate can be called as often as the user asks for a result.
package engine
