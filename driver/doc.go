// Package driver runs an Attack over an AttackProfile: a sweep of targets
// against r independently-constructed graphs, averaging per-target results
// into (mean depth, mean size, mean DER).
package driver
