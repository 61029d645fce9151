// Package exchange implements the sliding-window Exchange-Nodes attack:
// a left cursor scans the node-id axis, and at each
// position grows a span looking for a "crossing" edge — one jumping from
// the span's left half into its right half — whose removal yields a good
// node-exclusion ratio (NER). This attack is experimental: it does not
// enforce a size cap and its results are approximate.
package exchange
