// Package sorter builds the entry comparator from the configured sort keys,
// tie-break chain, and pinned-first entry types, and tracks duplicate
// entries discovered while sorting.
//
// The comparator is total and deterministic: every comparison path degrades
// missing data (absent fields, absent citation keys, definition entries) to
// the empty string rather than failing, so arbitrary user-supplied key
// chains can never abort a sort.
//
// A Sorter is single-use per sort pass and NOT safe for concurrent use: the
// underlying collator buffers state, and duplicate tracking accumulates
// across comparisons.
package sorter
