// Package parseval scores predicted parse trees against reference trees by
// comparing labeled constituent spans, the PARSEVAL family of metrics.
//
// Each tree is reduced to the set of (start, end, label) triples of its
// constituents; precision, recall, and F1 fall out of the intersection of
// the two sets. The convention for which constituents count is explicit
// configuration: the default scores phrase spans only, excluding
// part-of-speech spans and including the whole-sentence span, and
// WithPreterminals / WithoutRoot flip those choices.
//
// Undefined ratios stay honest: precision of an unparsed or span-less
// prediction is NaN (callers print it as not-applicable), while F1
// degrades to zero so corpus means remain well defined. Aggregate collects
// per-sentence results into coverage and two mean-F readings: over parsed
// sentences only, and over all sentences with unparsed ones counting zero.
package parseval
