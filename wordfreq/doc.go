/*
Package wordfreq builds word-frequency tables as weighted sets.

Every distinct word of a text becomes a key of an indexed.WeightedSet, with
the number of its occurrences as weight. Texts may be given as plain text,
as HTML fragments, or as files which are loaded asynchronously.

Words are found with the UAX#14 line-breaking algorithm, which splits a text
into the fragments between break opportunities. Punctuation is trimmed from
the fragments, and, depending on the options, case is folded and short words
are dropped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordfreq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'indexed'
func tracer() tracing.Trace {
	return tracing.Select("indexed")
}
