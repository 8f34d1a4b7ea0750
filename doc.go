/*
Package indexed offers in-memory collection types which, besides membership,
know the position of every element.

# Indexed Collections

A TreeSet is an ordered set which answers “how many elements precede this
one” and “which element sits at position k” in logarithmic time, in addition
to the usual set operations. A WeightedSet attaches a positive integer weight
to every element and additionally answers prefix weight sums and weighted
cumulative searches, e.g., for picking elements with a probability
proportional to their weight or for word-frequency tables. A TreeHashSet
holds comparable values without a natural order, ordering them by hash.

All collection types are backed by package ostree, an AVL tree augmented
with subtree sizes and subtree weight sums.

	s := indexed.NewOrderedSet[string]()
	s.Add("b")
	s.Add("a")
	s.IndexOf("b")   // 1
	s.ElementAt(0)   // "a"

Collections are not safe for concurrent mutation. Clients have to
synchronize access if a collection is shared between goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package indexed

import (
	"github.com/npillmayer/indexed/ostree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors reported by the collection types. They are the errors of package
// ostree, re-exported for convenience; test for them with errors.Is.
var (
	ErrDuplicateKey    = ostree.ErrDuplicateKey
	ErrIndexOutOfRange = ostree.ErrIndexOutOfRange
	ErrInvalidWeight   = ostree.ErrInvalidWeight
	ErrInvalidConfig   = ostree.ErrInvalidConfig
)
