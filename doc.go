/*
Package reelshape prepares Arabic text for being painted into video frames.

Description

Text which is rendered onto a canvas frame by frame has to arrive in
visual order: letters of a cursive script take one of four visual forms
depending on their neighbours, and a right-to-left string has to be
turned around before a left-to-right drawing surface paints it.

This module does exactly that, and not more. It is not a conformant
implementation of either the Unicode Bidirectional Algorithm (UAX#9) or
of Arabic joining as defined in ArabicShaping.txt. Instead it implements
a small and predictable contract:

▪︎ Package script classifies single code-points: membership in the Arabic
block, connecting behaviour, and membership in one of the right-to-left
ranges.

▪︎ Package shaping walks a string with a one-rune window to either side,
resolves the visual form of every Arabic letter and maps it through a
form table. The default form table is the identity.

▪︎ Package bidi decides the direction of a shaped string, and reverses
it as a whole if it contains any right-to-left character.

▪︎ Package video holds the bookkeeping around rendering: resolutions,
frame configuration and a sink for captured frames.

A command line front end lives in cmd/reshape.

Tracing

All packages trace to the schuko core tracer (gtrace.CoreTracer). Clients
may replace it with an adapter of their choice before calling into this
module.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package reelshape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Version is the version of this module.
const Version = "1.0.0"
