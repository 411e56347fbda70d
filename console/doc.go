/*
Package console renders red-black trees for display on a terminal.

Trees are printed sideways: the root is placed at the left margin, right
subtrees above and left subtrees below their parent, each level indented
further to the right. Reading the output from bottom to top yields the keys in
ascending order.

Red nodes are printed in red, black nodes in bold, if the output device
supports colors.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
