// SPDX-License-Identifier: MIT

package dm

import (
	"strings"

	"github.com/katalvlaran/lvdm/distance"
)

// DefaultDelimiter separates tokens in both header and data rows.
const DefaultDelimiter = "\t"

const panicDelimiterInvalid = "dm: WithDelimiter: delimiter must be non-empty and contain no line breaks"

// Option configures Parse, Write and the Read helpers.
type Option func(*options)

type options struct {
	delim      string
	matrixOpts []distance.Option
}

// WithDelimiter replaces the tab delimiter. Panics on an empty delimiter or
// one containing '\n' or '\r' (programmer error).
func WithDelimiter(delim string) Option {
	if delim == "" || strings.ContainsAny(delim, "\r\n") {
		panic(panicDelimiterInvalid)
	}

	return func(o *options) { o.delim = delim }
}

// WithMatrixOptions forwards construction options (e.g. distance.WithEpsilon)
// to ReadDissimilarity and ReadDistance.
func WithMatrixOptions(opts ...distance.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{delim: DefaultDelimiter}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
