/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

import "strings"

// Transform rewrites one message of a printed chain. It receives the raw
// message, its zero-based position, and whether it is the last message that
// will be printed.
type Transform func(message string, index int, last bool) string

// PrintOption configures Error.Print.
type PrintOption func(*printConfig)

type printConfig struct {
	separator string
	depth     int
	transform Transform
}

// WithSeparator sets the string joining consecutive messages.
// The default is " <- ".
func WithSeparator(sep string) PrintOption {
	return func(c *printConfig) { c.separator = sep }
}

// WithDepth bounds how many messages are printed. Zero (the default) means
// unbounded — the walk still stops at the package-wide traversal cap, which
// exists as a cycle defense.
func WithDepth(n int) PrintOption {
	return func(c *printConfig) { c.depth = n }
}

// WithTransform installs a per-message rewrite hook.
func WithTransform(t Transform) PrintOption {
	return func(c *printConfig) { c.transform = t }
}

// Print produces a single-line causal trace of the error.
//
// The walk follows only the *first* antecedent at each level — this is the
// direct-cause line, not a tree traversal — and stops when the chain is
// exhausted, the configured depth is reached, or the traversal cap fires.
//
// Example:
//
//	e3 := reason.NewError("request failed").CausedBy(e2) // e2 caused by e1
//	e3.Print()                                           // request failed <- db down <- dial tcp refused
//	e3.Print(reason.WithDepth(2))                        // request failed <- db down
func (e *Error) Print(opts ...PrintOption) string {
	cfg := printConfig{separator: chainSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Collect the direct-cause line.
	var messages []string
	for cur := e; cur != nil; {
		messages = append(messages, cur.display())
		if cfg.depth > 0 && len(messages) >= cfg.depth {
			break
		}
		if len(messages) >= maxChainDepth {
			break
		}
		if len(cur.antecedents) == 0 {
			break
		}
		cur = cur.antecedents[0]
	}

	if cfg.transform != nil {
		for i := range messages {
			messages[i] = cfg.transform(messages[i], i, i == len(messages)-1)
		}
	}
	return strings.Join(messages, cfg.separator)
}
