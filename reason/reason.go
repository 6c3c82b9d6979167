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

import (
	"fmt"
	"strings"
)

// Reason is the common read surface of Success and Error.
//
// Adapters (views, transports, loggers) should accept this interface when
// they only need to inspect a reason, so they stay agnostic of which kind
// they were handed.
type Reason interface {
	// Message returns the human-readable explanation. May be empty.
	Message() string

	// Metadata returns the attached metadata in insertion order. The
	// returned slice is the reason's own backing storage; callers must
	// treat it as read-only.
	Metadata() []Metadatum

	// String renders the reason including metadata and antecedent chain.
	String() string
}

// Compile-time interface checks.
var (
	_ Reason = (*Success)(nil)
	_ Reason = (*Error)(nil)
)

// Metadatum is one metadata entry. Metadata is an open mapping: keys are
// free-form, values arbitrary. Insertion order is preserved and used when
// rendering.
type Metadatum struct {
	Key   string
	Value any
}

// chainSeparator joins antecedent renderings in String output.
const chainSeparator = " <- "

// maxChainDepth caps recursive chain traversal during rendering and Print.
// The antecedent structure is intended to be acyclic, but nothing in the API
// enforces that, so traversal must terminate regardless.
const maxChainDepth = 32

// core carries the state shared by Success and Error. The message is fixed
// at construction; metadata is append-only through WithMetadata on the
// concrete kinds.
type core struct {
	message  string
	metadata []Metadatum
}

// Message returns the human-readable explanation.
func (c *core) Message() string { return c.message }

// Metadata returns the metadata entries in insertion order.
func (c *core) Metadata() []Metadatum { return c.metadata }

// setMetadata records one key/value pair. A repeated key replaces the value
// in place, keeping the key's original position.
func (c *core) setMetadata(key string, value any) {
	for i := range c.metadata {
		if c.metadata[i].Key == key {
			c.metadata[i].Value = value
			return
		}
	}
	c.metadata = append(c.metadata, Metadatum{Key: key, Value: value})
}

// metadataSuffix renders ", Metadata: k: v; k2: v2" or "" when there is none.
func (c *core) metadataSuffix() string {
	if len(c.metadata) == 0 {
		return ""
	}
	parts := make([]string, len(c.metadata))
	for i, m := range c.metadata {
		parts[i] = fmt.Sprintf("%s: %v", m.Key, m.Value)
	}
	return ", Metadata: " + strings.Join(parts, "; ")
}

// quote wraps a message in the single quotes used by reason rendering.
func quote(msg string) string { return "'" + msg + "'" }
