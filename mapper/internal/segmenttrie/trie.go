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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated keys (labels). It backs the mapper's longest-prefix-match
// rules and is not part of the public API.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie indexes dot-separated keys by segment. Each node represents one
// segment; the wildcard "*" matches exactly one segment. Lookup is
// longest-prefix-match with segment boundaries, so a deeper rule always
// wins over a shorter one, and "auth.j" never matches an "auth.jwt" rule.
//
// A Trie is mutable during Insert and must be treated as frozen afterwards;
// concurrent lookups on a frozen trie are safe.
type Trie[T any] struct {
	// children holds the next segments, including "*" wildcard branches.
	children map[string]*Trie[T]
	// terminal marks that a rule ends at this node.
	terminal bool
	val      T
	// pattern is the rule as inserted (with '*' where wildcards were used),
	// kept for diagnostics so lookups never rebuild strings.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains characters outside [a-z0-9_.], or consists only
// of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix rule and associates it with val.
//
// Examples:
//
//	"unavailable.storage.pg"
//	"auth.jwt.verify"
//	"auth.*.verify"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected — it would shadow everything. Inserting the same
// prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrInvalidPrefix
		}
		if seg != "*" {
			concrete = true
		}
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, seg := range segs {
		child, ok := cur.children[seg]
		if !ok {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.terminal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the deepest rule whose prefix covers the key and returns its
// value.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the matched rule's pattern, for Explain
// output. Both exact and wildcard branches are explored; among rules of
// equal depth the exact branch wins because it is visited first and a later
// candidate must be strictly deeper to replace it.
//
// An invalid key (bad characters, empty segments) matches nothing beyond
// the segments parsed before the defect.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}

	best := struct {
		depth int
		node  *Trie[T]
	}{depth: -1}

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.terminal && depth > best.depth {
			best.depth = depth
			best.node = n
		}
		if off >= len(key) {
			return
		}
		seg, next, ok := nextSegment(key, off)
		if !ok {
			return
		}
		if child, exists := n.children[seg]; exists {
			walk(child, next, depth+1)
		}
		if child, exists := n.children["*"]; exists {
			walk(child, next, depth+1)
		}
	}
	walk(t, 0, 0)

	if best.depth < 0 {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

// nextSegment parses one [a-z][a-z0-9_]* segment of key starting at off and
// returns it with the offset past the following dot. The segment is a
// substring of key, so lookups do not allocate.
func nextSegment(key string, off int) (seg string, next int, ok bool) {
	i := off
	c := key[i]
	if c < 'a' || c > 'z' {
		return "", 0, false
	}
	i++
	for i < len(key) {
		c = key[i]
		if c == '.' {
			break
		}
		if !segmentByte(c) {
			return "", 0, false
		}
		i++
	}
	next = i
	if next < len(key) && key[next] == '.' {
		next++
	}
	return key[off:i], next, true
}

// validSegment reports whether seg may appear in an inserted prefix:
// the wildcard "*", or [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if !segmentByte(seg[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
