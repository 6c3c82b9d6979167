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

package mapper

import (
	"net/http"

	"dirpx.dev/doption/label"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated label prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix wins.
	// For HTTP this is the final value; gRPC values are stored as ints in
	// the builder and converted to codes.Code when freezing.
	val int
}

type builder struct {
	// user-provided adjustments, applied on top of library defaults

	// httpDefaults holds per-class HTTP defaults that override library
	// defaults. Keyed by the label's first segment.
	httpDefaults map[label.Label]int
	// grpcDefaults holds per-class gRPC defaults as ints.
	grpcDefaults map[label.Label]int

	// httpOverride holds exact full-label HTTP overrides (highest tier).
	httpOverride map[label.Label]int
	// grpcOverride holds exact full-label gRPC overrides as ints.
	grpcOverride map[label.Label]int

	// httpPrefixes and grpcPrefixes hold the LPM rules, compiled into
	// segment tries at build time.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when a label has no class default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[label.Label]int, len(defaultHTTP)),
		grpcDefaults: make(map[label.Label]int, len(defaultGRPC)),

		// overrides and prefixes are usually few
		httpOverride: make(map[label.Label]int),
		grpcOverride: make(map[label.Label]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
