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
	"dirpx.dev/doption/label"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time. All options are applied to an
// internal builder and then frozen into an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for a label
// class (the label's first segment). This affects the value used when no
// override and no prefix rule matched.
func WithHTTPDefault(class label.Label, status int) Option {
	return func(b *builder) { b.httpDefaults[class.Class()] = status }
}

// WithGRPCDefault sets or replaces the default gRPC status for a label
// class.
func WithGRPCDefault(class label.Label, status int) Option {
	return func(b *builder) { b.grpcDefaults[class.Class()] = status }
}

// WithHTTPOverride registers an exact HTTP status for one full label.
// Overrides are the highest resolution tier; they beat prefix rules and
// defaults.
func WithHTTPOverride(l label.Label, status int) Option {
	return func(b *builder) { b.httpOverride[l] = status }
}

// WithGRPCOverride registers an exact gRPC status for one full label.
func WithGRPCOverride(l label.Label, status int) Option {
	return func(b *builder) { b.grpcOverride[l] = status }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule. The rule is
// evaluated against the label's dot-separated segments; a more specific
// prefix wins. Use "*" to match a single segment.
func WithHTTPPrefix(prefix string, status int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, status}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule.
func WithGRPCPrefix(prefix string, status int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, status}) }
}

// WithFallback replaces the ultimate fallback statuses used for labels
// nothing else covers, including label.Empty.
func WithFallback(httpStatus int, grpcStatus codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = grpcStatus
	}
}
