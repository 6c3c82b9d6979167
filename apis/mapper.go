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

package apis

import (
	"dirpx.dev/doption/label"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of status-mapping rules.
// It resolves an error's label into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given label. When no
	// label-specific rule exists, the mapper must fall back to the label's
	// class default, and ultimately to its global fallback.
	HTTPStatus(l label.Label) int

	// GRPCStatus returns the gRPC status code for the given label, with the
	// same fallback behavior as HTTPStatus.
	GRPCStatus(l label.Label) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic, so the two transports never disagree about one error.
	Status(l label.Label) Status

	// Explain returns a human-readable description of which rule matched.
	// Intended for diagnostics and tests, not stable machine parsing.
	Explain(l label.Label) string
}

// Status represents a resolved pair of transport statuses for a single
// error. It is the final output of the mapper and can be written directly
// to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
