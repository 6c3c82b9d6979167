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

// defaultHTTP defines the built-in HTTP mappings for the well-known label
// classes. These are only defaults: callers are expected to override them
// at the boundary where HTTP is actually produced when a different policy
// is required.
var defaultHTTP = map[label.Label]int{
	label.Internal:    http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	label.Validation:  http.StatusBadRequest,          // Malformed input, validation errors, contract violation.
	label.NotFound:    http.StatusNotFound,            // Target resource does not exist (or is not visible to the caller).
	label.Conflict:    http.StatusConflict,            // Uniqueness violation, version mismatch, concurrent update.
	label.Auth:        http.StatusUnauthorized,        // Caller could not be authenticated; refine per label for 403.
	label.Timeout:     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	label.Unavailable: http.StatusServiceUnavailable,  // Service or a required dependency is temporarily unreachable.
	label.RateLimited: http.StatusTooManyRequests,     // Caller hit a rate limit or quota.
}

// defaultGRPC defines the built-in gRPC mappings for the well-known label
// classes, chosen to align with canonical gRPC status semantics.
var defaultGRPC = map[label.Label]codes.Code{
	label.Internal:    codes.Internal,
	label.Validation:  codes.InvalidArgument,
	label.NotFound:    codes.NotFound,
	label.Conflict:    codes.Aborted,           // General conflict (concurrent updates, uniqueness).
	label.Auth:        codes.Unauthenticated,   // Refine to PermissionDenied per label where appropriate.
	label.Timeout:     codes.DeadlineExceeded,  // Time budget exceeded.
	label.Unavailable: codes.Unavailable,       // Dependency temporarily unavailable.
	label.RateLimited: codes.ResourceExhausted, // Rate limit or quota hit.
}
