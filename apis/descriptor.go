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

// ErrorDescriptor is a flat, transport-friendly description of an error
// together with its resolved transport statuses.
//
// Unlike ErrorView (which is client-facing), the descriptor is intended for
// structured logging, tracing, and message-bus propagation — places where
// the consumer wants both the logical classification and the concrete
// status projection in one record.
type ErrorDescriptor struct {
	// Label is the canonical error classifier, e.g. "unavailable.storage.pg".
	// Implementations should store only normalized, validated labels here.
	Label string `json:"label,omitempty"`

	// Message is the human-readable failure message.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means
	// "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer. A value of 0
	// means OK, which never describes an error — treat it as "not resolved".
	GRPCCode int `json:"grpc_code,omitempty"`
}
