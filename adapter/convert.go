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

// Package adapter converts domain reasons into the transport-friendly view
// shapes defined in apis. The HTTP and gRPC adapters build on it instead of
// snapshotting reasons themselves.
package adapter

import (
	"fmt"

	"dirpx.dev/doption/apis"
	"dirpx.dev/doption/reason"
)

// maxCauses bounds the flattened cause list, mirroring the chain-depth cap
// reasons apply when rendering.
const maxCauses = 32

// ToDescriptor converts a domain error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message-bus
// propagation: it carries both the logical label and the concrete transport
// statuses.
func ToDescriptor(e *reason.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Label:      string(e.Label()),
		Message:    e.Error(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}

// ToView converts a domain error into a public ErrorView. No redaction or
// filtering is performed; the view exposes exactly what the error contains.
// It is up to the caller or API layer to drop sensitive entries.
func ToView(e *reason.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Label:   string(e.Label()),
		Message: e.Error(),
		Details: Details(e),
		Causes:  Causes(e),
	}
}

// Details flattens the error's metadata into transport details, preserving
// insertion order. Values are rendered with fmt.Sprint.
func Details(e *reason.Error) []apis.Detail {
	md := e.Metadata()
	if len(md) == 0 {
		return nil
	}
	ds := make([]apis.Detail, len(md))
	for i, m := range md {
		ds[i] = apis.Detail{Key: m.Key, Value: fmt.Sprint(m.Value)}
	}
	return ds
}

// MetadataMap flattens the error's metadata into a string map for proto
// payloads that cannot carry ordered pairs (errdetails.ErrorInfo). A
// repeated key cannot occur; reasons replace values in place.
func MetadataMap(e *reason.Error) map[string]string {
	md := e.Metadata()
	if len(md) == 0 {
		return nil
	}
	out := make(map[string]string, len(md))
	for _, m := range md {
		out[m.Key] = fmt.Sprint(m.Value)
	}
	return out
}

// Causes flattens the causal chain into a message list, nearest cause
// first. Like reason.Error.Print, it follows only the first antecedent at
// every level and stops at the defensive depth cap.
func Causes(e *reason.Error) []string {
	var out []string
	for cur := e; len(cur.Antecedents()) > 0 && len(out) < maxCauses; {
		cur = cur.Antecedents()[0]
		out = append(out, cur.Error())
	}
	return out
}
