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

// Package httpx adapts doption failures to HTTP error responses.
//
// The response body is a google.rpc.Status rendered with protojson, the
// same shape gRPC gateways emit, so HTTP and gRPC clients of one service
// decode errors with a single schema. The HTTP status code is resolved by
// an apis.Mapper from the error's label.
package httpx

import (
	"net/http"
	"strconv"

	spb "google.golang.org/genproto/googleapis/rpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/doption"
	"dirpx.dev/doption/adapter"
	"dirpx.dev/doption/apis"
	"dirpx.dev/doption/reason"
)

// Domain is the value placed in ErrorInfo.Domain for errors produced by
// this package. Override it at program start when serving under a
// different error domain.
var Domain = "dirpx.dev"

// Meta carries extra context that the HTTP layer can add on top of the
// domain error. All fields are optional and typically come from request
// context, headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a *reason.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error as a google.rpc.Status JSON body and writes it
// to the response writer. The HTTP status is resolved via the Mapper; the
// embedded code field carries the gRPC projection of the same label so both
// transports stay consistent.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *reason.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Label())

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Error(),
	}
	if a, aerr := anypb.New(errorInfo(err, meta)); aerr == nil {
		body.Details = append(body.Details, a)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of nested structures, field names (json_name),
	// and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}

// WriteOutcome writes a failed outcome and reports whether a response was
// produced. A successful outcome writes nothing and leaves the handler in
// charge of the success path.
func (w Writer) WriteOutcome(rw http.ResponseWriter, o doption.Outcome, meta Meta) bool {
	e, failed := o.Error()
	if !failed {
		return false
	}
	w.Write(rw, e, meta)
	return true
}

// errorInfo projects the error's label and metadata into a
// google.rpc.ErrorInfo. Meta tokens ride along in the metadata map under
// reserved keys, mirroring the gRPC adapter.
func errorInfo(e *reason.Error, meta Meta) *errdetails.ErrorInfo {
	md := adapter.MetadataMap(e)
	if md == nil {
		md = make(map[string]string, 3)
	}
	if meta.Correlation != "" {
		md["correlation_id"] = meta.Correlation
	}
	if meta.TraceID != "" {
		md["trace_id"] = meta.TraceID
	}
	if meta.SpanID != "" {
		md["span_id"] = meta.SpanID
	}
	return &errdetails.ErrorInfo{
		Reason:   string(e.Label()),
		Domain:   Domain,
		Metadata: md,
	}
}
