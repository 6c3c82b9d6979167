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

// Package grpcx adapts doption failures to gRPC status errors.
//
// A *reason.Error crossing a gRPC boundary becomes a *status.Status whose
// code is resolved by an apis.Mapper from the error's label and whose
// details carry the label, the metadata, and the printed causal chain as
// standard google.rpc error details (ErrorInfo, DebugInfo, RetryInfo).
// Clients that know nothing about doption still see a well-formed status;
// clients that do can recover the label and metadata with ExtractErrorInfo.
package grpcx

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/doption"
	"dirpx.dev/doption/adapter"
	"dirpx.dev/doption/apis"
	"dirpx.dev/doption/label"
	"dirpx.dev/doption/reason"
)

// Domain is the value placed in ErrorInfo.Domain for errors produced by this
// package. Override it at program start when serving under a different
// error domain.
var Domain = "dirpx.dev"

// Extras holds optional metadata that can be embedded into the status
// details. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier (W3C traceparent /
	// OpenTelemetry).
	TraceID string

	// SpanID is the span identifier within the trace.
	SpanID string

	// RetryAfter, when positive, is attached as a google.rpc.RetryInfo
	// client backoff hint.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from context and the domain error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *reason.Error) Extras

// StatusOf builds a gRPC status for a domain error.
//
// The status code comes from the mapper's resolution of the error's label;
// the message is the error's display form. Two detail messages are
// attached: a google.rpc.ErrorInfo carrying the label and the error's
// metadata, and a google.rpc.DebugInfo carrying the printed causal chain.
// A nil error yields an OK status.
func StatusOf(m apis.Mapper, e *reason.Error) *gstatus.Status {
	return statusWith(m, e, Extras{})
}

func statusWith(m apis.Mapper, e *reason.Error, ex Extras) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}

	base := gstatus.New(m.GRPCStatus(e.Label()), e.Error())

	details := make([]protoadapt.MessageV1, 0, 3)
	details = append(details, errorInfo(e, ex))
	if chain := e.Print(); chain != "" {
		details = append(details, &errdetails.DebugInfo{Detail: chain})
	}
	if ex.RetryAfter > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}

	// Attach details; if it fails (e.g. the label mapped to OK) — return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// errorInfo projects the error's label and metadata into a
// google.rpc.ErrorInfo. Extras tokens ride along in the metadata map under
// reserved keys so clients need only one detail type for correlation.
func errorInfo(e *reason.Error, ex Extras) *errdetails.ErrorInfo {
	md := adapter.MetadataMap(e)
	if md == nil {
		md = make(map[string]string, 3)
	}
	if ex.CorrelationID != "" {
		md["correlation_id"] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		md["trace_id"] = ex.TraceID
	}
	if ex.SpanID != "" {
		md["span_id"] = ex.SpanID
	}
	return &errdetails.ErrorInfo{
		Reason:   string(e.Label()),
		Domain:   Domain,
		Metadata: md,
	}
}

// ErrOf converts any error into a gRPC-ready error. Domain errors (direct
// or wrapped) go through the mapper with full details; other errors that
// carry a label (apis.LabeledError) are mapped without details; everything
// else is returned as-is. A nil error stays nil.
func ErrOf(m apis.Mapper, err error) error {
	if err == nil {
		return nil
	}
	var de *reason.Error
	if errors.As(err, &de) {
		return StatusOf(m, de).Err()
	}
	if l := apis.LabelOf(err); l != label.Empty {
		return gstatus.New(m.GRPCStatus(l), err.Error()).Err()
	}
	return err
}

// FromOutcome converts an outcome into a gRPC-ready error: nil for a
// successful outcome, a detailed status error otherwise.
func FromOutcome(m apis.Mapper, o doption.Outcome) error {
	if e, failed := o.Error(); failed {
		return StatusOf(m, e).Err()
	}
	return nil
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// domain errors into gRPC status errors with google.rpc details.
//
// The provided apis.Mapper resolves the status code from the error label.
// The optional MetaFn can extract correlation and retry hints from context
// and the domain error. If nil, no extra metadata is added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *reason.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *reason.Error
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, statusWith(m, de, metaFn(ctx, de)).Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractDebugInfo pulls the google.rpc.DebugInfo (the printed causal
// chain) out of a gRPC error, if present.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.DebugInfo); ok {
			return info, true
		}
	}
	return nil, false
}
