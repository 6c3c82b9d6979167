package apis_test

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/doption/apis"
	"dirpx.dev/doption/label"
	"dirpx.dev/doption/reason"
)

// reason.Error must satisfy the boundary contract.
var _ apis.LabeledError = (*reason.Error)(nil)

func TestLabelOf(t *testing.T) {
	e := reason.NewError("token expired").WithLabel("auth.token.expired")

	if got := apis.LabelOf(e); got != "auth.token.expired" {
		t.Fatalf("LabelOf = %q", got)
	}

	wrapped := fmt.Errorf("middleware: %w", e)
	if got := apis.LabelOf(wrapped); got != "auth.token.expired" {
		t.Fatalf("LabelOf(wrapped) = %q", got)
	}

	if got := apis.LabelOf(errors.New("boom")); got != label.Empty {
		t.Fatalf("LabelOf(plain) = %q, want empty", got)
	}
	if got := apis.LabelOf(nil); got != label.Empty {
		t.Fatalf("LabelOf(nil) = %q, want empty", got)
	}
}
