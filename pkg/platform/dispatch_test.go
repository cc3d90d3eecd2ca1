package platform_test

import (
	"testing"

	"github.com/go-drift/sizetransition/pkg/platform"
)

func TestDispatch_UsesRegisteredFunction(t *testing.T) {
	var scheduled []func()
	prev := platform.RegisterDispatch(func(cb func()) { scheduled = append(scheduled, cb) })
	t.Cleanup(func() { platform.RegisterDispatch(prev) })

	var ran bool
	if !platform.Dispatch(func() { ran = true }) {
		t.Fatal("expected Dispatch to report scheduling")
	}
	if ran {
		t.Error("expected callback to be deferred to the host")
	}
	if len(scheduled) != 1 {
		t.Fatalf("expected one scheduled callback, got %d", len(scheduled))
	}
	scheduled[0]()
	if !ran {
		t.Error("expected callback to run when the host drains it")
	}
}

func TestDispatch_UnregisteredReturnsFalse(t *testing.T) {
	prev := platform.RegisterDispatch(nil)
	t.Cleanup(func() { platform.RegisterDispatch(prev) })

	if platform.Dispatch(func() {}) {
		t.Error("expected Dispatch to fail with no registered function")
	}
}

func TestDispatchOrRun_FallsBackInline(t *testing.T) {
	prev := platform.RegisterDispatch(nil)
	t.Cleanup(func() { platform.RegisterDispatch(prev) })

	var ran bool
	platform.DispatchOrRun(func() { ran = true })
	if !ran {
		t.Error("expected inline execution without a registered dispatcher")
	}
}

func TestDispatch_NilCallbackIsIgnored(t *testing.T) {
	prev := platform.RegisterDispatch(func(cb func()) { cb() })
	t.Cleanup(func() { platform.RegisterDispatch(prev) })

	if platform.Dispatch(nil) {
		t.Error("expected nil callback to be rejected")
	}
	platform.DispatchOrRun(nil) // must not panic
}
