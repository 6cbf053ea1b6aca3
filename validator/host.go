// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package validator hosts the embedded CSAF validator bundle inside a
// sandboxed, single-threaded script runtime and exposes a Go-shaped
// Check(doc) -> []string interface over it.
//
// goja.Runtime plays the role of the "isolate" this package is built
// against: a single-threaded, non-thread-safe JS interpreter whose only
// thread-safe operation is preemptive interruption of whatever it is
// currently running.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/helio-frota/csaf-walker/validator/bundle"
)

// Host owns one goja.Runtime configured to evaluate the embedded validator
// bundle, plus the runner function the bundle registered during top-level
// evaluation.
//
// A Host is not safe for concurrent use; the Adapter serializes access to
// it with a mutex held for the entire Check call.
type Host struct {
	runtime *goja.Runtime
	runner  goja.Callable
}

// NewHost creates the runtime, registers the host-exported registerRunner
// operation, and evaluates the embedded bundle to completion. The bundle
// must call registerRunner exactly once during that evaluation.
func NewHost() (*Host, error) {
	rt := goja.New()

	var (
		registered goja.Callable
		calls      int
	)

	if err := rt.Set("registerRunner", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(rt.NewTypeError("registerRunner requires a function argument"))
		}
		registered = fn
		calls++
		return goja.Undefined()
	}); err != nil {
		return nil, fmt.Errorf("registering runner hook: %w", err)
	}

	if _, err := rt.RunScript(bundle.ModuleID, bundle.Code()); err != nil {
		return nil, fmt.Errorf("evaluating validator bundle: %w", err)
	}

	if calls != 1 || registered == nil {
		return nil, errors.New("runner function was not initialized")
	}

	return &Host{runtime: rt, runner: registered}, nil
}

// Call invokes the runner with arguments [validations, doc] — note the
// reversal relative to this method's own parameter order, matching the
// bundle's JS call signature — and decodes the resolved value into a
// TestResult.
func (h *Host) Call(validations []ValidationSet, doc any) (TestResult, error) {
	validationsVal := h.runtime.ToValue(validations)
	docVal := h.runtime.ToValue(doc)

	result, err := h.runner(goja.Undefined(), validationsVal, docVal)
	if err != nil {
		return TestResult{}, fmt.Errorf("calling runner: %w", err)
	}

	return decodeResult(result)
}

// decodeResult resolves a (possibly already-settled) Promise returned by
// the runner and decodes its value into a TestResult. goja drains the
// microtask queue after every Go-into-JS call returns, so a Promise
// produced by synchronous resolution (Promise.resolve, no timers involved)
// is already settled by the time Call's runner invocation returns.
func decodeResult(value goja.Value) (TestResult, error) {
	exported := value.Export()

	if promise, ok := exported.(*goja.Promise); ok {
		switch promise.State() {
		case goja.PromiseStateFulfilled:
			exported = promise.Result().Export()
		case goja.PromiseStateRejected:
			return TestResult{}, fmt.Errorf("runner promise rejected: %v", promise.Result().Export())
		default:
			return TestResult{}, errors.New("runner promise did not settle")
		}
	}

	data, err := json.Marshal(exported)
	if err != nil {
		return TestResult{}, fmt.Errorf("re-marshaling runner result: %w", err)
	}

	var result TestResult
	if err := json.Unmarshal(data, &result); err != nil {
		return TestResult{}, fmt.Errorf("decoding test result: %w", err)
	}
	return result, nil
}

// Terminate preempts whatever script is currently running in this runtime.
// Unlike every other Host method, Terminate is thread-safe: it is the
// watchdog's only way to bound the wall-clock time of arbitrarily expensive
// in-script code, because the runtime is single-threaded and cooperative
// internally.
func (h *Host) Terminate(reason any) {
	h.runtime.Interrupt(reason)
}
