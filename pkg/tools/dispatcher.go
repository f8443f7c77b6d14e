package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JustTryAI/databricks-mcp-server/internal/metrics"
	"github.com/JustTryAI/databricks-mcp-server/pkg/logger"
)

// Request is one decoded tool-call envelope.
type Request struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// Result is the protocol result envelope. Field names are dictated by the
// protocol and must not change.
type Result struct {
	Content      any    `json:"content"`
	IsError      bool   `json:"isError"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// ProgressFunc receives heartbeat progress events for long-running tools.
// Zero or more progress events precede exactly one terminal result.
type ProgressFunc func(ctx context.Context, tool string, elapsed time.Duration)

// Dispatcher routes tool-call requests to registered handlers. It is safe
// for concurrent use; the registry is immutable and all per-call state is
// local.
type Dispatcher struct {
	registry         *Registry
	timeout          time.Duration
	longTimeout      time.Duration
	progress         ProgressFunc
	progressInterval time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithTimeouts sets the default and long-running dispatch timeouts.
func WithTimeouts(timeout, longTimeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
		d.longTimeout = longTimeout
	}
}

// WithProgress installs a progress sink for long-running tools, invoked at
// the given interval while the handler is in flight.
func WithProgress(fn ProgressFunc, interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.progress = fn
		d.progressInterval = interval
	}
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry:         registry,
		timeout:          60 * time.Second,
		longTimeout:      10 * time.Minute,
		progressInterval: 5 * time.Second,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Dispatch resolves, validates and executes one tool call. Every request
// yields exactly one Result; failures of any kind travel inside the result
// envelope and never propagate as errors or panics.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	desc, err := d.registry.Lookup(req.ToolName)
	if err != nil {
		// Caller-supplied names must not mint metric label values.
		return errorResult("unknown", fmt.Sprintf("unknown tool %s", req.ToolName))
	}

	args, err := desc.Params.Validate(desc.Name, req.Arguments)
	if err != nil {
		return errorResult(desc.Name, err.Error())
	}

	timeout := d.timeout
	if desc.LongRunning {
		timeout = d.longTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if desc.LongRunning && d.progress != nil {
		stop := d.startHeartbeat(callCtx, desc.Name)
		defer stop()
	}

	started := time.Now()
	value, err := d.invoke(callCtx, desc, args)
	metrics.ToolDuration.WithLabelValues(desc.Name).Observe(time.Since(started).Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errorResult(desc.Name, fmt.Sprintf("tool %s timed out after %s", desc.Name, timeout))
		}
		if errors.Is(err, context.Canceled) {
			return errorResult(desc.Name, fmt.Sprintf("tool %s was cancelled", desc.Name))
		}
		return errorResult(desc.Name, err.Error())
	}

	metrics.ToolInvocations.WithLabelValues(desc.Name, "ok").Inc()
	return Result{Content: value}
}

// invoke runs the handler with a panic guard. A panicking handler must not
// cross the protocol boundary.
func (d *Dispatcher) invoke(ctx context.Context, desc *Descriptor, args map[string]any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error(nil, "tool handler panicked", "tool", desc.Name, "panic", fmt.Sprint(r))
			err = fmt.Errorf("internal error in tool %s", desc.Name)
		}
	}()
	return desc.Handler(ctx, args)
}

// startHeartbeat emits progress events until the returned stop function is
// called or the context ends. No event can be emitted after stop returns.
func (d *Dispatcher) startHeartbeat(ctx context.Context, tool string) func() {
	started := time.Now()
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(d.progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.progress(ctx, tool, time.Since(started))
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

// errorResult builds an error envelope. metricLabel must be a registered
// tool name, or "unknown" for requests that never resolved to one.
func errorResult(metricLabel, message string) Result {
	metrics.ToolInvocations.WithLabelValues(metricLabel, "error").Inc()
	return Result{IsError: true, ErrorMessage: message}
}
