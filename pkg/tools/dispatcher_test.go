package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustTryAI/databricks-mcp-server/internal/metrics"
)

// fakeCaller counts remote calls and returns a canned response.
type fakeCaller struct {
	calls  atomic.Int32
	result any
	err    error
}

func (f *fakeCaller) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return map[string]any{}, nil
	}
	return f.result, nil
}

func TestDispatchSuccess(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name:   "echo",
		Params: ParamSchema{req("value", TypeString, "")},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return map[string]any{"echo": args["value"]}, nil
		},
	}))
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), Request{
		ToolName:  "echo",
		Arguments: map[string]any{"value": "hi"},
	})
	assert.False(t, result.IsError)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, map[string]any{"echo": "hi"}, result.Content)
}

func TestDispatchUnknownTool(t *testing.T) {
	caller := &fakeCaller{}
	registry := NewRegistry()
	require.NoError(t, Register(registry, caller))
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "no_such_tool"})
	assert.True(t, result.IsError)
	assert.Equal(t, "unknown tool no_such_tool", result.ErrorMessage)
	assert.Equal(t, int32(0), caller.calls.Load(), "unknown tool must perform zero remote calls")
}

func TestDispatchUnknownToolUsesFixedMetricLabel(t *testing.T) {
	registry := NewRegistry()
	dispatcher := NewDispatcher(registry)

	before := testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues("unknown", "error"))

	// A caller-controlled name must not become a metric label value.
	name := fmt.Sprintf("made_up_tool_%d", time.Now().UnixNano())
	result := dispatcher.Dispatch(context.Background(), Request{ToolName: name})
	require.True(t, result.IsError)
	assert.Contains(t, result.ErrorMessage, name)

	after := testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues("unknown", "error"))
	assert.Equal(t, before+1, after)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "databricks_mcp_tool_invocations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				assert.NotEqual(t, name, label.GetValue())
			}
		}
	}
}

func TestDispatchValidationFailure(t *testing.T) {
	caller := &fakeCaller{}
	registry := NewRegistry()
	require.NoError(t, Register(registry, caller))
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), Request{
		ToolName:  "get_cluster",
		Arguments: map[string]any{},
	})
	assert.True(t, result.IsError)
	assert.Contains(t, result.ErrorMessage, `missing required parameter "cluster_id"`)
	assert.Equal(t, int32(0), caller.calls.Load(), "invalid arguments must not reach the remote API")
}

func TestDispatchHandlerErrorStaysInEnvelope(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "boom",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, errors.New("remote said no")
		},
	}))
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "boom"})
	assert.True(t, result.IsError)
	assert.Equal(t, "remote said no", result.ErrorMessage)
	assert.Nil(t, result.Content)
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "panicky",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			panic("handler bug")
		},
	}))
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "panicky"})
	assert.True(t, result.IsError)
	assert.Contains(t, result.ErrorMessage, "internal error")
	// The panic text stays out of the protocol surface.
	assert.NotContains(t, result.ErrorMessage, "handler bug")
}

func TestDispatchTimeout(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "slow",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))
	dispatcher := NewDispatcher(registry, WithTimeouts(10*time.Millisecond, 20*time.Millisecond))

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "slow"})
	assert.True(t, result.IsError)
	assert.Contains(t, result.ErrorMessage, "timed out")
}

func TestDispatchAlwaysYieldsExactlyOneResult(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "flaky",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, errors.New("nope")
		},
	}))
	require.NoError(t, registry.Register(Descriptor{Name: "fine", Handler: noopHandler}))
	dispatcher := NewDispatcher(registry)

	for _, name := range []string{"flaky", "fine", "missing"} {
		result := dispatcher.Dispatch(context.Background(), Request{ToolName: name})
		if result.IsError {
			assert.NotEmpty(t, result.ErrorMessage, "%s: error results carry a message", name)
			assert.Nil(t, result.Content, "%s: never both content and error", name)
		} else {
			assert.Empty(t, result.ErrorMessage, "%s: success results carry no message", name)
		}
	}
}

func TestDispatchConcurrent(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name:   "mirror",
		Params: ParamSchema{req("n", TypeInteger, "")},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return args["n"], nil
		},
	}))
	dispatcher := NewDispatcher(registry)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			result := dispatcher.Dispatch(context.Background(), Request{
				ToolName:  "mirror",
				Arguments: map[string]any{"n": float64(n)},
			})
			assert.False(t, result.IsError)
			assert.Equal(t, float64(n), result.Content)
		}(i)
	}
	wg.Wait()
}

func TestDispatchCancellationStopsProgress(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name:        "long_op",
		LongRunning: true,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))

	var events atomic.Int32
	dispatcher := NewDispatcher(registry,
		WithTimeouts(time.Minute, time.Minute),
		WithProgress(func(ctx context.Context, tool string, elapsed time.Duration) {
			events.Add(1)
		}, time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	result := dispatcher.Dispatch(ctx, Request{ToolName: "long_op"})
	assert.True(t, result.IsError)

	// Once Dispatch has returned, the heartbeat goroutine has stopped; no
	// further events may fire.
	settled := events.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, events.Load())
	assert.GreaterOrEqual(t, settled, int32(1), "progress events precede the terminal result")
}

func TestDispatchProgressOnlyForLongRunning(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "quick",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			time.Sleep(10 * time.Millisecond)
			return map[string]any{}, nil
		},
	}))

	var events atomic.Int32
	dispatcher := NewDispatcher(registry,
		WithProgress(func(ctx context.Context, tool string, elapsed time.Duration) {
			events.Add(1)
		}, time.Millisecond),
	)

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "quick"})
	assert.False(t, result.IsError)
	assert.Equal(t, int32(0), events.Load())
}

func TestDispatchErrorMessagesNameTheTool(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name: "slow",
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))
	dispatcher := NewDispatcher(registry, WithTimeouts(5*time.Millisecond, 5*time.Millisecond))

	result := dispatcher.Dispatch(context.Background(), Request{ToolName: "slow"})
	assert.True(t, result.IsError)
	assert.Contains(t, result.ErrorMessage, "slow")
	assert.Contains(t, result.ErrorMessage, fmt.Sprint(5*time.Millisecond))
}
