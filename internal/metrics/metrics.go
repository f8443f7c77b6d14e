package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JustTryAI/databricks-mcp-server/internal/version"
)

var (
	// ToolInvocations counts dispatched tool calls by tool name and outcome
	// ("ok" or "error").
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "databricks_mcp_tool_invocations_total",
			Help: "Number of MCP tool invocations by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	// ToolDuration observes wall-clock dispatch time per tool.
	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "databricks_mcp_tool_duration_seconds",
			Help:    "MCP tool dispatch duration in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"tool"},
	)

	// APIRetries counts retried Databricks API attempts.
	APIRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "databricks_mcp_api_retries_total",
			Help: "Number of retried Databricks API requests.",
		},
	)

	// RateLimitHits counts 429 responses from the Databricks API.
	RateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "databricks_mcp_api_rate_limit_hits_total",
			Help: "Number of rate-limited Databricks API responses.",
		},
	)
)

// NewBuildInfoCollector returns a collector that exports metrics about current
// version information.
func NewBuildInfoCollector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "databricks_mcp_build_info",
			Help: "databricks-mcp-server build metadata exposed as labels with a constant value of 1.",
			ConstLabels: prometheus.Labels{
				"version":    version.Get().Version,
				"git_commit": version.Get().GitCommit,
				"build_date": version.Get().BuildDate,
				"go_version": version.Get().GoVersion,
				"platform":   version.Get().Platform,
			},
		},
		func() float64 { return 1 },
	)
}
