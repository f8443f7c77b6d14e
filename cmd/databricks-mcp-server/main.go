package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/JustTryAI/databricks-mcp-server/internal/metrics"
	"github.com/JustTryAI/databricks-mcp-server/internal/version"
	"github.com/JustTryAI/databricks-mcp-server/pkg/config"
	"github.com/JustTryAI/databricks-mcp-server/pkg/databricks"
	"github.com/JustTryAI/databricks-mcp-server/pkg/logger"
	"github.com/JustTryAI/databricks-mcp-server/pkg/tools"
)

var (
	port       int
	adminPort  int
	stdio      bool
	categories []string
	configFile string

	// Name is the server name advertised during the MCP handshake.
	Name = "databricks-mcp-server"
)

var rootCmd = &cobra.Command{
	Use:   "databricks-mcp-server",
	Short: "MCP server exposing the Databricks REST API as tools",
	RunE:  run,
}

var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the databricks-mcp-server version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if shortVersion {
			fmt.Println(info.Short())
			return
		}
		fmt.Println(info.String())
	},
}

func init() {
	rootCmd.Flags().IntVarP(&port, "port", "p", 8090, "Port for the SSE server")
	rootCmd.Flags().IntVar(&adminPort, "admin-port", 8091, "Port for metrics and health endpoints (0 disables)")
	rootCmd.Flags().BoolVar(&stdio, "stdio", false, "Use stdio for communication instead of HTTP")
	rootCmd.Flags().StringSliceVar(&categories, "categories", []string{}, "Tool categories to register. If empty, all categories are registered.")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Optional config file; environment variables take precedence")
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print only the version number and commit")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger.Get().Info("Starting "+Name,
		"version", version.Version,
		"git_commit", version.GitCommit,
		"build_date", version.BuildDate,
		"host", cfg.Host,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := databricks.NewClient(cfg.Host, cfg.Token,
		databricks.WithRetryPolicy(cfg.MaxRetries, cfg.RetryBackoff, cfg.RetryBackoffCap),
		databricks.WithRequestTimeout(cfg.RequestTimeout),
	)

	registry := tools.NewRegistry()
	if err := tools.Register(registry, client, categories...); err != nil {
		return fmt.Errorf("failed to populate tool registry: %w", err)
	}
	logger.Get().Info("Registered tools", "count", registry.Len(), "categories", strings.Join(categories, ","))

	dispatcher := tools.NewDispatcher(registry,
		tools.WithTimeouts(cfg.ToolTimeout, cfg.LongRunningTimeout),
		tools.WithProgress(tools.ProgressNotifier(), 5*time.Second),
	)

	mcpServer := server.NewMCPServer(Name, version.Version)
	tools.Attach(mcpServer, dispatcher, registry)

	prometheus.MustRegister(metrics.NewBuildInfoCollector())

	var wg sync.WaitGroup

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	var sseServer *server.SSEServer
	var adminServer *http.Server

	wg.Add(1)
	if stdio {
		go func() {
			defer wg.Done()
			runStdioServer(ctx, mcpServer)
		}()
	} else {
		sseServer = server.NewSSEServer(mcpServer)
		go func() {
			defer wg.Done()
			addr := fmt.Sprintf(":%d", port)
			logger.Get().Info("Running Databricks MCP server over SSE", "addr", addr)
			if err := sseServer.Start(addr); err != nil {
				if !errors.Is(err, http.ErrServerClosed) {
					logger.Get().Error(err, "Failed to start SSE server")
				} else {
					logger.Get().Info("SSE server closed gracefully.")
				}
			}
		}()
	}

	if adminPort > 0 {
		adminServer = newAdminServer(adminPort)
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Get().Info("Running admin endpoints", "addr", adminServer.Addr)
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Get().Error(err, "Failed to start admin server")
			}
		}()
	}

	go func() {
		<-signalChan
		logger.Get().Info("Received termination signal, shutting down server...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if sseServer != nil {
			if err := sseServer.Shutdown(shutdownCtx); err != nil {
				logger.Get().Error(err, "Failed to shutdown SSE server gracefully")
			}
		}
		if adminServer != nil {
			if err := adminServer.Shutdown(shutdownCtx); err != nil {
				logger.Get().Error(err, "Failed to shutdown admin server gracefully")
			}
		}
	}()

	wg.Wait()
	logger.Get().Info("Server shutdown complete")
	return nil
}

func runStdioServer(ctx context.Context, mcpServer *server.MCPServer) {
	logger.Get().Info("Running Databricks MCP server over stdio")
	stdioServer := server.NewStdioServer(mcpServer)
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Get().Info("Stdio server stopped", "error", err)
	}
}

func newAdminServer(port int) *http.Server {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(version.Get())
	}).Methods(http.MethodGet)

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
}
