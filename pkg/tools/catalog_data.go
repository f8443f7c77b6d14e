package tools

import "net/http"

// Catalog returns the full Databricks API operation table. Tool names are
// stable and defined exactly once.
func Catalog() []Operation {
	return []Operation{
		// Cluster management
		{
			Name: "list_clusters", Category: "clusters",
			Description: "List all clusters in the workspace",
			Method:      http.MethodGet, Path: "/api/2.0/clusters/list",
			Returns:    listShape("clusters"),
			ReturnsDoc: "object with a clusters array, empty when none exist",
		},
		{
			Name: "create_cluster", Category: "clusters",
			Description: "Create a new all-purpose cluster",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/create",
			Params: ParamSchema{
				req("cluster_name", TypeString, "Name of the cluster"),
				req("spark_version", TypeString, "Databricks runtime version, e.g. 13.3.x-scala2.12"),
				req("node_type_id", TypeString, "Worker node type"),
				opt("num_workers", TypeInteger, "Fixed worker count; mutually exclusive with autoscale"),
				opt("autoscale", TypeObject, "Autoscale bounds {min_workers, max_workers}"),
				opt("spark_conf", TypeObject, "Spark configuration overrides"),
				opt("custom_tags", TypeObject, "Custom cluster tags"),
				opt("autotermination_minutes", TypeInteger, "Idle minutes before automatic termination"),
				opt("driver_node_type_id", TypeString, "Driver node type, defaults to node_type_id"),
			},
			ReturnsDoc: "object with the new cluster_id",
		},
		{
			Name: "get_cluster", Category: "clusters",
			Description: "Get information about a cluster",
			Method:      http.MethodGet, Path: "/api/2.0/clusters/get",
			Params: ParamSchema{req("cluster_id", TypeString, "Cluster to describe")},
			Returns: Shape{
				"cluster_id": {Kind: KindString, Required: true},
				"state":      {Kind: KindString},
			},
			ReturnsDoc: "full cluster specification and state",
		},
		{
			Name: "start_cluster", Category: "clusters",
			Description: "Start a terminated cluster",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/start",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to start")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "restart_cluster", Category: "clusters",
			Description: "Restart a running cluster",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/restart",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to restart")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "resize_cluster", Category: "clusters",
			Description: "Resize a cluster to a new worker count",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/resize",
			Params: ParamSchema{
				req("cluster_id", TypeString, "Cluster to resize"),
				opt("num_workers", TypeInteger, "New fixed worker count"),
				opt("autoscale", TypeObject, "New autoscale bounds {min_workers, max_workers}"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "terminate_cluster", Category: "clusters",
			Description: "Terminate a cluster; it can be restarted later",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/delete",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to terminate")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "permanently_delete_cluster", Category: "clusters",
			Description: "Permanently delete a cluster; this cannot be undone",
			Method:      http.MethodPost, Path: "/api/2.1/clusters/permanent-delete",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to delete permanently")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "pin_cluster", Category: "clusters",
			Description: "Pin a cluster so its configuration is retained",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/pin",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to pin")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "unpin_cluster", Category: "clusters",
			Description: "Unpin a cluster",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/unpin",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to unpin")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_cluster_events", Category: "clusters",
			Description: "List events for a cluster, newest first",
			Method:      http.MethodPost, Path: "/api/2.0/clusters/events",
			Params: ParamSchema{
				req("cluster_id", TypeString, "Cluster whose events to list"),
				opt("limit", TypeInteger, "Maximum number of events to return"),
				opt("offset", TypeInteger, "Offset into the event log"),
			},
			Returns:    listShape("events"),
			ReturnsDoc: "object with an events array, empty when none exist",
		},
		{
			Name: "list_node_types", Category: "clusters",
			Description: "List available cluster node types",
			Method:      http.MethodGet, Path: "/api/2.0/clusters/list-node-types",
			Returns:    listShape("node_types"),
			ReturnsDoc: "object with a node_types array",
		},
		{
			Name: "list_spark_versions", Category: "clusters",
			Description: "List available Databricks runtime versions",
			Method:      http.MethodGet, Path: "/api/2.0/clusters/spark-versions",
			Returns:    listShape("versions"),
			ReturnsDoc: "object with a versions array",
		},

		// Jobs and runs (Jobs API 2.1)
		{
			Name: "create_job", Category: "jobs",
			Description: "Create a job definition",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/create",
			Params: ParamSchema{
				req("name", TypeString, "Job name"),
				req("tasks", TypeArray, "Task definitions"),
				opt("tags", TypeObject, "Job tags"),
				opt("schedule", TypeObject, "Cron schedule definition"),
				opt("max_concurrent_runs", TypeInteger, "Maximum concurrent runs"),
				opt("email_notifications", TypeObject, "Email notification settings"),
			},
			ReturnsDoc: "object with the new job_id",
		},
		{
			Name: "list_jobs", Category: "jobs",
			Description: "List job definitions",
			Method:      http.MethodGet, Path: "/api/2.1/jobs/list",
			Params: ParamSchema{
				opt("limit", TypeInteger, "Page size, at most 100"),
				opt("page_token", TypeString, "Opaque pagination token"),
				opt("name", TypeString, "Filter by exact job name"),
			},
			Returns: Shape{
				"jobs":     {Kind: KindArray, Default: []any{}},
				"has_more": {Kind: KindBoolean, Default: false},
			},
			ReturnsDoc: "object with a jobs array and has_more flag",
		},
		{
			Name: "get_job", Category: "jobs",
			Description: "Get a job definition",
			Method:      http.MethodGet, Path: "/api/2.1/jobs/get",
			Params: ParamSchema{req("job_id", TypeInteger, "Job to describe")},
			Returns: Shape{
				"job_id": {Kind: KindNumber, Required: true},
			},
			ReturnsDoc: "full job settings",
		},
		{
			Name: "update_job", Category: "jobs",
			Description: "Partially update a job definition",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/update",
			Params: ParamSchema{
				req("job_id", TypeInteger, "Job to update"),
				opt("new_settings", TypeObject, "Settings to merge into the job"),
				opt("fields_to_remove", TypeArray, "Top-level fields to remove"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "reset_job", Category: "jobs",
			Description: "Replace all settings of a job",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/reset",
			Params: ParamSchema{
				req("job_id", TypeInteger, "Job to reset"),
				req("new_settings", TypeObject, "Complete replacement settings"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_job", Category: "jobs",
			Description: "Delete a job definition",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/delete",
			Params:     ParamSchema{req("job_id", TypeInteger, "Job to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "run_job", Category: "jobs",
			Description: "Trigger a run of an existing job",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/run-now",
			Params: ParamSchema{
				req("job_id", TypeInteger, "Job to run"),
				opt("notebook_params", TypeObject, "Notebook parameter overrides"),
				opt("jar_params", TypeArray, "JAR task parameters"),
				opt("python_params", TypeArray, "Python task parameters"),
				opt("idempotency_token", TypeString, "Token guaranteeing at most one run"),
			},
			ReturnsDoc:  "object with run_id of the triggered run",
			LongRunning: true,
		},
		{
			Name: "submit_run", Category: "jobs",
			Description: "Submit a one-time run without creating a job",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/runs/submit",
			Params: ParamSchema{
				req("tasks", TypeArray, "Task definitions for the run"),
				opt("run_name", TypeString, "Display name for the run"),
				opt("timeout_seconds", TypeInteger, "Run timeout"),
				opt("idempotency_token", TypeString, "Token guaranteeing at most one run"),
			},
			ReturnsDoc:  "object with run_id of the submitted run",
			LongRunning: true,
		},
		{
			Name: "list_runs", Category: "jobs",
			Description: "List runs, newest first",
			Method:      http.MethodGet, Path: "/api/2.1/jobs/runs/list",
			Params: ParamSchema{
				opt("job_id", TypeInteger, "Filter to runs of one job"),
				opt("active_only", TypeBoolean, "Only active runs"),
				opt("completed_only", TypeBoolean, "Only completed runs"),
				opt("limit", TypeInteger, "Page size, at most 25"),
				opt("page_token", TypeString, "Opaque pagination token"),
			},
			Returns: Shape{
				"runs":     {Kind: KindArray, Default: []any{}},
				"has_more": {Kind: KindBoolean, Default: false},
			},
			ReturnsDoc: "object with a runs array and has_more flag",
		},
		{
			Name: "get_run", Category: "jobs",
			Description: "Get metadata and state of a run",
			Method:      http.MethodGet, Path: "/api/2.1/jobs/runs/get",
			Params: ParamSchema{req("run_id", TypeInteger, "Run to describe")},
			Returns: Shape{
				"run_id": {Kind: KindNumber, Required: true},
				"state":  {Kind: KindObject},
			},
			ReturnsDoc: "run metadata including lifecycle state",
		},
		{
			Name: "get_run_output", Category: "jobs",
			Description: "Get the output of a completed task run",
			Method:      http.MethodGet, Path: "/api/2.1/jobs/runs/get-output",
			Params:     ParamSchema{req("run_id", TypeInteger, "Run whose output to fetch")},
			ReturnsDoc: "task output and run metadata",
		},
		{
			Name: "cancel_run", Category: "jobs",
			Description: "Cancel an active run",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/runs/cancel",
			Params:     ParamSchema{req("run_id", TypeInteger, "Run to cancel")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_run", Category: "jobs",
			Description: "Delete a non-active run",
			Method:      http.MethodPost, Path: "/api/2.1/jobs/runs/delete",
			Params:     ParamSchema{req("run_id", TypeInteger, "Run to delete")},
			ReturnsDoc: "empty object on success",
		},

		// Workspace files and notebooks
		{
			Name: "list_workspace", Category: "workspace",
			Description: "List notebooks and folders under a workspace path",
			Method:      http.MethodGet, Path: "/api/2.0/workspace/list",
			Params:     ParamSchema{req("path", TypeString, "Absolute workspace path")},
			Returns:    listShape("objects"),
			ReturnsDoc: "object with an objects array, empty when the folder is empty",
		},
		{
			Name: "get_workspace_status", Category: "workspace",
			Description: "Get the status of a workspace object",
			Method:      http.MethodGet, Path: "/api/2.0/workspace/get-status",
			Params:     ParamSchema{req("path", TypeString, "Absolute workspace path")},
			ReturnsDoc: "object type, language and path details",
		},
		{
			Name: "import_workspace_object", Category: "workspace",
			Description: "Import a notebook or file into the workspace",
			Method:      http.MethodPost, Path: "/api/2.0/workspace/import",
			Params: ParamSchema{
				req("path", TypeString, "Destination workspace path"),
				req("content", TypeString, "Base64-encoded content"),
				opt("format", TypeString, "SOURCE, HTML, JUPYTER or DBC"),
				opt("language", TypeString, "SCALA, PYTHON, SQL or R"),
				opt("overwrite", TypeBoolean, "Overwrite an existing object"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "export_workspace_object", Category: "workspace",
			Description: "Export a notebook or file from the workspace",
			Method:      http.MethodGet, Path: "/api/2.0/workspace/export",
			Params: ParamSchema{
				req("path", TypeString, "Workspace path to export"),
				opt("format", TypeString, "SOURCE, HTML, JUPYTER or DBC"),
			},
			ReturnsDoc: "object with base64-encoded content",
		},
		{
			Name: "delete_workspace_object", Category: "workspace",
			Description: "Delete a workspace object",
			Method:      http.MethodPost, Path: "/api/2.0/workspace/delete",
			Params: ParamSchema{
				req("path", TypeString, "Workspace path to delete"),
				opt("recursive", TypeBoolean, "Delete folders recursively"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "mkdirs_workspace", Category: "workspace",
			Description: "Create a workspace folder and any missing parents",
			Method:      http.MethodPost, Path: "/api/2.0/workspace/mkdirs",
			Params:     ParamSchema{req("path", TypeString, "Folder path to create")},
			ReturnsDoc: "empty object on success",
		},

		// DBFS
		{
			Name: "list_dbfs_files", Category: "dbfs",
			Description: "List files under a DBFS path",
			Method:      http.MethodGet, Path: "/api/2.0/dbfs/list",
			Params:     ParamSchema{req("path", TypeString, "DBFS path to list")},
			Returns:    listShape("files"),
			ReturnsDoc: "object with a files array, empty when the directory is empty",
		},
		{
			Name: "read_dbfs_file", Category: "dbfs",
			Description: "Read a chunk of a DBFS file",
			Method:      http.MethodGet, Path: "/api/2.0/dbfs/read",
			Params: ParamSchema{
				req("path", TypeString, "DBFS file path"),
				opt("offset", TypeInteger, "Byte offset to read from"),
				opt("length", TypeInteger, "Number of bytes, at most 1MB"),
			},
			ReturnsDoc: "object with base64-encoded data and bytes_read",
		},
		{
			Name: "put_dbfs_file", Category: "dbfs",
			Description: "Write a small file to DBFS in one request",
			Method:      http.MethodPost, Path: "/api/2.0/dbfs/put",
			Params: ParamSchema{
				req("path", TypeString, "Destination DBFS path"),
				req("contents", TypeString, "Base64-encoded contents, at most 1MB"),
				opt("overwrite", TypeBoolean, "Overwrite an existing file"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "mkdirs_dbfs", Category: "dbfs",
			Description: "Create a DBFS directory and any missing parents",
			Method:      http.MethodPost, Path: "/api/2.0/dbfs/mkdirs",
			Params:     ParamSchema{req("path", TypeString, "Directory path to create")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_dbfs_file", Category: "dbfs",
			Description: "Delete a DBFS file or directory",
			Method:      http.MethodPost, Path: "/api/2.0/dbfs/delete",
			Params: ParamSchema{
				req("path", TypeString, "DBFS path to delete"),
				opt("recursive", TypeBoolean, "Delete directories recursively"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "move_dbfs_file", Category: "dbfs",
			Description: "Move or rename a DBFS file",
			Method:      http.MethodPost, Path: "/api/2.0/dbfs/move",
			Params: ParamSchema{
				req("source_path", TypeString, "Existing DBFS path"),
				req("destination_path", TypeString, "New DBFS path"),
			},
			ReturnsDoc: "empty object on success",
		},

		// SQL statement execution and warehouses
		{
			Name: "execute_sql", Category: "sql",
			Description: "Execute a SQL statement against a SQL warehouse",
			Method:      http.MethodPost, Path: "/api/2.0/sql/statements/execute",
			Params: ParamSchema{
				req("statement", TypeString, "SQL text to execute"),
				req("warehouse_id", TypeString, "SQL warehouse to run on"),
				opt("catalog", TypeString, "Default catalog for the statement"),
				opt("schema", TypeString, "Default schema for the statement"),
				opt("wait_timeout", TypeString, "Synchronous wait bound, e.g. 30s"),
			},
			Returns: Shape{
				"statement_id": {Kind: KindString},
				"status":       {Kind: KindObject},
			},
			ReturnsDoc:  "statement id, status and any inline result data",
			LongRunning: true,
		},
		{
			Name: "list_warehouses", Category: "sql",
			Description: "List SQL warehouses",
			Method:      http.MethodGet, Path: "/api/2.0/sql/warehouses",
			Returns:    listShape("warehouses"),
			ReturnsDoc: "object with a warehouses array, empty when none exist",
		},
		{
			Name: "get_warehouse", Category: "sql",
			Description: "Get a SQL warehouse",
			Method:      http.MethodGet, Path: "/api/2.0/sql/warehouses/{id}",
			Params:     ParamSchema{req("id", TypeString, "Warehouse to describe")},
			ReturnsDoc: "warehouse configuration and state",
		},
		{
			Name: "create_warehouse", Category: "sql",
			Description: "Create a SQL warehouse",
			Method:      http.MethodPost, Path: "/api/2.0/sql/warehouses",
			Params: ParamSchema{
				req("name", TypeString, "Warehouse name"),
				req("cluster_size", TypeString, "T-shirt size, e.g. 2X-Small"),
				opt("min_num_clusters", TypeInteger, "Autoscaling lower bound"),
				opt("max_num_clusters", TypeInteger, "Autoscaling upper bound"),
				opt("auto_stop_mins", TypeInteger, "Idle minutes before auto stop"),
				opt("enable_serverless_compute", TypeBoolean, "Use serverless compute"),
			},
			ReturnsDoc: "object with the new warehouse id",
		},
		{
			Name: "update_warehouse", Category: "sql",
			Description: "Edit a SQL warehouse",
			Method:      http.MethodPost, Path: "/api/2.0/sql/warehouses/{id}/edit",
			Params: ParamSchema{
				req("id", TypeString, "Warehouse to edit"),
				opt("name", TypeString, "New warehouse name"),
				opt("cluster_size", TypeString, "New t-shirt size"),
				opt("auto_stop_mins", TypeInteger, "Idle minutes before auto stop"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_warehouse", Category: "sql",
			Description: "Delete a SQL warehouse",
			Method:      http.MethodDelete, Path: "/api/2.0/sql/warehouses/{id}",
			Params:     ParamSchema{req("id", TypeString, "Warehouse to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "start_warehouse", Category: "sql",
			Description: "Start a stopped SQL warehouse",
			Method:      http.MethodPost, Path: "/api/2.0/sql/warehouses/{id}/start",
			Params:     ParamSchema{req("id", TypeString, "Warehouse to start")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "stop_warehouse", Category: "sql",
			Description: "Stop a running SQL warehouse",
			Method:      http.MethodPost, Path: "/api/2.0/sql/warehouses/{id}/stop",
			Params:     ParamSchema{req("id", TypeString, "Warehouse to stop")},
			ReturnsDoc: "empty object on success",
		},

		// SQL queries, alerts, dashboards, visualizations (preview API)
		{
			Name: "list_queries", Category: "sql-queries",
			Description: "List saved SQL queries",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/queries",
			Params: ParamSchema{
				opt("page_size", TypeInteger, "Page size"),
				opt("page", TypeInteger, "Page number, 1-based"),
			},
			Returns:    listShape("results"),
			ReturnsDoc: "object with a results array of saved queries",
		},
		{
			Name: "create_query", Category: "sql-queries",
			Description: "Create a saved SQL query",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/queries",
			Params: ParamSchema{
				req("name", TypeString, "Query name"),
				req("query", TypeString, "SQL text"),
				opt("description", TypeString, "Query description"),
				opt("data_source_id", TypeString, "Data source to run against"),
			},
			ReturnsDoc: "the created query object",
		},
		{
			Name: "get_query", Category: "sql-queries",
			Description: "Get a saved SQL query",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/queries/{query_id}",
			Params:     ParamSchema{req("query_id", TypeString, "Query to describe")},
			ReturnsDoc: "the query object",
		},
		{
			Name: "update_query", Category: "sql-queries",
			Description: "Update a saved SQL query",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/queries/{query_id}",
			Params: ParamSchema{
				req("query_id", TypeString, "Query to update"),
				opt("name", TypeString, "New query name"),
				opt("query", TypeString, "New SQL text"),
				opt("description", TypeString, "New description"),
			},
			ReturnsDoc: "the updated query object",
		},
		{
			Name: "delete_query", Category: "sql-queries",
			Description: "Move a saved SQL query to trash",
			Method:      http.MethodDelete, Path: "/api/2.0/preview/sql/queries/{query_id}",
			Params:     ParamSchema{req("query_id", TypeString, "Query to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "run_query", Category: "sql-queries",
			Description: "Execute a saved SQL query",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/queries/{query_id}/run",
			Params: ParamSchema{
				req("query_id", TypeString, "Query to run"),
				opt("parameters", TypeObject, "Query parameter values"),
			},
			ReturnsDoc:  "query result data",
			LongRunning: true,
		},
		{
			Name: "list_alerts", Category: "sql-alerts",
			Description: "List SQL alerts",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/alerts",
			ReturnsDoc: "array of alert objects",
		},
		{
			Name: "create_alert", Category: "sql-alerts",
			Description: "Create a SQL alert on a query",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/alerts",
			Params: ParamSchema{
				req("name", TypeString, "Alert name"),
				req("query_id", TypeString, "Query the alert watches"),
				req("options", TypeObject, "Trigger options {column, op, value}"),
				opt("rearm", TypeInteger, "Seconds before the alert can refire"),
			},
			ReturnsDoc: "the created alert object",
		},
		{
			Name: "get_alert", Category: "sql-alerts",
			Description: "Get a SQL alert",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/alerts/{alert_id}",
			Params:     ParamSchema{req("alert_id", TypeString, "Alert to describe")},
			ReturnsDoc: "the alert object",
		},
		{
			Name: "update_alert", Category: "sql-alerts",
			Description: "Update a SQL alert",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/alerts/{alert_id}",
			Params: ParamSchema{
				req("alert_id", TypeString, "Alert to update"),
				opt("name", TypeString, "New alert name"),
				opt("options", TypeObject, "New trigger options"),
				opt("rearm", TypeInteger, "New rearm interval in seconds"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_alert", Category: "sql-alerts",
			Description: "Delete a SQL alert",
			Method:      http.MethodDelete, Path: "/api/2.0/preview/sql/alerts/{alert_id}",
			Params:     ParamSchema{req("alert_id", TypeString, "Alert to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_dashboards", Category: "sql-dashboards",
			Description: "List SQL dashboards",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/dashboards",
			Params: ParamSchema{
				opt("page_size", TypeInteger, "Page size"),
				opt("page", TypeInteger, "Page number, 1-based"),
			},
			Returns:    listShape("results"),
			ReturnsDoc: "object with a results array of dashboards",
		},
		{
			Name: "create_dashboard", Category: "sql-dashboards",
			Description: "Create a SQL dashboard",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/dashboards",
			Params: ParamSchema{
				req("name", TypeString, "Dashboard name"),
				opt("tags", TypeArray, "Dashboard tags"),
			},
			ReturnsDoc: "the created dashboard object",
		},
		{
			Name: "get_dashboard", Category: "sql-dashboards",
			Description: "Get a SQL dashboard with its widgets",
			Method:      http.MethodGet, Path: "/api/2.0/preview/sql/dashboards/{dashboard_id}",
			Params:     ParamSchema{req("dashboard_id", TypeString, "Dashboard to describe")},
			ReturnsDoc: "the dashboard object including widgets",
		},
		{
			Name: "update_dashboard", Category: "sql-dashboards",
			Description: "Update a SQL dashboard",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/dashboards/{dashboard_id}",
			Params: ParamSchema{
				req("dashboard_id", TypeString, "Dashboard to update"),
				opt("name", TypeString, "New dashboard name"),
				opt("tags", TypeArray, "New dashboard tags"),
			},
			ReturnsDoc: "the updated dashboard object",
		},
		{
			Name: "delete_dashboard", Category: "sql-dashboards",
			Description: "Move a SQL dashboard to trash",
			Method:      http.MethodDelete, Path: "/api/2.0/preview/sql/dashboards/{dashboard_id}",
			Params:     ParamSchema{req("dashboard_id", TypeString, "Dashboard to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "create_visualization", Category: "sql-dashboards",
			Description: "Create a visualization on a saved query",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/visualizations",
			Params: ParamSchema{
				req("query_id", TypeString, "Query the visualization renders"),
				req("type", TypeString, "Visualization type, e.g. CHART or TABLE"),
				req("options", TypeObject, "Type-specific rendering options"),
				opt("name", TypeString, "Visualization name"),
			},
			ReturnsDoc: "the created visualization object",
		},
		{
			Name: "update_visualization", Category: "sql-dashboards",
			Description: "Update a visualization",
			Method:      http.MethodPost, Path: "/api/2.0/preview/sql/visualizations/{visualization_id}",
			Params: ParamSchema{
				req("visualization_id", TypeString, "Visualization to update"),
				opt("type", TypeString, "New visualization type"),
				opt("options", TypeObject, "New rendering options"),
				opt("name", TypeString, "New visualization name"),
			},
			ReturnsDoc: "the updated visualization object",
		},
		{
			Name: "delete_visualization", Category: "sql-dashboards",
			Description: "Delete a visualization",
			Method:      http.MethodDelete, Path: "/api/2.0/preview/sql/visualizations/{visualization_id}",
			Params:     ParamSchema{req("visualization_id", TypeString, "Visualization to delete")},
			ReturnsDoc: "empty object on success",
		},

		// Unity Catalog
		{
			Name: "list_catalogs", Category: "unity-catalog",
			Description: "List catalogs in the metastore",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/catalogs",
			Returns:    listShape("catalogs"),
			ReturnsDoc: "object with a catalogs array, empty when none exist",
		},
		{
			Name: "create_catalog", Category: "unity-catalog",
			Description: "Create a catalog",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/catalogs",
			Params: ParamSchema{
				req("name", TypeString, "Catalog name"),
				opt("comment", TypeString, "Catalog description"),
				opt("properties", TypeObject, "Catalog properties"),
			},
			ReturnsDoc: "the created catalog object",
		},
		{
			Name: "get_catalog", Category: "unity-catalog",
			Description: "Get a catalog",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/catalogs/{name}",
			Params:     ParamSchema{req("name", TypeString, "Catalog to describe")},
			ReturnsDoc: "the catalog object",
		},
		{
			Name: "update_catalog", Category: "unity-catalog",
			Description: "Update a catalog",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/catalogs/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Catalog to update"),
				opt("new_name", TypeString, "New catalog name"),
				opt("comment", TypeString, "New description"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated catalog object",
		},
		{
			Name: "delete_catalog", Category: "unity-catalog",
			Description: "Delete a catalog",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/catalogs/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Catalog to delete"),
				opt("force", TypeBoolean, "Delete even if not empty"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_schemas", Category: "unity-catalog",
			Description: "List schemas in a catalog",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/schemas",
			Params:     ParamSchema{req("catalog_name", TypeString, "Parent catalog")},
			Returns:    listShape("schemas"),
			ReturnsDoc: "object with a schemas array, empty when none exist",
		},
		{
			Name: "create_schema", Category: "unity-catalog",
			Description: "Create a schema in a catalog",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/schemas",
			Params: ParamSchema{
				req("name", TypeString, "Schema name"),
				req("catalog_name", TypeString, "Parent catalog"),
				opt("comment", TypeString, "Schema description"),
				opt("properties", TypeObject, "Schema properties"),
			},
			ReturnsDoc: "the created schema object",
		},
		{
			Name: "get_schema", Category: "unity-catalog",
			Description: "Get a schema by full name",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/schemas/{full_name}",
			Params:     ParamSchema{req("full_name", TypeString, "catalog.schema full name")},
			ReturnsDoc: "the schema object",
		},
		{
			Name: "update_schema", Category: "unity-catalog",
			Description: "Update a schema",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/schemas/{full_name}",
			Params: ParamSchema{
				req("full_name", TypeString, "catalog.schema full name"),
				opt("new_name", TypeString, "New schema name"),
				opt("comment", TypeString, "New description"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated schema object",
		},
		{
			Name: "delete_schema", Category: "unity-catalog",
			Description: "Delete a schema",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/schemas/{full_name}",
			Params:     ParamSchema{req("full_name", TypeString, "catalog.schema full name")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_tables", Category: "unity-catalog",
			Description: "List tables in a schema",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/tables",
			Params: ParamSchema{
				req("catalog_name", TypeString, "Parent catalog"),
				req("schema_name", TypeString, "Parent schema"),
				opt("max_results", TypeInteger, "Page size"),
				opt("page_token", TypeString, "Opaque pagination token"),
			},
			Returns:    listShape("tables"),
			ReturnsDoc: "object with a tables array, empty when none exist",
		},
		{
			Name: "get_table", Category: "unity-catalog",
			Description: "Get a table by full name",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/tables/{full_name}",
			Params:     ParamSchema{req("full_name", TypeString, "catalog.schema.table full name")},
			ReturnsDoc: "the table object including columns",
		},
		{
			Name: "list_volumes", Category: "unity-catalog",
			Description: "List volumes in a schema",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/volumes",
			Params: ParamSchema{
				req("catalog_name", TypeString, "Parent catalog"),
				req("schema_name", TypeString, "Parent schema"),
			},
			Returns:    listShape("volumes"),
			ReturnsDoc: "object with a volumes array, empty when none exist",
		},
		{
			Name: "create_volume", Category: "unity-catalog",
			Description: "Create a volume in a schema",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/volumes",
			Params: ParamSchema{
				req("name", TypeString, "Volume name"),
				req("catalog_name", TypeString, "Parent catalog"),
				req("schema_name", TypeString, "Parent schema"),
				req("volume_type", TypeString, "MANAGED or EXTERNAL"),
				opt("storage_location", TypeString, "Location for EXTERNAL volumes"),
				opt("comment", TypeString, "Volume description"),
			},
			ReturnsDoc: "the created volume object",
		},
		{
			Name: "update_volume", Category: "unity-catalog",
			Description: "Update a volume",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/volumes/{full_name}",
			Params: ParamSchema{
				req("full_name", TypeString, "catalog.schema.volume full name"),
				opt("new_name", TypeString, "New volume name"),
				opt("comment", TypeString, "New description"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated volume object",
		},
		{
			Name: "delete_volume", Category: "unity-catalog",
			Description: "Delete a volume",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/volumes/{full_name}",
			Params:     ParamSchema{req("full_name", TypeString, "catalog.schema.volume full name")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_external_locations", Category: "unity-catalog",
			Description: "List external locations",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/external-locations",
			Returns:    listShape("external_locations"),
			ReturnsDoc: "object with an external_locations array",
		},
		{
			Name: "create_external_location", Category: "unity-catalog",
			Description: "Create an external location",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/external-locations",
			Params: ParamSchema{
				req("name", TypeString, "External location name"),
				req("url", TypeString, "Cloud storage URL"),
				req("credential_name", TypeString, "Storage credential to use"),
				opt("comment", TypeString, "Location description"),
				opt("read_only", TypeBoolean, "Make the location read-only"),
			},
			ReturnsDoc: "the created external location object",
		},
		{
			Name: "get_external_location", Category: "unity-catalog",
			Description: "Get an external location",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/external-locations/{name}",
			Params:     ParamSchema{req("name", TypeString, "External location to describe")},
			ReturnsDoc: "the external location object",
		},
		{
			Name: "update_external_location", Category: "unity-catalog",
			Description: "Update an external location",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/external-locations/{name}",
			Params: ParamSchema{
				req("name", TypeString, "External location to update"),
				opt("new_name", TypeString, "New location name"),
				opt("url", TypeString, "New cloud storage URL"),
				opt("credential_name", TypeString, "New storage credential"),
				opt("comment", TypeString, "New description"),
				opt("read_only", TypeBoolean, "Make the location read-only"),
			},
			ReturnsDoc: "the updated external location object",
		},
		{
			Name: "delete_external_location", Category: "unity-catalog",
			Description: "Delete an external location",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/external-locations/{name}",
			Params:     ParamSchema{req("name", TypeString, "External location to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_storage_credentials", Category: "unity-catalog",
			Description: "List storage credentials",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/storage-credentials",
			Returns:    listShape("storage_credentials"),
			ReturnsDoc: "object with a storage_credentials array",
		},
		{
			Name: "create_storage_credential", Category: "unity-catalog",
			Description: "Create a storage credential",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/storage-credentials",
			Params: ParamSchema{
				req("name", TypeString, "Storage credential name"),
				opt("aws_iam_role", TypeObject, "AWS IAM role spec {role_arn}"),
				opt("azure_managed_identity", TypeObject, "Azure managed identity spec"),
				opt("comment", TypeString, "Credential description"),
				opt("read_only", TypeBoolean, "Make the credential read-only"),
			},
			ReturnsDoc: "the created storage credential object",
		},
		{
			Name: "get_storage_credential", Category: "unity-catalog",
			Description: "Get a storage credential",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/storage-credentials/{name}",
			Params:     ParamSchema{req("name", TypeString, "Storage credential to describe")},
			ReturnsDoc: "the storage credential object",
		},
		{
			Name: "update_storage_credential", Category: "unity-catalog",
			Description: "Update a storage credential",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/storage-credentials/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Storage credential to update"),
				opt("new_name", TypeString, "New credential name"),
				opt("aws_iam_role", TypeObject, "New AWS IAM role spec"),
				opt("comment", TypeString, "New description"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated storage credential object",
		},
		{
			Name: "delete_storage_credential", Category: "unity-catalog",
			Description: "Delete a storage credential",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/storage-credentials/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Storage credential to delete"),
				opt("force", TypeBoolean, "Delete even if locations depend on it"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_connections", Category: "unity-catalog",
			Description: "List Unity Catalog connections",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/connections",
			Returns:    listShape("connections"),
			ReturnsDoc: "object with a connections array",
		},
		{
			Name: "create_connection", Category: "unity-catalog",
			Description: "Create a Unity Catalog connection",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/connections",
			Params: ParamSchema{
				req("name", TypeString, "Connection name"),
				req("connection_type", TypeString, "Connection type, e.g. MYSQL or SNOWFLAKE"),
				req("options", TypeObject, "Type-specific connection options"),
				opt("comment", TypeString, "Connection description"),
				opt("read_only", TypeBoolean, "Make the connection read-only"),
			},
			ReturnsDoc: "the created connection object",
		},
		{
			Name: "update_connection", Category: "unity-catalog",
			Description: "Update a Unity Catalog connection",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/connections/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Connection to update"),
				opt("new_name", TypeString, "New connection name"),
				opt("options", TypeObject, "New connection options"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated connection object",
		},
		{
			Name: "delete_connection", Category: "unity-catalog",
			Description: "Delete a Unity Catalog connection",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/connections/{name}",
			Params:     ParamSchema{req("name", TypeString, "Connection to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_credentials", Category: "unity-catalog",
			Description: "List Unity Catalog service credentials",
			Method:      http.MethodGet, Path: "/api/2.1/unity-catalog/credentials",
			Returns:    listShape("credentials"),
			ReturnsDoc: "object with a credentials array",
		},
		{
			Name: "create_credential", Category: "unity-catalog",
			Description: "Create a Unity Catalog service credential",
			Method:      http.MethodPost, Path: "/api/2.1/unity-catalog/credentials",
			Params: ParamSchema{
				req("name", TypeString, "Credential name"),
				req("purpose", TypeString, "SERVICE or STORAGE"),
				opt("aws_iam_role", TypeObject, "AWS IAM role spec {role_arn}"),
				opt("comment", TypeString, "Credential description"),
			},
			ReturnsDoc: "the created credential object",
		},
		{
			Name: "update_credential", Category: "unity-catalog",
			Description: "Update a Unity Catalog service credential",
			Method:      http.MethodPatch, Path: "/api/2.1/unity-catalog/credentials/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Credential to update"),
				opt("new_name", TypeString, "New credential name"),
				opt("aws_iam_role", TypeObject, "New AWS IAM role spec"),
				opt("comment", TypeString, "New description"),
				opt("owner", TypeString, "New owner"),
			},
			ReturnsDoc: "the updated credential object",
		},
		{
			Name: "delete_credential", Category: "unity-catalog",
			Description: "Delete a Unity Catalog service credential",
			Method:      http.MethodDelete, Path: "/api/2.1/unity-catalog/credentials/{name}",
			Params: ParamSchema{
				req("name", TypeString, "Credential to delete"),
				opt("force", TypeBoolean, "Delete even if dependents exist"),
			},
			ReturnsDoc: "empty object on success",
		},

		// Command execution (API 1.2)
		{
			Name: "create_command_context", Category: "commands",
			Description: "Create an execution context on a cluster",
			Method:      http.MethodPost, Path: "/api/1.2/contexts/create",
			Params: ParamSchema{
				req("clusterId", TypeString, "Cluster to attach the context to"),
				req("language", TypeString, "python, scala or sql"),
			},
			ReturnsDoc: "object with the context id",
		},
		{
			Name: "execute_command", Category: "commands",
			Description: "Execute a command in an execution context",
			Method:      http.MethodPost, Path: "/api/1.2/commands/execute",
			Params: ParamSchema{
				req("clusterId", TypeString, "Cluster to run on"),
				req("contextId", TypeString, "Execution context id"),
				req("language", TypeString, "python, scala or sql"),
				req("command", TypeString, "Command source to execute"),
			},
			ReturnsDoc:  "object with the command id",
			LongRunning: true,
		},
		{
			Name: "get_command_status", Category: "commands",
			Description: "Get the status of a running command",
			Method:      http.MethodGet, Path: "/api/1.2/commands/status",
			Params: ParamSchema{
				req("clusterId", TypeString, "Cluster the command runs on"),
				req("contextId", TypeString, "Execution context id"),
				req("commandId", TypeString, "Command to check"),
			},
			ReturnsDoc: "command status and any results",
		},
		{
			Name: "cancel_command", Category: "commands",
			Description: "Cancel a running command",
			Method:      http.MethodPost, Path: "/api/1.2/commands/cancel",
			Params: ParamSchema{
				req("clusterId", TypeString, "Cluster the command runs on"),
				req("contextId", TypeString, "Execution context id"),
				req("commandId", TypeString, "Command to cancel"),
			},
			ReturnsDoc: "empty object on success",
		},

		// Libraries
		{
			Name: "install_libraries", Category: "libraries",
			Description: "Install libraries on a cluster",
			Method:      http.MethodPost, Path: "/api/2.0/libraries/install",
			Params: ParamSchema{
				req("cluster_id", TypeString, "Target cluster"),
				req("libraries", TypeArray, "Library specs (jar, whl, pypi, maven, cran)"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "uninstall_libraries", Category: "libraries",
			Description: "Mark libraries for removal on next cluster restart",
			Method:      http.MethodPost, Path: "/api/2.0/libraries/uninstall",
			Params: ParamSchema{
				req("cluster_id", TypeString, "Target cluster"),
				req("libraries", TypeArray, "Library specs to remove"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_library_statuses", Category: "libraries",
			Description: "Get library statuses for one cluster",
			Method:      http.MethodGet, Path: "/api/2.0/libraries/cluster-status",
			Params:     ParamSchema{req("cluster_id", TypeString, "Cluster to inspect")},
			Returns:    listShape("library_statuses"),
			ReturnsDoc: "object with a library_statuses array",
		},
		{
			Name: "list_all_library_statuses", Category: "libraries",
			Description: "Get library statuses across all clusters",
			Method:      http.MethodGet, Path: "/api/2.0/libraries/all-cluster-statuses",
			Returns:    listShape("statuses"),
			ReturnsDoc: "object with a statuses array",
		},

		// Delta Live Tables pipelines
		{
			Name: "list_pipelines", Category: "pipelines",
			Description: "List Delta Live Tables pipelines",
			Method:      http.MethodGet, Path: "/api/2.0/pipelines",
			Params: ParamSchema{
				opt("max_results", TypeInteger, "Page size"),
				opt("page_token", TypeString, "Opaque pagination token"),
			},
			Returns:    listShape("statuses"),
			ReturnsDoc: "object with a statuses array of pipeline states",
		},
		{
			Name: "create_pipeline", Category: "pipelines",
			Description: "Create a Delta Live Tables pipeline",
			Method:      http.MethodPost, Path: "/api/2.0/pipelines",
			Params: ParamSchema{
				req("name", TypeString, "Pipeline name"),
				req("libraries", TypeArray, "Notebook or file libraries defining the pipeline"),
				opt("storage", TypeString, "DBFS root for pipeline output"),
				opt("target", TypeString, "Target schema for published tables"),
				opt("continuous", TypeBoolean, "Run continuously instead of triggered"),
				opt("clusters", TypeArray, "Cluster specs for the pipeline"),
			},
			ReturnsDoc: "object with the new pipeline_id",
		},
		{
			Name: "get_pipeline", Category: "pipelines",
			Description: "Get a pipeline",
			Method:      http.MethodGet, Path: "/api/2.0/pipelines/{pipeline_id}",
			Params:     ParamSchema{req("pipeline_id", TypeString, "Pipeline to describe")},
			ReturnsDoc: "pipeline spec and latest state",
		},
		{
			Name: "update_pipeline", Category: "pipelines",
			Description: "Update a pipeline definition",
			Method:      http.MethodPatch, Path: "/api/2.0/pipelines/{pipeline_id}",
			Params: ParamSchema{
				req("pipeline_id", TypeString, "Pipeline to update"),
				opt("name", TypeString, "New pipeline name"),
				opt("libraries", TypeArray, "New library definitions"),
				opt("target", TypeString, "New target schema"),
				opt("continuous", TypeBoolean, "Run continuously instead of triggered"),
				opt("clusters", TypeArray, "New cluster specs"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_pipeline", Category: "pipelines",
			Description: "Delete a pipeline",
			Method:      http.MethodDelete, Path: "/api/2.0/pipelines/{pipeline_id}",
			Params:     ParamSchema{req("pipeline_id", TypeString, "Pipeline to delete")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "start_pipeline_update", Category: "pipelines",
			Description: "Start an update of a pipeline",
			Method:      http.MethodPost, Path: "/api/2.0/pipelines/{pipeline_id}/updates",
			Params: ParamSchema{
				req("pipeline_id", TypeString, "Pipeline to update"),
				opt("full_refresh", TypeBoolean, "Recompute all tables from scratch"),
			},
			ReturnsDoc:  "object with the update_id",
			LongRunning: true,
		},
		{
			Name: "get_pipeline_update", Category: "pipelines",
			Description: "Get one update of a pipeline",
			Method:      http.MethodGet, Path: "/api/2.0/pipelines/{pipeline_id}/updates/{update_id}",
			Params: ParamSchema{
				req("pipeline_id", TypeString, "Pipeline the update belongs to"),
				req("update_id", TypeString, "Update to describe"),
			},
			ReturnsDoc: "the update object including its state",
		},
		{
			Name: "list_pipeline_updates", Category: "pipelines",
			Description: "List recent updates of a pipeline",
			Method:      http.MethodGet, Path: "/api/2.0/pipelines/{pipeline_id}/updates",
			Params: ParamSchema{
				req("pipeline_id", TypeString, "Pipeline whose updates to list"),
				opt("max_results", TypeInteger, "Page size"),
			},
			Returns:    listShape("updates"),
			ReturnsDoc: "object with an updates array",
		},

		// IAM: service principals (SCIM) and secrets
		{
			Name: "list_service_principals", Category: "iam",
			Description: "List service principals",
			Method:      http.MethodGet, Path: "/api/2.0/preview/scim/v2/ServicePrincipals",
			Returns:    Shape{"Resources": {Kind: KindArray, Default: []any{}}},
			ReturnsDoc: "SCIM list response with a Resources array",
		},
		{
			Name: "create_service_principal", Category: "iam",
			Description: "Create a service principal",
			Method:      http.MethodPost, Path: "/api/2.0/preview/scim/v2/ServicePrincipals",
			Params: ParamSchema{
				req("displayName", TypeString, "Display name"),
				opt("entitlements", TypeArray, "Entitlement assignments"),
				opt("active", TypeBoolean, "Whether the principal is active"),
			},
			ReturnsDoc: "the created service principal",
		},
		{
			Name: "get_service_principal", Category: "iam",
			Description: "Get a service principal",
			Method:      http.MethodGet, Path: "/api/2.0/preview/scim/v2/ServicePrincipals/{id}",
			Params:     ParamSchema{req("id", TypeString, "Service principal id")},
			ReturnsDoc: "the service principal object",
		},
		{
			Name: "update_service_principal", Category: "iam",
			Description: "Update a service principal",
			Method:      http.MethodPatch, Path: "/api/2.0/preview/scim/v2/ServicePrincipals/{id}",
			Params: ParamSchema{
				req("id", TypeString, "Service principal id"),
				opt("displayName", TypeString, "New display name"),
				opt("entitlements", TypeArray, "New entitlement assignments"),
				opt("active", TypeBoolean, "Whether the principal is active"),
			},
			ReturnsDoc: "the updated service principal",
		},
		{
			Name: "delete_service_principal", Category: "iam",
			Description: "Delete a service principal",
			Method:      http.MethodDelete, Path: "/api/2.0/preview/scim/v2/ServicePrincipals/{id}",
			Params:     ParamSchema{req("id", TypeString, "Service principal id")},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "list_secret_scopes", Category: "iam",
			Description: "List secret scopes",
			Method:      http.MethodGet, Path: "/api/2.0/secrets/scopes/list",
			Returns:    listShape("scopes"),
			ReturnsDoc: "object with a scopes array",
		},
		{
			Name: "list_secrets", Category: "iam",
			Description: "List secret keys in a scope (values are never returned)",
			Method:      http.MethodGet, Path: "/api/2.0/secrets/list",
			Params:     ParamSchema{req("scope", TypeString, "Secret scope to list")},
			Returns:    listShape("secrets"),
			ReturnsDoc: "object with a secrets array of key metadata",
		},
		{
			Name: "put_secret", Category: "iam",
			Description: "Create or update a secret in a scope",
			Method:      http.MethodPost, Path: "/api/2.0/secrets/put",
			Params: ParamSchema{
				req("scope", TypeString, "Secret scope"),
				req("key", TypeString, "Secret key"),
				req("string_value", TypeString, "Secret value"),
			},
			ReturnsDoc: "empty object on success",
		},
		{
			Name: "delete_secret", Category: "iam",
			Description: "Delete a secret from a scope",
			Method:      http.MethodPost, Path: "/api/2.0/secrets/delete",
			Params: ParamSchema{
				req("scope", TypeString, "Secret scope"),
				req("key", TypeString, "Secret key"),
			},
			ReturnsDoc: "empty object on success",
		},

		// Lakeview dashboards
		{
			Name: "list_lakeview_dashboards", Category: "lakeview",
			Description: "List Lakeview dashboards",
			Method:      http.MethodGet, Path: "/api/2.0/lakeview/dashboards",
			Params: ParamSchema{
				opt("page_size", TypeInteger, "Page size"),
				opt("page_token", TypeString, "Opaque pagination token"),
			},
			Returns:    listShape("dashboards"),
			ReturnsDoc: "object with a dashboards array",
		},
		{
			Name: "get_lakeview_dashboard", Category: "lakeview",
			Description: "Get a Lakeview dashboard",
			Method:      http.MethodGet, Path: "/api/2.0/lakeview/dashboards/{dashboard_id}",
			Params:     ParamSchema{req("dashboard_id", TypeString, "Dashboard to describe")},
			ReturnsDoc: "the dashboard object including serialized layout",
		},
		{
			Name: "create_lakeview_dashboard", Category: "lakeview",
			Description: "Create a Lakeview dashboard",
			Method:      http.MethodPost, Path: "/api/2.0/lakeview/dashboards",
			Params: ParamSchema{
				req("display_name", TypeString, "Dashboard display name"),
				opt("serialized_dashboard", TypeString, "Serialized dashboard layout"),
				opt("parent_path", TypeString, "Workspace folder for the dashboard"),
				opt("warehouse_id", TypeString, "Default SQL warehouse"),
			},
			ReturnsDoc: "the created dashboard object",
		},
		{
			Name: "update_lakeview_dashboard", Category: "lakeview",
			Description: "Update a Lakeview dashboard",
			Method:      http.MethodPatch, Path: "/api/2.0/lakeview/dashboards/{dashboard_id}",
			Params: ParamSchema{
				req("dashboard_id", TypeString, "Dashboard to update"),
				opt("display_name", TypeString, "New display name"),
				opt("serialized_dashboard", TypeString, "New serialized layout"),
				opt("warehouse_id", TypeString, "New default SQL warehouse"),
			},
			ReturnsDoc: "the updated dashboard object",
		},
		{
			Name: "delete_lakeview_dashboard", Category: "lakeview",
			Description: "Move a Lakeview dashboard to trash",
			Method:      http.MethodDelete, Path: "/api/2.0/lakeview/dashboards/{dashboard_id}",
			Params:     ParamSchema{req("dashboard_id", TypeString, "Dashboard to delete")},
			ReturnsDoc: "empty object on success",
		},

		// Budgets
		{
			Name: "list_budgets", Category: "budgets",
			Description: "List account budgets",
			Method:      http.MethodGet, Path: "/api/2.0/budgets",
			Returns:    listShape("budgets"),
			ReturnsDoc: "object with a budgets array",
		},
		{
			Name: "get_budget", Category: "budgets",
			Description: "Get a budget",
			Method:      http.MethodGet, Path: "/api/2.0/budgets/{budget_id}",
			Params:     ParamSchema{req("budget_id", TypeString, "Budget to describe")},
			ReturnsDoc: "the budget object",
		},
		{
			Name: "create_budget", Category: "budgets",
			Description: "Create a budget",
			Method:      http.MethodPost, Path: "/api/2.0/budgets",
			Params: ParamSchema{
				req("name", TypeString, "Budget name"),
				req("target_amount", TypeString, "Budget amount as a decimal string"),
				req("period", TypeString, "Budget period, e.g. MONTH"),
				opt("filter", TypeObject, "Usage filter for the budget"),
				opt("alerts", TypeArray, "Alert thresholds"),
			},
			ReturnsDoc: "the created budget object",
		},
		{
			Name: "update_budget", Category: "budgets",
			Description: "Update a budget",
			Method:      http.MethodPatch, Path: "/api/2.0/budgets/{budget_id}",
			Params: ParamSchema{
				req("budget_id", TypeString, "Budget to update"),
				opt("name", TypeString, "New budget name"),
				opt("target_amount", TypeString, "New amount as a decimal string"),
				opt("period", TypeString, "New budget period"),
				opt("filter", TypeObject, "New usage filter"),
				opt("alerts", TypeArray, "New alert thresholds"),
			},
			ReturnsDoc: "the updated budget object",
		},
		{
			Name: "delete_budget", Category: "budgets",
			Description: "Delete a budget",
			Method:      http.MethodDelete, Path: "/api/2.0/budgets/{budget_id}",
			Params:     ParamSchema{req("budget_id", TypeString, "Budget to delete")},
			ReturnsDoc: "empty object on success",
		},
	}
}
