/*
Package monitoring collects Prometheus metrics for an interactive session.

The file manager has no network surface, so nothing is served over HTTP.
Metrics live on a private registry and are optionally written once, at
shutdown, in the Prometheus text format (the node_exporter textfile
collector convention).

# Metrics

  - filemanager_commands_total{verb,outcome}
  - filemanager_command_duration_seconds{verb}
  - filemanager_tasks_in_flight
  - filemanager_tasks_total{verb,outcome}
  - filemanager_task_bytes_total{verb}
  - filemanager_uptime_seconds

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RecordCommand("ls", "success", time.Millisecond)
	_ = metrics.WriteTextfile("/var/lib/node_exporter/filemanager.prom")
*/
package monitoring
