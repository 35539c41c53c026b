// Package metrics records calculator session activity.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics never require nil checks at call sites. The
// Prometheus implementation is activated by the CLI when a metrics listen
// address is configured.
package metrics
