// Package notification defines the value produced by a failed domain
// assertion and the sinks that receive it.
//
// A Notification is an immutable (code, message) pair. The code is a fixed
// machine readable identifier of the rule that failed, the message is the
// human readable text supplied by the caller of the assertion.
//
// Sinks decide what happens to a notification once it is raised:
//
//   - Collector keeps them in memory, typically for a request or a test.
//   - LogSink writes them as structured slog records.
//   - Bus fans them out to in-process subscribers.
//   - MultiSink delivers to several sinks at once.
//   - SinkFunc adapts a plain function.
//
// The redisbus package provides a sink that publishes notifications to a
// Redis channel.
package notification
