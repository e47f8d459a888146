/*
Package observability provides Prometheus instrumentation for transducer runs.

Metrics are fed by runner lifecycle hooks, so any Runner can be instrumented
without changing the machines it drives:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	r := runner.New(fib, runner.WithLifecycleHooks(m.Hooks()))
*/
package observability
