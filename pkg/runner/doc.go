/*
Package runner drives a machine through a run.

A machine is a pure description: a start state plus a transition function. The
Runner is the session object that owns the "current state" of one run, so the
same machine can be shared by many runners and restarted at will.

# Key Components

  - Runner: Start, Step, Transduce and Run over a single machine.
  - Handler: receives every step result (TextHandler, JSONHandler).
  - Interceptor: filters events before they reach a Handler (SkipUndefined, Every).
  - SignalManager: cancels the runner's context on SIGINT/SIGTERM.
  - ParseInput: sanitizes and parses textual inputs.
  - Transduce / Run: one-shot helpers that use a throwaway Runner.

# Usage

	r := runner.New(fib,
		runner.WithLogger(logger),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)

	outputs, err := r.Run(10)
	if err != nil {
		log.Fatal(err)
	}

A Runner is not safe for concurrent use. Machines are, since they hold no
run-time state.
*/
package runner
