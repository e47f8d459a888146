/*
Package domain contains the core value model shared by every transducer.

It defines the data that flows through machines and the small amount of
arithmetic needed to let the "not yet known" sentinel travel through a graph
during feedback probing. This package is kept pure and free of external
dependencies.

# Key Entities

  - Value: a checked tagged union (Undefined, Scalar or Pair). States, inputs and
    outputs are all Values.
  - Undefined: the sentinel standing in for a value that has not been computed yet.
  - SplitValue, SafeAdd, SafeMul: helpers that propagate Undefined instead of failing.
  - LifecycleHooks: callbacks fired by a runner for observability.
*/
package domain
