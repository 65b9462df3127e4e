/*
Package process implements the three toy price processes.

Each process is an immutable value holding its parameters. UpProbability maps a
state to the chance of an upward move, and Next flips one Bernoulli coin with that
probability and folds the outcome into a freshly built state.

  - Level: logistic pull toward a fixed price level.
  - Momentum: bias toward reversing (or, with negative alpha, continuing) the previous move.
  - Frequency: Pólya-urn-like correction on the ratio of past up and down moves.
*/
package process
