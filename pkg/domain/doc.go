/*
Package domain contains the core value types shared by the pricewalk packages.

It defines the immutable per-process state records, the trace table produced by
the generator, the simulation envelope persisted by stores, and the lifecycle
events emitted while traces are generated. This package is kept pure and free of
I/O, randomness or persistence.

# Key Entities

  - LevelState, MomentumState, FrequencyState: one snapshot of a process at a time step.
  - Move: the direction of the previous transition (none, up or down).
  - Table: a num_traces x (time_steps+1) matrix of projected prices.
  - Simulation: a generated Table plus the request and seed that produced it.
*/
package domain
