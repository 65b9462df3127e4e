/*
Package ports defines the interfaces that decouple the pricewalk core from its
implementations.

# Key Interfaces

  - Process: a Markov price process driven one transition at a time.
  - SimulationStore: persists generated simulations (e.g., in Memory or Redis).
*/
package ports
