/*
Package pricewalk samples from simple distributions and simulates discrete-time
Markov price processes.

It separates three concerns: samplers that produce one random value per call
(pkg/sampler), processes that turn a state into the next one with a single
biased coin flip (pkg/process), and a trace generator that pulls states lazily
and collects independent runs into a table (pkg/trace). The Engine in this
package ties them together for the CLI, HTTP and MCP surfaces, and keeps the
generated tables in a pluggable store.

# Processes

  - level: mean reversion, p(up) = 1 / (1 + exp(-alpha * (level - price))).
  - momentum: reversal, p(up) = 0.5 * (1 - alpha * sign(previous move)).
  - frequency: urn-like correction, p(up) = 1 / (1 + (ups/downs)^alpha).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pricewalk"
		"github.com/aretw0/pricewalk/pkg/domain"
	)

	func main() {
		eng := pricewalk.New()

		seed := uint64(42)
		sim, err := eng.Simulate(context.Background(), domain.SimulationRequest{
			Process:    domain.ProcessLevel,
			StartPrice: 100,
			TimeSteps:  100,
			NumTraces:  1000,
			Params:     map[string]any{"level": 100, "alpha": 0.25},
			Seed:       &seed,
		})
		if err != nil {
			log.Fatal(err)
		}

		rows, cols := sim.Table.Shape()
		fmt.Println(rows, cols) // 1000 101
	}

Reproducibility: the same request with the same seed always produces the same
table, independently of WithParallelism.
*/
package pricewalk
