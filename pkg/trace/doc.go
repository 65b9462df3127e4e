/*
Package trace drives processes through time.

Simulate wraps a process and a start state into a pull-based Stream: nothing is
computed until Next is called, the stream never ends on its own, and it cannot be
rewound. Truncation is the consumer's job (Take, or PriceTraces, which collects
time_steps+1 projected values per independent row into a domain.Table).

Reproducibility comes from seeds rather than the global generator: row i of a
table always draws from sampler.NewRowSource(seed, i), so a table depends only
on its seed and not on how many rows are generated concurrently.
*/
package trace
