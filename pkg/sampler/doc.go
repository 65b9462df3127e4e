/*
Package sampler defines the generic sampling capability used across pricewalk.

A Sampler produces one independent random value of a fixed type per call. Bulk
sampling (SampleN) is written once against the interface, so any new
distribution gets it for free. Concrete samplers hold an explicit rand.Source so
that runs are reproducible; a nil source falls back to the process-wide generator.
*/
package sampler
