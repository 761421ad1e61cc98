// Package stepseries shapes event-indexed timeseries that follow step/hold
// semantics: each value holds from its timestamp until the next event.
//
// The package provides two transformations used to prepare series for
// comparison and alignment. ResolveDuplicates makes a sorted time index
// strictly increasing by nudging duplicate timestamps forward by tiny
// deltas. Squash crops a series to a window, synthesizing boundary points so
// the held value survives at both edges. Both return fresh series and never
// mutate their input.
package stepseries
