// Package kmeans implements the clustering primitives for the step engine.
//
// The engine commits one iteration at a time, so Lloyd's loop is split into
// Seed, Assign, Update and MaxShift instead of a single train-to-convergence
// call.
package kmeans
