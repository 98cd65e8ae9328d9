// Package packing implements a constrained 2D disc-packing engine driven by
// a steady-state generational genetic algorithm: a fixed multiset of circular
// "plants" is evolved into a placement inside a user-defined planar domain
// that minimizes boundary violations and pairwise overlap.
package packing
