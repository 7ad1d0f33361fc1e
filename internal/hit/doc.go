// Package hit answers which retained nodes lie under a point and which
// nodes an event travels through.
package hit
