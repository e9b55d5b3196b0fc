// Package pipeline sequences the change-detection stages over a pair of
// image files: load, resize to matching dimensions, detect, classify,
// annotate.
//
// Each Process call is fully synchronous and self-contained: every stage
// runs to completion before the next starts, no entity outlives the call,
// and nothing is cached between calls. Independent Process calls may run
// concurrently from separate goroutines.
package pipeline
