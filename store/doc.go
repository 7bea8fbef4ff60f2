// Package store provides the state cell behind a quex store.
//
// A Cell holds one value of an application-defined type together with an
// ordered list of listeners. It knows nothing about usecases or tasks: it
// only stores, merges and publishes.
//
// Core features include:
//   - Generic, threadsafe state holder guarded by a go-deadlock RWMutex
//   - Pluggable Updater; the default Merge assigns every key of a map patch
//     and overrides the non-zero fields of a struct patch
//   - Ordered listeners with idempotent unsubscribe closures
//   - Panic isolation between listeners during Publish
//   - Deep snapshots of the state
//   - JSON Schema of the state type
//
// Set never notifies and Publish never writes; the caller decides when
// listeners see a change.
package store
