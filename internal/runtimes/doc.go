// internal/runtimes/doc.go
// Package runtimes resolves, validates, and normalizes the runtime image
// manifest for the Stemcell platform: which container image backs each
// language kind, which kind is the default of its family, how many pre-warmed
// containers to keep per kind, and which images may bypass the registry pull.
//
// The entry point is Resolve, which turns a raw JSON manifest document plus a
// Config of override rules into an immutable Runtimes aggregate:
//
//	rt, err := runtimes.Resolve(raw, runtimes.Config{
//	    DefaultImagePrefix: "fairforge",
//	    DefaultImageTag:    "stable",
//	})
//
// Resolution is a pure, synchronous transformation with no I/O. The returned
// aggregate is safe for concurrent read-only use; query misses (unknown kind,
// family without a default) are ordinary boolean-false results, while genuine
// invariant violations (two defaults in one family, a non-positive stem cell
// count) fail the Resolve call as a whole.
package runtimes
