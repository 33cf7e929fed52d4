// Package launchpad is the client-side accounting and synchronization
// layer for the zkCross token-offering platform.
//
// The platform runs on a sequenced rollup whose only notion of time is a
// monotonically increasing tick counter. This package interprets periodic
// snapshots of that rollup state: it resolves each offering's lifecycle
// phase from the global tick, computes every participant's fair token
// allocation and refund under proportional rationing, and keeps a local
// view consistent with the remote ledger through a polling [Controller].
//
// User-initiated writes (invest, withdraw) are sequenced through an
// [Orchestrator], which validates locally, submits a command to the
// rollup, and tracks the transaction lifecycle. The rollup remains the
// sole arbiter of acceptance; local state is never optimistically
// updated.
//
// All ledger arithmetic is exact. Amounts and token quantities are
// integer values carried on decimals; floating point appears only in
// display formatting, after the accounting values are settled.
//
// This package serves as the foundational logic for the `lp`
// command-line tool.
package launchpad
