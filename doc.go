// Package ipc keeps the books of a turn-based strategy game: the income points
// (IPC) balance, the purchases pending for the current turn, and the commit
// that pays for them when the turn advances.
//
// The core functionalities include:
//   - Catalog: the closed set of purchasable units with their fixed cost and
//     display names.
//   - Game State: the balance and pending purchases, with pure
//     transformations to buy, drop and pay for units.
//   - Ledger: the operations run by the `aat` command-line tool. Each loads
//     the state, applies one transformation, prints its effects and saves the
//     result.
//   - Data Persistence: a Store port with a JSON file implementation and an
//     in-memory one for tests.
//
// There is a single game at a time and no locking: two processes working on
// the same state file race and the last one to save wins.
package ipc
