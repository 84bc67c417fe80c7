// Package panel implements the seven resource panels of the operator
// console: users, accounts, transactions, debit cards, mutual funds,
// deposits, and audit logs.
//
// All panels follow the same contract:
//
//   - Load fetches the panel's collection(s) fully and replaces local
//     state wholesale. There is no incremental merge and no optimistic
//     update; the server is the only source of truth.
//   - Every mutating operation re-runs Load after the server reports
//     success, and only then is the operation complete.
//   - A gateway failure aborts the operation before the reload, leaves
//     the prior collection untouched, posts exactly one error notice,
//     and returns the error.
//
// Panels depend on the narrow Session and Notifier interfaces so tests
// can inject stubs for both.
package panel
