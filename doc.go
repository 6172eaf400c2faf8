// Package fleetbook provides the types and functions for keeping the books
// of a small vehicle-rental office. It is designed to be local-first and
// auditable: every store is a plain JSON document on disk, loaded and saved
// explicitly by the operation that uses it.
//
// The core functionalities include:
//   - Income Book: cash income records per vehicle, with month-scoped
//     filtering and per-vehicle / per-category aggregation.
//   - Fine Register: traffic-fine records with paid/unpaid tracking,
//     independent from the income book.
//   - Users and Sessions: role-gated access where every privileged
//     operation receives the session explicitly.
//   - Reconciliation: import of externally produced documents under a
//     replace or merge policy, with field normalization, id collision
//     re-keying and best-effort foreign-key recovery.
//   - Cloud Backup: upload/download of whole documents to an opaque blob
//     store.
//
// This package serves as the foundational logic for the `fbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fleetbook
