// Package repository is the Entity Store Gateway for Cadastro records.
//
// Two implementations share the same contract:
//   - PostgresCadastroRepository persists to the cadastros table via pgx and
//     uses the xmin system column as the optimistic concurrency token.
//   - MemoryCadastroRepository keeps records in process, for local runs and
//     tests.
//
// Both return only the error kinds of package models: ErrNotFound,
// ErrConflict, ErrConcurrency and *StoreError for anything else.
package repository
