// Package bulk implements the operation-batching and partial-failure
// reconciliation protocol at the heart of the uploader.
//
// A batch-processing invocation owns four pieces of state, all discarded
// after reconciliation:
//
//  1. Allocator: issues unique negative temporary ids per entity kind, so
//     operations inside one batch can forward-reference entities that do not
//     exist yet (budget -> campaign -> asset group -> asset -> link).
//
//  2. RowMapping: maps every resource name that can independently fail back
//     to the originating sheet row(s), so each per-operation error lands in
//     the right error-message cell.
//
//  3. ResultSet: per-row UPLOADED/ERROR outcome, pre-initialized neutral and
//     written by the reconciler after the batch returns.
//
//  4. Order: the named ordering invariant for new-asset-group batches. The
//     remote platform validates an asset group's minimum-asset requirement as
//     later operations in the same batch reference it, so the group create
//     and its headline and description assets must lead the batch. This is a
//     correctness requirement of the remote API, not a stylistic choice.
//
// Reconcile walks a batch response in submission order and demultiplexes
// partial failures onto rows; a whole-call transport failure fans the error
// out to every row the batch touched.
package bulk
