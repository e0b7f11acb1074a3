// Package ads models the advertising platform collaborator: the mutate
// operation sum type, the response and partial-failure wire structures, and
// a Client interface with a REST implementation.
//
// Operations are expressed as a tagged union (one concrete struct per
// operation kind) rather than a single struct with optional sub-fields, so
// the batch assembler and reconciler can pattern-match on the variant.
//
// The Client is deliberately thin: one Mutate call per batch, partial
// failures enabled, no retries. Callers own batching and reconciliation
// (see core/bulk).
package ads
