// Package patterns holds the per-language, per-mode pattern registry for the
// legacy payment dialect. The registry is assembled once at init from static
// per-language tables and is read-only afterward; ordering within a
// (language, mode) set is preserved because downstream classification relies
// on seeing every hit in declaration order.
package patterns
