// Package transform rewrites copied component sources for their new home in
// the consumer project: registry-internal imports become project alias
// imports, relative imports are re-derived for the flattened target layout,
// and every file is stamped with an origin header. All transforms are pure
// text functions so they can be tested against literal fixtures.
package transform
