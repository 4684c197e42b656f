// Package installer resolves the dependency graph for a requested install
// set and copies the resolved items into the consumer project. It walks the
// registry depth-first with a batch-scoped session guarding against cycles,
// installs lib-module prerequisites before component prerequisites, applies
// the source transforms, and maintains the project config in memory for a
// single save at batch end. A dry run follows the identical walk but only
// accumulates a plan.
package installer
