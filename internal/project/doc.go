// Package project persists the per-project install state (stackui.json):
// which components and lib modules are installed, under which registry
// version, and how the project tree is laid out. The config file is the
// single durable source of truth between CLI invocations.
package project
