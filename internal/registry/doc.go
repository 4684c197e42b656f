// Package registry loads and validates the StackUI registry document: the
// static catalog of installable components and shared lib modules, their file
// mappings, and their declared dependencies. It also provides component name
// lookup with ranked suggestions and registry version comparison.
package registry
