// Package pagination derives the visible product window from a filtered
// list and the visitor's page, size and category.
//
// State is a value: the With methods return a new State, resetting the page
// to 1 when the filter or size changes. The state is stored per visitor so
// a language switch can re-render exactly the same grid.
package pagination
