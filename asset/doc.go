// Package asset generates the ASCII art drawn by the page renderers
// Generators are pure: they take game values and return lines, never touching state
package asset
