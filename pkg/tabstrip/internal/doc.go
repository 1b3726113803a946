// Package internal holds the SDL side of the tab strip: window and renderer
// setup, fonts, theme colors, texture caching and input translation.
// Types and functions in this package are not part of the public API.
package internal
