package dectable

// Renderer is the interface implemented by backends that turn an expression
// tree into text in one target notation. Renderers are total over valid
// trees and pure: they never mutate the tree and never fail partway.
type Renderer interface {
	// Render returns the expression in the backend's notation.
	Render(e Expression) string

	// Name returns a short name for the notation.
	Name() string

	// Description returns a one-line description of the output format.
	Description() string
}
