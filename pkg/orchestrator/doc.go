// Package orchestrator wires schema loading, parsing, theming, and rendering
// into a single entry point. Callers supply a Source (or a pre-loaded
// Document) plus a renderer name and receive the rendered output bytes.
package orchestrator
