// Package formattedtext defines the canonical representation for style-tagged
// text consumed by the rendering pipeline, plus the normalization that folds
// heterogeneous inputs into it. Accepted inputs are plain strings, fragment
// lists (typed or freshly decoded from JSON/YAML payloads), values exposing
// the Provider capability, and zero-argument producers for lazily built text.
// ToFormattedText resolves them in a fixed order and always yields a
// FormattedText value; Template and Merge build deferred producers on top of
// it. The package performs no rendering and no style resolution: style
// strings are opaque identifiers that downstream renderers interpret.
package formattedtext
