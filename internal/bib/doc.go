// Package bib defines the bibliography entry model shared by the parser,
// sorter, and renderer.
//
// This package contains type definitions only. All other internal packages
// import bib; bib imports nothing internal. This keeps the entry model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Entry and FieldValue are sealed sum types - every consumption site
//     must type-switch over the closed set of variants, with a defined
//     behavior for the zero/unknown case
//   - Field content is never mutated by consumers; the only sanctioned
//     mutation is the renderer's in-place reorder of a RealEntry's Fields
//     slice when field sorting is enabled
package bib
