// Package parser reads bibliography source text into the entry model.
//
// The parser is the boundary collaborator in front of the sorting and
// rendering core: it produces the tagged Entry stream those components
// consume and has no opinion on formatting. Recognized input:
//
//   - real entries  @type{key, name = value, ...}
//   - definitions   @string{...}, @preamble{...}, @comment{...}, kept as
//     raw source text for verbatim passthrough
//   - free text between entries, which is skipped
//
// Field values keep their source content byte for byte; braced values may
// nest braces and span lines. Errors carry the source line they were
// detected on.
package parser
