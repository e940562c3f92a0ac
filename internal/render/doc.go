// Package render turns detection profiles into Markdown guidance
// documents.
//
// # Documents
//
// The catalog holds the built-in documents (devops, mlops), embedded via
// go:embed, plus any user templates found in a templates directory
// (<name>.md.tmpl with an optional <name>.yaml metadata sidecar).
//
// # Rendering contract
//
// Document templates reference tools by key through {{ with .Tool "key" }}
// blocks. The contract, enforced by the shared macros in
// templates/macros.md.tmpl:
//
//   - A tool absent from the profile is skipped silently: no heading,
//     no placeholder.
//   - Confidence renders capitalized; a nil score omits the score line
//     entirely (never "N/A").
//   - Scores always carry exactly one decimal place.
//   - An empty file list renders the placeholder
//     "(no representative files captured yet)" instead of an empty
//     fenced block.
//   - Empty recommendations fall back to the per-tool defaults baked
//     into each template, rendered verbatim in order.
//
// Rendering is a pure function of its inputs; identical inputs produce
// byte-identical Markdown. A template error fails only the document
// being rendered.
package render
