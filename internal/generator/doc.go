// Package generator runs the document pipeline: analyze a project for
// tooling, render the requested guidance documents concurrently, and
// write each one atomically to the output directory.
package generator
