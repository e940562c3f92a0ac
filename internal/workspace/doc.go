// Package workspace handles git integration for generated documents,
// keeping them out of git status via .git/info/exclude.
package workspace
