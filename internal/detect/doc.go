// Package detect analyzes a project tree for DevOps and MLOps tooling.
//
// Detection is file-pattern based: each known tool has a set of
// indicator patterns (root-relative directories, globs matched anywhere
// in the tree, and exact root-relative files) with per-kind weights.
// Aggregate scores are bucketed into low/medium/high confidence.
//
// # Usage
//
//	analyzer := detect.NewAnalyzer("/path/to/project")
//	profile, err := analyzer.Analyze()
//	if d, ok := profile.Lookup("terraform"); ok {
//	    fmt.Println(d.DisplayName, d.Confidence)
//	}
//
// The resulting Profile maps tool keys to ToolDetection records carrying
// display name, confidence bucket, numeric score, up to five
// representative file paths, and curated recommendations. Absent keys
// mean "not detected" and are never an error.
//
// Analysis is a pure function of the tree contents: running it twice over
// an unchanged project yields an identical profile.
package detect
