// Package finder searches a directory tree for entries whose base name
// matches a regular expression.
//
// Traversal is depth first over an explicit stack rather than recursion.
// Excluded paths are compared by file identity, not by name, so "./build",
// "build/" and an absolute path to the same directory all prune the same
// subtree.
//
// Usage:
//
//	res, err := finder.Find(ctx, finder.Request{
//	    Where:    "src",
//	    Pattern:  `.*\.go`,
//	    Excludes: []string{"src/vendor"},
//	}, func(path string) {
//	    fmt.Println(path)
//	})
//
// Unreadable directories do not stop the search; they are collected in
// Result.Errors.
package finder
