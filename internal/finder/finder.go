package finder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"regexp/syntax"
)

const (
	// DefaultWhere is the search root used when Request.Where is empty.
	DefaultWhere = "."
	// DefaultPattern matches every name.
	DefaultPattern = ".*"
)

// Request describes a search.
type Request struct {
	// Where is the directory to start from.
	Where string
	// Pattern is a regular expression that must match the whole base name.
	Pattern string
	// Excludes lists paths pruned from the traversal together with their subtrees.
	Excludes []string
}

// Result summarizes a finished (or cancelled) search.
type Result struct {
	// Visited counts entries popped from the traversal stack and not excluded.
	Visited int
	// Matched counts entries passed to the visit callback.
	Matched int
	// Pruned counts entries skipped because they matched an exclude.
	Pruned int
	// MissingExcludes lists exclude paths that could not be resolved. They
	// never match anything.
	MissingExcludes []string
	// Errors holds non-fatal errors, such as unreadable directories.
	Errors []error
}

// entry is a pending traversal item.
type entry struct {
	path  string
	isDir bool
}

// exclusion is a resolved exclude path.
type exclusion struct {
	info os.FileInfo
}

// Compile compiles pattern so that it has to match an entire name.
// Invalid patterns are reported as *FindError.
func Compile(pattern string) (*regexp.Regexp, error) {
	parsed, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &FindError{Reason: fmt.Sprintf("regex_error in %s: %v", pattern, err)}
	}

	// Anchor the parsed form; the raw text may end inside a \Q quote.
	re, err := regexp.Compile(`^(?:` + parsed.String() + `)$`)
	if err != nil {
		return nil, &FindError{Reason: fmt.Sprintf("regex_error in %s: %v", pattern, err)}
	}
	return re, nil
}

// withDefaults fills empty fields with DefaultWhere and DefaultPattern.
func (r Request) withDefaults() Request {
	if r.Where == "" {
		r.Where = DefaultWhere
	}
	if r.Pattern == "" {
		r.Pattern = DefaultPattern
	}
	return r
}

// Validate checks that the pattern compiles and the root is a directory,
// returning the same *FindError that Find would.
func (r Request) Validate() error {
	_, err := r.withDefaults().prepare()
	return err
}

func (r Request) prepare() (*regexp.Regexp, error) {
	re, err := Compile(r.Pattern)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(r.Where)
	if err != nil || !info.IsDir() {
		return nil, &FindError{Reason: r.Where + " not a directory."}
	}
	return re, nil
}

// Find walks the tree rooted at req.Where and calls visit with the path of
// every entry whose base name matches req.Pattern. Directories are entered in
// lexical order. Symbolic links are reported but never followed.
//
// A *FindError is returned when the pattern is invalid or the root is not a
// directory. If ctx is cancelled the partial result is returned with ctx.Err().
func Find(ctx context.Context, req Request, visit func(path string)) (*Result, error) {
	req = req.withDefaults()

	re, err := req.prepare()
	if err != nil {
		return nil, err
	}

	result := &Result{
		MissingExcludes: make([]string, 0),
		Errors:          make([]error, 0),
	}

	excludes := resolveExcludes(req.Excludes, result)

	stack := []entry{{path: req.Where, isDir: true}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isExcluded(current.path, excludes) {
			result.Pruned++
			continue
		}
		result.Visited++

		if re.MatchString(filepath.Base(current.path)) {
			result.Matched++
			if visit != nil {
				visit(current.path)
			}
		}

		if !current.isDir {
			continue
		}

		children, err := os.ReadDir(current.path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to read directory %s: %w", current.path, err))
			continue
		}

		// ReadDir sorts by name; push in reverse so the smallest pops first.
		for k := len(children) - 1; k >= 0; k-- {
			child := children[k]
			stack = append(stack, entry{
				path:  filepath.Join(current.path, child.Name()),
				isDir: child.IsDir(),
			})
		}
	}

	return result, nil
}

// resolveExcludes stats every exclude path. Paths that cannot be resolved are
// recorded in result.MissingExcludes.
func resolveExcludes(paths []string, result *Result) []exclusion {
	excludes := make([]exclusion, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			result.MissingExcludes = append(result.MissingExcludes, p)
			continue
		}
		excludes = append(excludes, exclusion{info: info})
	}
	return excludes
}

// isExcluded reports whether path refers to the same file as any exclusion.
func isExcluded(path string, excludes []exclusion) bool {
	if len(excludes) == 0 {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		// Dangling symlinks and vanished entries cannot be equivalent to anything.
		return false
	}

	for _, ex := range excludes {
		if os.SameFile(info, ex.info) {
			return true
		}
	}
	return false
}
