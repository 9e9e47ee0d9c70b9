package finder

// FindError reports a search that could not start: an invalid pattern or a
// root that is not a directory.
type FindError struct {
	Reason string
}

func (e *FindError) Error() string {
	if e.Reason == "" {
		return "Not specified."
	}
	return e.Reason
}
