package linking

// LinkError carries both a log-safe message and the URL the browser should be
// sent to. Callback failures always end in a redirect, never a bare 500, so
// the user lands somewhere with context.
type LinkError struct {
	RedirectURL string
	Message     string
}

func (e *LinkError) Error() string {
	return e.Message
}
