package inquire

// Password creates a prompt that collects a line of text with masked echo.
// The default-value hint is rendered as "[hidden]" so a secret default
// never reaches the terminal, and the accepted answer is echoed masked.
func Password(q Question, opts ...Option) (*Prompt, error) {
	q.Type = TypePassword
	return New(q, opts...)
}
