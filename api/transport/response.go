package transport

// Content is one typed content block of a wire response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform wire payload for every operation, success or failure.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// NewSuccess wraps a plain text payload in a success result.
func NewSuccess(text string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// NewError wraps a failure message, flagged as such.
func NewError(message string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: message}},
		IsError: true,
	}
}

// Text returns the first text block, which is the whole payload for every
// operation this service exposes.
func (r Result) Text() string {
	if len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}
