package domain

// LLMResponse is the structured answer extracted from a backend reply.
// Explanation is always set; the other fields are empty when the model
// answered NONE or omitted them.
type LLMResponse struct {
	Explanation    string
	Command        string
	Warnings       string
	AdditionalInfo string
}

// HasCommand reports whether the model recommended a runnable command.
func (r LLMResponse) HasCommand() bool {
	return r.Command != ""
}
