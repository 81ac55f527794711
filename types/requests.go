package types

// ContextUpdateRequest records an interaction with the context manager.
type ContextUpdateRequest struct {
	Context Context        `json:"context"`
	Data    map[string]any `json:"data,omitempty"`
}

type ContextUpdateResponse struct {
	Success      bool            `json:"success"`
	Context      EnrichedContext `json:"context,omitempty"`
	ErrorMessage string          `json:"error,omitempty"` // only set on failure
}
