package model

// MeshMIMEType is the content type of the binary STL payload.
const MeshMIMEType = "application/sla"

// ErrorResponse is the structured failure payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// GeneratedModel is a successfully rendered mesh with its download name.
type GeneratedModel struct {
	Filename string
	Data     []byte
}
