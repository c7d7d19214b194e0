package response

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success builds the envelope; at most one data value is used.
func Success(msg string, data ...any) *SuccessResponse {
	resp := &SuccessResponse{Success: true, Message: msg}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	return resp
}
