package response

type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Field   *string `json:"field,omitempty"`
	Data    any     `json:"data,omitempty"`
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Success: false,
			Message: &message,
		}
	}
	unknown := "Unknown Error"
	return &ErrorResponse{
		Success: false,
		Message: &unknown,
	}
}

// FieldError names the offending request field alongside the message.
func FieldError(msg string, field string) *ErrorResponse {
	resp := Error(msg)
	if field != "" {
		resp.Field = &field
	}
	return resp
}
