package types

// Error codes of the REST API
const (
	CodeBadRequest   = "PANEL_400"
	CodeNotFound     = "PANEL_404"
	CodeNotSimulated = "SIM_409"
	CodeInternal     = "SERVER_500"
	CodeUnavailable  = "SERVER_503"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds a consistent API error payload.
// details can be string, map, struct, etc.
func NewErrorResponse(code, message string, details any) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
