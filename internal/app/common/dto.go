package common

type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Success bool        `json:"success" example:"true"`
} // @name SuccessResponse

type ErrorResponse struct {
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error" example:"Invalid request"`
	Code    string      `json:"code,omitempty" example:"VALIDATION_ERROR"`
	Success bool        `json:"success" example:"false"`
} // @name ErrorResponse

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Service  string `json:"service" example:"buscacliente"`
	Version  string `json:"version,omitempty" example:"1.0.0"`
	Database string `json:"database,omitempty" example:"healthy"`
} // @name HealthResponse

func NewSuccessResponse(data interface{}, message ...string) *SuccessResponse {
	response := &SuccessResponse{
		Success: true,
		Data:    data,
	}

	if len(message) > 0 {
		response.Message = message[0]
	}

	return response
}

func NewErrorResponse(message string, details ...interface{}) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error:   message,
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return response
}
