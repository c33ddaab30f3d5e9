package models

// Envelope is the uniform response body of the cadastro API
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessData builds a successful envelope carrying data
func SuccessData(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// SuccessMessage builds a successful envelope carrying a confirmation
func SuccessMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Failure builds a failed envelope
func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
