package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimited verifica se o erro é de limite de requisições da API
func (e *ErrorResponse) IsRateLimited() bool {
	// Códigos 4, 17 e 32 representam limites de chamada nas respostas do Meta
	return e.Error.Code == 4 || e.Error.Code == 17 || e.Error.Code == 32
}
