package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportResponse resultado de una importación CSV.
type ImportResponse struct {
	Imported int `json:"imported"`
}
