package dto

// ErrorResponse amplop error standar untuk semua endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse balasan sederhana untuk mutasi yang tidak mengembalikan data.
type StatusResponse struct {
	Ok bool `json:"ok"`
}
