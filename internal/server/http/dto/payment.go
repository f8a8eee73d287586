package dto

// PaymentRequest describes the payment payload. The whole body and the
// method field are both optional; a missing method falls back to the
// default payment method.
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ErrorResponse is the envelope carried by every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
