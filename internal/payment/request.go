package payment

// CreateOrderRequest starts a Razorpay order for deployments that take
// online payment instead of manual UPI transfer.
type CreateOrderRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
	PassType       string `json:"passType" binding:"required"`
}

// CreateOrderResponse carries what the checkout widget needs.
type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// IntentResponse describes the manual UPI payment screen: deep link,
// QR image URL and the amount for the chosen pass.
type IntentResponse struct {
	Success   bool   `json:"success"`
	UPIID     string `json:"upiId"`
	PayeeName string `json:"payeeName"`
	Amount    int    `json:"amount"`
	UPILink   string `json:"upiLink"`
	QRCodeURL string `json:"qrCodeUrl"`
}
