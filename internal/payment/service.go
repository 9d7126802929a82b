package payment

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/internal/events"
)

var txnIDPattern = regexp.MustCompile(`^\d{12}$`)

// Proof-of-payment validation errors, surfaced verbatim to the user.
var (
	ErrProofMissing   = errors.New("transaction ID is required")
	ErrProofMalformed = errors.New("transaction ID must be exactly 12 digits")
)

// ValidateTransactionID checks the UPI transaction reference the
// participant copies from their payment app.
func ValidateTransactionID(id string) error {
	if id == "" {
		return ErrProofMissing
	}
	if !txnIDPattern.MatchString(id) {
		return ErrProofMalformed
	}
	return nil
}

// UPILink builds the upi://pay deep link encoded into the QR code.
func UPILink(upiID, payeeName string, amount int, note string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR&tn=%s",
		upiID,
		url.QueryEscape(payeeName),
		amount,
		url.QueryEscape(note),
	)
}

// QRCodeURL returns a third-party rendering of the deep link as a QR
// image, same service the website embeds.
func QRCodeURL(upiLink string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=" + url.QueryEscape(upiLink)
}

type Service struct {
	client *razorpay.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) *Service {
	var client *razorpay.Client
	if cfg.RazorpayConfigured() {
		client = razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	}
	return &Service{client: client, cfg: cfg}
}

// Intent describes the manual UPI payment screen for a pass type.
func (s *Service) Intent(passID, registrationID string) (*IntentResponse, error) {
	pass := events.FindPass(passID)
	if pass == nil {
		return nil, fmt.Errorf("unknown pass type: %s", passID)
	}
	note := fmt.Sprintf("Technovate2026-%s", registrationID)
	link := UPILink(s.cfg.UPIID, s.cfg.UPIPayeeName, pass.Price, note)
	return &IntentResponse{
		Success:   true,
		UPIID:     s.cfg.UPIID,
		PayeeName: s.cfg.UPIPayeeName,
		Amount:    pass.Price,
		UPILink:   link,
		QRCodeURL: QRCodeURL(link),
	}, nil
}

// CreateOrder initializes a Razorpay order for the selected pass.
func (s *Service) CreateOrder(req CreateOrderRequest) (*CreateOrderResponse, error) {
	if s.client == nil {
		return nil, errors.New("razorpay keys not configured")
	}
	pass := events.FindPass(req.PassType)
	if pass == nil {
		return nil, fmt.Errorf("unknown pass type: %s", req.PassType)
	}

	amountInPaise := pass.Price * 100
	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"registration_id": req.RegistrationID,
			"pass_type":       pass.ID,
		},
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	return &CreateOrderResponse{
		Success:  true,
		OrderID:  orderID,
		Amount:   amountInPaise,
		Currency: "INR",
		KeyID:    s.cfg.RazorpayKey,
	}, nil
}
