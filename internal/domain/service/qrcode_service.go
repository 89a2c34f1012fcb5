package service

// QRCodeService renders QR codes shown on the payment page
type QRCodeService interface {
	// PaymentQR encodes a payment redirect URL as a PNG image
	PaymentQR(redirectURL string) ([]byte, error)
}
