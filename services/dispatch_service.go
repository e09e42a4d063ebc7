package services

import (
	"net/url"
	"os"
)

// DispatchService builds the hand-off artifacts for the external messaging
// channel. It never touches the network — the customer's own WhatsApp client
// (or clipboard) carries the message, so dispatch is fire and forget with no
// retries or delivery confirmation.
type DispatchService struct {
	// WhatsAppPhone is the bakery's number in international format, digits
	// only (no leading +), as wa.me expects.
	WhatsAppPhone string
}

// NewDispatchService reads the channel configuration from the environment.
func NewDispatchService() *DispatchService {
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = "9779800000000"
	}
	return &DispatchService{WhatsAppPhone: phone}
}

// WhatsAppLink returns the deep link that opens a chat with the order message
// prefilled. ok is false for an empty message — the formatter already refused
// the order — and no link is produced.
func (d *DispatchService) WhatsAppLink(message string) (string, bool) {
	if message == "" {
		return "", false
	}
	return "https://wa.me/" + d.WhatsAppPhone + "?text=" + url.QueryEscape(message), true
}

// ClipboardPayload returns the plain-text message for the client to place on
// the system clipboard, plus an ok flag so the caller can show copy feedback.
func (d *DispatchService) ClipboardPayload(message string) (string, bool) {
	if message == "" {
		return "", false
	}
	return message, true
}
