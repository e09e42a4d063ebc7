package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/wizreet/cocobakes/models"
)

// ResendClient sends transactional email via the Resend REST API.
type ResendClient struct {
	apiKey string
	from   string
	inbox  string // the bakery's own inbox for contact-form mail
}

// NewResendClient builds a client from the environment. Returns an error
// instead of aborting so the server can run without email configured — the
// contact form and order-copy email then answer 503.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@cocobakes.shop"
	}

	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		inbox = "hello@cocobakes.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from, inbox: inbox}, nil
}

// SendContactEmail forwards a storefront contact-form submission to the
// bakery inbox.
func (r *ResendClient) SendContactEmail(req models.ContactRequest) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.inbox,
		"subject": fmt.Sprintf("Contact form: %s", req.Name),
		"html":    r.buildContactHTML(req),
	}
	if req.Email != "" {
		payload["reply_to"] = req.Email
	}
	return r.send(payload)
}

// OrderCopyEmailData holds everything for the customer's order-copy email:
// the chat message as the body and the order slip PDF as an attachment.
type OrderCopyEmailData struct {
	ToEmail    string
	Message    string
	PDFContent []byte
}

// SendOrderCopyEmail mails the customer a copy of their configured order.
func (r *ResendClient) SendOrderCopyEmail(data OrderCopyEmailData) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.ToEmail,
		"subject": "Your CocoBakes order",
		"html":    r.buildOrderCopyHTML(data.Message),
	}
	if len(data.PDFContent) > 0 {
		payload["attachments"] = []map[string]interface{}{
			{
				"filename": "order-slip.pdf",
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		}
	}
	return r.send(payload)
}

func (r *ResendClient) send(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API returned %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	return nil
}

func (r *ResendClient) buildContactHTML(req models.ContactRequest) string {
	var html strings.Builder
	html.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">`)
	html.WriteString(`<h2 style="color: #3d2b1f;">New contact form message</h2>`)
	html.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Name:</strong> %s</p>`, req.Name))
	html.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Phone:</strong> %s</p>`, req.Phone))
	if req.Email != "" {
		html.WriteString(fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Email:</strong> %s</p>`, req.Email))
	}
	html.WriteString(`<hr style="border: none; border-top: 1px solid #e0d6cc; margin: 16px 0;">`)
	html.WriteString(fmt.Sprintf(`<p style="white-space: pre-wrap; color: #262622;">%s</p>`, req.Message))
	html.WriteString(`</div>`)
	return html.String()
}

func (r *ResendClient) buildOrderCopyHTML(message string) string {
	var html strings.Builder
	html.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">`)
	html.WriteString(`<h2 style="color: #3d2b1f;">Here is a copy of your order 🍫</h2>`)
	html.WriteString(fmt.Sprintf(`<p style="white-space: pre-wrap; color: #262622;">%s</p>`, message))
	html.WriteString(`<p style="color: #79776d; font-size: 13px;">Your order slip is attached as a PDF. Reply to this email or message us on WhatsApp to confirm delivery.</p>`)
	html.WriteString(`</div>`)
	return html.String()
}
