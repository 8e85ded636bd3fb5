package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Hashimp6/broperty/internal/config"
)

// APIError is a non-2xx answer from the Graph API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api: status %d: %s", e.Status, e.Body)
}

// Client sends messages through the WhatsApp Cloud API.
type Client struct {
	http     *http.Client
	endpoint string
	token    string
}

// NewClient builds a client whose requests are traced with otelhttp.
func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: strings.TrimRight(cfg.APIBase, "/") + "/" + cfg.PhoneNumberID + "/messages",
		token:    cfg.AccessToken,
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type readReceipt struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// SendText sends a plain text message with link previews enabled.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	msg := textMessage{MessagingProduct: "whatsapp", RecipientType: "individual", To: to, Type: TypeText}
	msg.Text.PreviewURL = true
	msg.Text.Body = body
	return c.post(ctx, msg)
}

// MarkRead marks an inbound message as read.
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	return c.post(ctx, readReceipt{MessagingProduct: "whatsapp", Status: "read", MessageID: messageID})
}

func (c *Client) post(ctx context.Context, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
