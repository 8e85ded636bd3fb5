package whatsapp

import (
	"crypto/subtle"
)

// ObjectBusinessAccount is the object of every webhook the Cloud API delivers for messages.
const ObjectBusinessAccount = "whatsapp_business_account"

// Message types handled by the bot.
const (
	TypeText        = "text"
	TypeInteractive = "interactive"
)

// Webhook is the notification body posted by Meta.
type Webhook struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
}

type Contact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// Message is one inbound message. Text or Interactive is set according to Type.
type Message struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	Timestamp   string       `json:"timestamp"`
	Type        string       `json:"type"`
	Text        *Text        `json:"text,omitempty"`
	Interactive *Interactive `json:"interactive,omitempty"`
}

type Text struct {
	Body string `json:"body"`
}

type Interactive struct {
	Type        string `json:"type"`
	ButtonReply *Reply `json:"button_reply,omitempty"`
	ListReply   *Reply `json:"list_reply,omitempty"`
}

type Reply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Messages flattens every message of the notification in delivery order.
func (w *Webhook) Messages() []Message {
	var out []Message
	for _, e := range w.Entry {
		for _, c := range e.Changes {
			out = append(out, c.Value.Messages...)
		}
	}
	return out
}

// ReplyID returns the ID of the chosen button or list row, if any.
func (m *Message) ReplyID() string {
	if m.Interactive == nil {
		return ""
	}
	if m.Interactive.ButtonReply != nil {
		return m.Interactive.ButtonReply.ID
	}
	if m.Interactive.ListReply != nil {
		return m.Interactive.ListReply.ID
	}
	return ""
}

// Verify answers the subscription handshake. It returns the challenge to echo
// and whether the request carried the expected token.
func Verify(mode, token, challenge, expected string) (string, bool) {
	if mode != "subscribe" || expected == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return "", false
	}
	return challenge, true
}
