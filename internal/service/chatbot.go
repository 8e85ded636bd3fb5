package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/whatsapp"
)

// ChatResultSize is the number of listings the bot sends per answer.
const ChatResultSize = 5

// Button reply IDs understood by the bot.
const (
	ButtonViewProperties = "view_properties"
	ButtonContactAgent   = "contact_agent"
)

// Messenger delivers replies to WhatsApp users.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
	MarkRead(ctx context.Context, messageID string) error
}

// ChatbotService answers WhatsApp messages with listings from the search core.
type ChatbotService interface {
	// Verify answers the webhook subscription handshake or returns ErrForbidden.
	Verify(mode, token, challenge string) (string, error)

	// HandleWebhook replies to every message of a notification and marks it read.
	// Notifications for other objects return ErrNotFound.
	HandleWebhook(ctx context.Context, w whatsapp.Webhook) error
}

type chatbotService struct {
	properties  repository.PropertyRepository
	messenger   Messenger
	verifyToken string
	contactText string
	log         *zap.Logger
}

func NewChatbotService(
	properties repository.PropertyRepository,
	messenger Messenger,
	verifyToken string,
	log *zap.Logger,
) ChatbotService {
	return &chatbotService{
		properties:  properties,
		messenger:   messenger,
		verifyToken: verifyToken,
		contactText: "📞 Our agent will contact you shortly!",
		log:         log,
	}
}

func (s *chatbotService) Verify(mode, token, challenge string) (string, error) {
	out, ok := whatsapp.Verify(mode, token, challenge, s.verifyToken)
	if !ok {
		s.log.Warn("whatsapp webhook verification failed", zap.String("mode", mode))
		return "", ErrForbidden
	}
	s.log.Info("whatsapp webhook verified")
	return out, nil
}

func (s *chatbotService) HandleWebhook(ctx context.Context, w whatsapp.Webhook) error {
	if w.Object != whatsapp.ObjectBusinessAccount {
		return ErrNotFound
	}

	for _, msg := range w.Messages() {
		log := s.log.With(zap.String("message_id", msg.ID), zap.String("type", msg.Type))

		var reply string
		switch msg.Type {
		case whatsapp.TypeText:
			body := ""
			if msg.Text != nil {
				body = msg.Text.Body
			}
			reply = s.answerText(ctx, body, log)
		case whatsapp.TypeInteractive:
			reply = s.answerButton(ctx, msg.ReplyID(), log)
		default:
			log.Debug("ignoring unsupported message type")
		}

		if reply != "" {
			if err := s.messenger.SendText(ctx, msg.From, reply); err != nil {
				return &StoreError{Op: "send whatsapp reply", Err: err}
			}
		}
		if err := s.messenger.MarkRead(ctx, msg.ID); err != nil {
			return &StoreError{Op: "mark whatsapp message read", Err: err}
		}
	}
	return nil
}

func (s *chatbotService) answerText(ctx context.Context, text string, log *zap.Logger) string {
	q := parseChatQuery(text)
	switch q.intent {
	case intentGreeting:
		return greetingText
	case intentMenu:
		return menuText
	case intentSearch:
		props, err := s.latest(ctx, q.predicate)
		if err != nil {
			log.Error("whatsapp property search failed", zap.Error(err))
			return apologyText
		}
		return formatPropertyList(props, q.title)
	default:
		return helpText
	}
}

func (s *chatbotService) answerButton(ctx context.Context, id string, log *zap.Logger) string {
	switch id {
	case ButtonViewProperties:
		props, err := s.latest(ctx, search.Predicate{})
		if err != nil {
			log.Error("whatsapp property search failed", zap.Error(err))
			return apologyText
		}
		return formatPropertyList(props, "Properties")
	case ButtonContactAgent:
		return s.contactText
	default:
		log.Debug("ignoring unknown button", zap.String("button_id", id))
		return ""
	}
}

// latest returns the newest listings matching pred, recency ranked.
func (s *chatbotService) latest(ctx context.Context, pred search.Predicate) ([]model.Property, error) {
	res, err := s.properties.Search(ctx, search.Query{
		Predicate: pred,
		Page:      search.Page{Number: 1, Size: ChatResultSize},
	})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}
