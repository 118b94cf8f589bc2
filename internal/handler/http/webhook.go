package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/genbaflow/genba-backend-go/internal/domain/message"
	"github.com/genbaflow/genba-backend-go/internal/handler/http/response"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type webhookHandlerImpl struct {
	ingestService message.IngestService
	channelSecret string
}

// NewWebhookHandler builds the inbound chat webhook. With an empty
// channelSecret, signature verification is skipped.
func NewWebhookHandler(ingestService message.IngestService, channelSecret string) WebhookHandler {
	return &webhookHandlerImpl{
		ingestService: ingestService,
		channelSecret: channelSecret,
	}
}

// webhookPayload is the transport envelope: a delivery carries a batch of
// events.
type webhookPayload struct {
	Destination string         `json:"destination"`
	Events      []webhookEvent `json:"events"`
}

type webhookEvent struct {
	Type           string `json:"type"`
	WebhookEventID string `json:"webhookEventId"`
	// Timestamp is milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`
	Source    struct {
		Type    string `json:"type"`
		GroupID string `json:"groupId"`
		UserID  string `json:"userId"`
	} `json:"source"`
	Message struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
	Unsend struct {
		MessageID string `json:"messageId"`
	} `json:"unsend"`
}

// Receive handles one webhook delivery. Event processing outcomes are
// logged, not surfaced: the transport retries on non-200, and retrying a
// half-processed delivery is exactly what the dedup log is for, so the
// delivery is acknowledged whenever its payload was readable.
func (h *webhookHandlerImpl) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Failed to read request body", nil)
		return
	}

	if h.channelSecret != "" && !h.verifySignature(body, r.Header.Get("X-Line-Signature")) {
		response.Unauthorized(w, "Invalid signature")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results := make([]message.ProcessResult, 0, len(payload.Events))
	for _, ev := range payload.Events {
		res, err := h.ingestService.ProcessEvent(r.Context(), toEvent(ev))
		if err != nil {
			slog.Error("webhook event processing failed",
				"delivery_id", deliveryID(ev),
				"event_type", ev.Type,
				"error", err,
			)
		}
		results = append(results, res)
	}

	response.Success(w, results)
}

func (h *webhookHandlerImpl) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.channelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func toEvent(ev webhookEvent) message.Event {
	return message.Event{
		Type:            ev.Type,
		MessageID:       ev.Message.ID,
		Text:            ev.Message.Text,
		Timestamp:       time.UnixMilli(ev.Timestamp),
		GroupID:         ev.Source.GroupID,
		UserID:          ev.Source.UserID,
		UnsendMessageID: ev.Unsend.MessageID,
		DeliveryID:      deliveryID(ev),
	}
}

// deliveryID prefers the transport's event id, falling back to a generated
// one so every delivery is traceable in logs.
func deliveryID(ev webhookEvent) string {
	if ev.WebhookEventID != "" {
		return ev.WebhookEventID
	}
	return uuid.NewString()
}
