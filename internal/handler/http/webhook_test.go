package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbaflow/genba-backend-go/internal/parser"
	"github.com/genbaflow/genba-backend-go/internal/repository/memory"
	"github.com/genbaflow/genba-backend-go/internal/service/ingest"
)

func newWebhookTestHandler(secret string) (WebhookHandler, *memory.WorkRecordRepository) {
	workRepo := memory.NewWorkRecordRepository()
	svc := ingest.NewIngestService(
		parser.New(30, time.UTC),
		workRepo,
		memory.NewPendingReviewRepository(),
		memory.NewMessageLogRepository(),
		2000,
		time.UTC,
	)
	return NewWebhookHandler(svc, secret), workRepo
}

func webhookBody(t *testing.T) []byte {
	payload := map[string]interface{}{
		"destination": "bot-1",
		"events": []map[string]interface{}{
			{
				"type":           "message",
				"webhookEventId": "wh-1",
				"timestamp":      time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC).UnixMilli(),
				"source":         map[string]string{"type": "group", "groupId": "group-1", "userId": "user-1"},
				"message": map[string]string{
					"id":   "msg-1",
					"type": "text",
					"text": "1/16(火)\n恵興業 常用\n追浜造船所\n田中 半日\n鈴木 残業1",
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestWebhookReceiveRegistersRecords(t *testing.T) {
	handler, workRepo := newWebhookTestHandler("")

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(webhookBody(t)))
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	rows, err := workRepo.ReadAll(req.Context())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWebhookReceiveRejectsBadSignature(t *testing.T) {
	handler, workRepo := newWebhookTestHandler("channel-secret")

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(webhookBody(t)))
	req.Header.Set("X-Line-Signature", "bogus")
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rows, err := workRepo.ReadAll(req.Context())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWebhookReceiveAcceptsValidSignature(t *testing.T) {
	const secret = "channel-secret"
	handler, workRepo := newWebhookTestHandler(secret)

	body := webhookBody(t)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	rows, err := workRepo.ReadAll(req.Context())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWebhookReceiveInvalidBody(t *testing.T) {
	handler, _ := newWebhookTestHandler("")

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler.Receive(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
