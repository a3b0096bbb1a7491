package telephony

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"privacyguard/log"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCaller(base string) *Caller {

	v := viper.New()

	v.Set("voice.vapi.base_url", base)
	v.Set("voice.vapi.api_key", "test-key")
	v.Set("voice.vapi.flow_id", "flow-1")
	v.Set("voice.vapi.caller_id", "+911234567890")
	v.Set("voice.sensy.base_url", base)
	v.Set("voice.sensy.api_key", "test-key")
	v.Set("voice.sensy.campaign_id", "camp-1")
	v.Set("voice.webhook_url", "https://crm.example.com/api/v1/voice/webhook/vapi")

	return &Caller{
		Config: v,
		Logger: log.GetLogger(),
		HTTP:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInitiateUnknownProvider(t *testing.T) {

	c := testCaller("http://127.0.0.1:1")

	_, err := c.Initiate("twilio", "+919876543210", "", nil)

	assert.EqualError(t, err, "unknown provider")
}

func TestVapiCall(t *testing.T) {

	var got map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		assert.Equal(t, "/calls", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "call-42", "status": "queued"}`))
	}))

	defer server.Close()

	c := testCaller(server.URL)

	info, err := c.Initiate("vapi", "+919876543210", "", map[string]interface{}{"lead_name": "Rajesh"})

	require.NoError(t, err)
	assert.Equal(t, "call-42", info["id"])
	assert.Equal(t, "+919876543210", got["to"])
	assert.Equal(t, "+911234567890", got["from"])
	assert.Equal(t, "flow-1", got["flowId"])
}

func TestSensyCall(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		assert.Equal(t, "/outbound", r.URL.Path)

		var got map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "camp-1", got["campaignId"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"call_id": "s-9", "status": "initiated"}`))
	}))

	defer server.Close()

	c := testCaller(server.URL)

	info, err := c.Initiate("aisensy", "+919876543210", "+911112223334", nil)

	require.NoError(t, err)
	assert.Equal(t, "s-9", info["call_id"])
}

func TestVapiCallProviderError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid flow"}`, http.StatusUnprocessableEntity)
	}))

	defer server.Close()

	c := testCaller(server.URL)

	_, err := c.Initiate("vapi", "+919876543210", "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 422")
}

func TestVapiCallMissingConfig(t *testing.T) {

	c := &Caller{Config: viper.New(), Logger: log.GetLogger(), HTTP: http.DefaultClient}

	_, err := c.Initiate("vapi", "+919876543210", "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "voice.vapi")
}

func TestNormalizeWebhook(t *testing.T) {

	tests := []struct {
		name     string
		provider string
		body     map[string]interface{}
		callID   interface{}
		event    interface{}
	}{
		{
			name:     "vapi id key",
			provider: "vapi",
			body:     map[string]interface{}{"id": "c-1", "status": "ended", "event": "call.ended", "transcript": "hello"},
			callID:   "c-1",
			event:    "call.ended",
		},
		{
			name:     "vapi camelCase fallback",
			provider: "vapi",
			body:     map[string]interface{}{"callId": "c-2", "status": "in-progress"},
			callID:   "c-2",
			event:    nil,
		},
		{
			name:     "sensy event_type",
			provider: "ai_sensy",
			body:     map[string]interface{}{"call_id": "s-1", "event_type": "answered"},
			callID:   "s-1",
			event:    "answered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			got := NormalizeWebhook(tt.provider, tt.body)

			assert.Equal(t, tt.callID, got["call_id"])
			assert.Equal(t, tt.event, got["event"])
			assert.Equal(t, tt.body, got["raw"])
		})
	}
}

func TestNormalizeWebhookUnknownProvider(t *testing.T) {

	body := map[string]interface{}{"anything": true}

	got := NormalizeWebhook("unknown", body)

	assert.Equal(t, map[string]interface{}{"raw": body}, got)
}
