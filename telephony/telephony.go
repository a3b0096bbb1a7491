package telephony

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"privacyguard/config"
	"privacyguard/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Caller - initiates outbound calls through a hosted voice provider
type Caller struct {
	Config *viper.Viper
	Logger *logrus.Logger
	HTTP   *http.Client
}

// NewCaller -
func NewCaller() *Caller {
	return &Caller{
		Config: config.GetConfig(),
		Logger: log.GetLogger(),
		HTTP:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Initiate - dispatches the call to the named provider
func (t *Caller) Initiate(provider, toPhone, callerID string, payload map[string]interface{}) (map[string]interface{}, error) {

	switch strings.ToLower(provider) {
	case "vapi":
		return t.vapiCall(toPhone, callerID, payload)
	case "sensy", "ai_sensy", "aisensy":
		return t.sensyCall(toPhone, callerID, payload)
	}

	return nil, errors.New("unknown provider")
}

// vapiCall - POST {base}/calls
func (t *Caller) vapiCall(toPhone, callerID string, payload map[string]interface{}) (map[string]interface{}, error) {

	var (
		base   = t.Config.GetString("voice.vapi.base_url")
		token  = t.Config.GetString("voice.vapi.api_key")
		flowID = t.Config.GetString("voice.vapi.flow_id")
	)

	if base == "" || token == "" || flowID == "" {
		return nil, errors.New("missing voice.vapi.base_url/api_key/flow_id config")
	}

	if callerID == "" {
		callerID = t.Config.GetString("voice.vapi.caller_id")
	}

	if payload == nil {
		payload = map[string]interface{}{}
	}

	body := map[string]interface{}{
		"to":         toPhone,
		"from":       callerID,
		"flowId":     flowID,
		"variables":  payload,
		"webhookUrl": t.Config.GetString("voice.webhook_url"),
	}

	return t.post(strings.TrimRight(base, "/")+"/calls", token, body)
}

// sensyCall - POST {base}/outbound
func (t *Caller) sensyCall(toPhone, callerID string, payload map[string]interface{}) (map[string]interface{}, error) {

	var (
		base     = t.Config.GetString("voice.sensy.base_url")
		token    = t.Config.GetString("voice.sensy.api_key")
		campaign = t.Config.GetString("voice.sensy.campaign_id")
	)

	if base == "" || token == "" || campaign == "" {
		return nil, errors.New("missing voice.sensy.base_url/api_key/campaign_id config")
	}

	if callerID == "" {
		callerID = t.Config.GetString("voice.sensy.caller_id")
	}

	if payload == nil {
		payload = map[string]interface{}{}
	}

	body := map[string]interface{}{
		"campaignId": campaign,
		"to":         toPhone,
		"callerId":   callerID,
		"meta":       payload,
		"webhookUrl": t.Config.GetString("voice.webhook_url"),
	}

	return t.post(strings.TrimRight(base, "/")+"/outbound", token, body)
}

// post - bearer-authenticated JSON POST, decoded provider response
func (t *Caller) post(url, token string, body map[string]interface{}) (map[string]interface{}, error) {

	raw, err := json.Marshal(body)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := t.HTTP.Do(req)

	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	resBody, _ := ioutil.ReadAll(res.Body)

	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned HTTP %d. %s", res.StatusCode, string(resBody))
	}

	var data map[string]interface{}

	if err = json.Unmarshal(resBody, &data); err != nil {
		return nil, fmt.Errorf("cannot decode provider response. %v", err)
	}

	return data, nil
}

// NormalizeWebhook - maps provider callback payloads to a common shape
func NormalizeWebhook(provider string, body map[string]interface{}) map[string]interface{} {

	switch strings.ToLower(provider) {
	case "vapi":
		return map[string]interface{}{
			"call_id":    firstOf(body, "id", "callId"),
			"status":     body["status"],
			"event":      body["event"],
			"transcript": body["transcript"],
			"raw":        body,
		}
	case "sensy", "ai_sensy", "aisensy":
		return map[string]interface{}{
			"call_id":    firstOf(body, "call_id", "id"),
			"status":     body["status"],
			"event":      firstOf(body, "event_type", "event"),
			"transcript": body["transcript"],
			"raw":        body,
		}
	}

	return map[string]interface{}{"raw": body}
}

// firstOf - first non-nil key
func firstOf(body map[string]interface{}, keys ...string) interface{} {

	for _, k := range keys {
		if v, ok := body[k]; ok && v != nil {
			return v
		}
	}

	return nil
}
