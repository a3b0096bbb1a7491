package voice

import (
	"fmt"
	"net/http"
	"strconv"

	"privacyguard/config"
	"privacyguard/data"
	"privacyguard/log"
	"privacyguard/models/constants/pipeline"
	"privacyguard/telephony"
	"privacyguard/workflow"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Action -
type Action struct {
	DB     *gorm.DB
	Logger *logrus.Logger
	Config *viper.Viper
	Caller *telephony.Caller
}

var voice = &Action{
	DB:     data.GetDB(),
	Logger: log.GetLogger(),
	Config: config.GetConfig(),
	Caller: telephony.NewCaller(),
}

type callRequest struct {
	ToPhone  string                 `json:"to_phone"`
	Provider string                 `json:"provider"`
	CallerID string                 `json:"caller_id"`
	LeadID   int64                  `json:"lead_id"`
	Payload  map[string]interface{} `json:"payload"`
}

// InitiateCall - places an outbound call through the configured provider
func InitiateCall(c *gin.Context) {

	var (
		err    error
		params = new(callRequest)
	)

	// 1. parse request
	if err = c.BindJSON(params); err != nil {
		voice.Logger.Errorf("cannot parse call request. %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	if params.ToPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "to_phone is required",
		})
		c.Abort()
		return
	}

	provider := params.Provider

	if provider == "" {
		provider = voice.Config.GetString("voice.provider")
	}

	if provider == "" {
		provider = "vapi"
	}

	// 2. dial out
	info, err := voice.Caller.Initiate(provider, params.ToPhone, params.CallerID, params.Payload)

	if err != nil {
		voice.Logger.Errorf("[INITIATE CALL] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"status": http.StatusText(http.StatusBadGateway),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	// 3. log against the lead when one is named
	if params.LeadID > 0 {
		if err = workflow.LogInteraction(voice.DB, params.LeadID, pipeline.Voice,
			"outbound_call", "executed", map[string]interface{}{
				"provider": provider,
				"to_phone": params.ToPhone,
				"call":     info,
			}); err != nil {
			voice.Logger.Errorf("cannot log outbound call. %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusText(http.StatusOK),
		"provider": provider,
		"call":     info,
	})
	c.Abort()
	return
}

// Webhook - receives provider call events. Left open so providers can reach
// it, anything unreadable is acknowledged and dropped.
func Webhook(c *gin.Context) {

	provider := c.Param("provider")

	var body map[string]interface{}

	if err := c.BindJSON(&body); err != nil {
		voice.Logger.Warnf("[VOICE WEBHOOK] unreadable %s event. %v", provider, err)
		c.JSON(http.StatusOK, gin.H{"status": http.StatusText(http.StatusOK)})
		c.Abort()
		return
	}

	event := telephony.NormalizeWebhook(provider, body)

	voice.Logger.Infof("[VOICE WEBHOOK] %s event %v for call %v", provider, event["event"], event["call_id"])

	// lead_id arrives as a query param when the call was placed by us
	if raw := c.Query("lead_id"); raw != "" {

		leadID, err := strconv.ParseInt(raw, 10, 64)

		if err == nil && leadID > 0 {
			if err = workflow.LogInteraction(voice.DB, leadID, pipeline.Voice,
				"call_event", "executed", event); err != nil {
				voice.Logger.Errorf("cannot log call event. %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"event":  event,
	})
	c.Abort()
	return
}
