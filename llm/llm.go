package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"privacyguard/config"
	"privacyguard/log"
	"privacyguard/models/constants/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Client - talks to the local ollama server. All operations fall back to
// deterministic heuristics when the model is unreachable so the workflow
// never stalls on inference.
type Client struct {
	Model  llms.Model
	Logger *logrus.Logger
}

var scoreRe = regexp.MustCompile(`(\d{1,3})`)

// NewClient - connects to the configured ollama instance
func NewClient() *Client {

	var (
		cg = config.GetConfig()
		c  = &Client{Logger: log.GetLogger()}
	)

	model, err := ollama.New(
		ollama.WithModel(cg.GetString("llm.model")),
		ollama.WithServerURL(cg.GetString("llm.host")),
	)

	if err != nil {
		c.Logger.Errorf("cannot initialise ollama client, heuristics only. %v", err)
		return c
	}

	c.Model = model

	return c
}

// generate - single prompt completion, empty string when unavailable
func (c *Client) generate(prompt string) string {

	if c == nil || c.Model == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := llms.GenerateFromSinglePrompt(ctx, c.Model, prompt)

	if err != nil {
		c.Logger.Errorf("ollama generation failed. %v", err)
		return ""
	}

	return text
}

// ScoreLead - scores a lead 0-100 from budget, interest and source
func (c *Client) ScoreLead(budgetRange, vehicle, source string) int {

	prompt := fmt.Sprintf(
		"Score this automotive lead from 0-100 based on budget %s, interest in %s, source %s. Return only the numeric score.",
		budgetRange, vehicle, source,
	)

	if text := c.generate(prompt); text != "" {

		if match := scoreRe.FindString(text); match != "" {

			score, _ := strconv.Atoi(match)

			return clamp(score)
		}
	}

	return HeuristicScore(budgetRange, vehicle, source)
}

// HeuristicScore - deterministic scoring used when the model is offline
func HeuristicScore(budgetRange, vehicle, source string) int {

	score := 50

	budget := strings.ToLower(budgetRange)

	for _, k := range []string{"10", "12", "15", "crore"} {
		if strings.Contains(budget, k) {
			score += 20
			break
		}
	}

	if source == "referral" || source == "website_form" {
		score += 10
	}

	marque := strings.ToLower(vehicle)

	for _, m := range []string{"rolls", "bentley", "ghost", "phantom", "flying spur"} {
		if strings.Contains(marque, m) {
			score += 10
			break
		}
	}

	return clamp(score)
}

// WelcomeEmail - personalised welcome copy for a new lead
func (c *Client) WelcomeEmail(name, vehicle string) string {

	prompt := fmt.Sprintf(
		"Write a personalized luxury car dealership welcome email for %s interested in %s. Tone: professional, premium, non-pushy. Max 150 words.",
		name, vehicle,
	)

	if text := c.generate(prompt); text != "" {
		return strings.TrimSpace(text)
	}

	return fmt.Sprintf(
		"Dear %s,\n\nThank you for your interest in the exquisite %s. Our specialist team would be delighted to assist you "+
			"with a private consultation tailored to your preferences. We can arrange a curated viewing and discuss bespoke options "+
			"at your convenience.\n\nWarm regards,\nLuxury Sales Team", name, vehicle,
	)
}

// SuggestFollowups - up to 3 snake_case next actions for a classification
func (c *Client) SuggestFollowups(classification string) []string {

	prompt := fmt.Sprintf(
		"Suggest 3 next actions for a %s automotive lead. Format: action_name_in_snake_case", classification,
	)

	if text := c.generate(prompt); text != "" {

		var actions []string

		for _, a := range regexp.MustCompile(`[\n,]`).Split(text, -1) {

			a = strings.ToLower(strings.TrimSpace(a))

			if a != "" {
				actions = append(actions, strings.ReplaceAll(a, " ", "_"))
			}

			if len(actions) == 3 {
				break
			}
		}

		if len(actions) > 0 {
			return actions
		}
	}

	return DefaultFollowups(classification)
}

// DefaultFollowups - classification keyed follow-up plans
func DefaultFollowups(classification string) []string {

	switch pipeline.Classification(classification) {
	case pipeline.HOT:
		return []string{"qualification_call_in_4h", "quotation_generation_after_call", "followup_email_in_1_day"}
	case pipeline.WARM:
		return []string{"qualification_call_in_24h", "brochure_email_in_2_days", "followup_email_in_3_days"}
	case pipeline.VIP:
		return []string{"vip_concierge_outreach_in_4h", "private_viewing_invite_in_2_days", "bespoke_configuration_session_in_3_days"}
	default:
		return []string{"nurture_email_sequence_weekly"}
	}
}

func clamp(score int) int {

	if score < 0 {
		return 0
	}

	if score > 100 {
		return 100
	}

	return score
}
