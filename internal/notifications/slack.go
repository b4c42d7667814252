package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/K0NGR3SS/riskmap/internal/models"
)

const maxListed = 5

type SlackNotifier struct {
	WebhookURL string
	Channel    string
	Client     *http.Client
}

type slackMessage struct {
	Channel     string            `json:"channel,omitempty"`
	Username    string            `json:"username"`
	IconEmoji   string            `json:"icon_emoji"`
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Title  string       `json:"title"`
	Text   string       `json:"text,omitempty"`
	Fields []slackField `json:"fields,omitempty"`
	Footer string       `json:"footer,omitempty"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func NewSlackNotifier(webhookURL, channel string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Channel:    channel,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SendHeatmapSummary posts the register's level breakdown and where the
// heatmap was written.
func (s *SlackNotifier) SendHeatmapSummary(reg models.Register, location string) error {
	critical := reg.FilterByLevel(models.RiskCritical)
	high := reg.FilterByLevel(models.RiskHigh)
	medium := reg.FilterByLevel(models.RiskMedium)
	low := reg.FilterByLevel(models.RiskLow)

	text := fmt.Sprintf("*Risk heatmap updated*\nPlotted *%d* risks to `%s`", len(reg), location)

	attachments := []slackAttachment{
		{
			Color: summaryColor(critical, high),
			Title: fmt.Sprintf("Summary (%d risks)", len(reg)),
			Fields: []slackField{
				{Title: "Critical", Value: fmt.Sprintf("%d", len(critical)), Short: true},
				{Title: "High", Value: fmt.Sprintf("%d", len(high)), Short: true},
				{Title: "Medium", Value: fmt.Sprintf("%d", len(medium)), Short: true},
				{Title: "Low", Value: fmt.Sprintf("%d", len(low)), Short: true},
			},
			Footer: "riskmap",
		},
	}

	if len(critical) > 0 {
		attachments = append(attachments, slackAttachment{
			Color: "danger",
			Title: "Critical Risks",
			Text:  listRisks(critical),
		})
	}

	if len(high) > 0 {
		attachments = append(attachments, slackAttachment{
			Color: "warning",
			Title: "High Risks",
			Text:  listRisks(high),
		})
	}

	msg := slackMessage{
		Channel:     s.Channel,
		Username:    "riskmap",
		IconEmoji:   ":bar_chart:",
		Text:        text,
		Attachments: attachments,
	}

	return s.sendMessage(msg)
}

func summaryColor(critical, high models.Register) string {
	switch {
	case len(critical) > 0:
		return "danger"
	case len(high) > 0:
		return "warning"
	default:
		return "good"
	}
}

func listRisks(reg models.Register) string {
	text := ""
	for i, e := range reg {
		if i >= maxListed {
			text += fmt.Sprintf("\n_...and %d more_", len(reg)-maxListed)
			break
		}
		text += fmt.Sprintf("• *%s* severity %g%%, probability %g%% (score %g)\n", e.Name, e.Severity, e.Probability, e.Score())
	}
	return text
}

func (s *SlackNotifier) sendMessage(msg slackMessage) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	resp, err := s.Client.Post(s.WebhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned non-200 status: %d", resp.StatusCode)
	}

	return nil
}
