package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pokepack/pokepack-tracker/internal/metrics"
	"github.com/pokepack/pokepack-tracker/pkg/pricing"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

const (
	colorGreen = 0x10B981 // price at or below target
	colorGold  = 0xFBBF24 // price at or below 90% of target
	colorRed   = 0xEF4444 // price at or below 80% of target
)

const footerText = "PokePack Tracker"

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	endpoint EndpointSource
	client   *http.Client
	now      func() time.Time
}

// NewDiscordNotifier creates a new DiscordNotifier. The endpoint is
// resolved on every send so a webhook URL saved through the settings
// API is picked up immediately.
func NewDiscordNotifier(endpoint EndpointSource, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		endpoint: endpoint,
		client:   http.DefaultClient,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithClock overrides the embed timestamp source. Test hook.
func WithClock(now func() time.Time) DiscordOption {
	return func(d *DiscordNotifier) {
		d.now = now
	}
}

// discordMessage is the Discord webhook JSON structure.
type discordMessage struct {
	Embeds     []discordEmbed     `json:"embeds"`
	Components []discordActionRow `json:"components,omitempty"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Footer      *discordFooter      `json:"footer,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// discordActionRow is a type-1 component row holding link buttons.
type discordActionRow struct {
	Type       int             `json:"type"`
	Components []discordButton `json:"components"`
}

// discordButton is a type-2, style-5 (link) button.
type discordButton struct {
	Type  int    `json:"type"`
	Style int    `json:"style"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SendPriceAlert posts a price drop embed for the given pack.
func (d *DiscordNotifier) SendPriceAlert(
	ctx context.Context,
	pack *domain.Pack,
	targetPrice float64,
) Result {
	webhookURL, err := d.endpoint.WebhookURL(ctx)
	if err != nil {
		return Result{Reason: fmt.Sprintf("resolving webhook endpoint: %v", err)}
	}
	if webhookURL == "" {
		return Result{Reason: "webhook not configured"}
	}

	msg := d.buildAlertMessage(pack, targetPrice)
	return d.post(ctx, webhookURL, msg)
}

// TestWebhook posts a fixed connectivity-check embed.
func (d *DiscordNotifier) TestWebhook(ctx context.Context) Result {
	webhookURL, err := d.endpoint.WebhookURL(ctx)
	if err != nil {
		return Result{Reason: fmt.Sprintf("resolving webhook endpoint: %v", err)}
	}
	if webhookURL == "" {
		return Result{Reason: "webhook not configured"}
	}

	msg := discordMessage{
		Embeds: []discordEmbed{{
			Title: "PokePack Tracker Connected!",
			Description: "Your Discord webhook is working. You will receive " +
				"price alerts here when TCGPlayer prices drop below your targets.",
			Color: colorGreen,
			Fields: []discordEmbedField{
				{Name: "Status", Value: "Connected", Inline: true},
				{Name: "Source", Value: "TCGPlayer", Inline: true},
			},
			Timestamp: d.now().UTC().Format(time.RFC3339),
			Footer:    &discordFooter{Text: "Test message from " + footerText},
		}},
	}
	return d.post(ctx, webhookURL, msg)
}

func (d *DiscordNotifier) buildAlertMessage(pack *domain.Pack, targetPrice float64) discordMessage {
	msrp := pricing.MSRP(pack.ProductType)
	savings := msrp - pack.CurrentPrice
	percentOff := 0.0
	if msrp > 0 {
		percentOff = savings / msrp * 100
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("PRICE DROP: %s", pack.Name),
		Description: fmt.Sprintf(
			"**Price dropped below your target of %s!**",
			formatPrice(targetPrice),
		),
		Color: alertColor(pack.CurrentPrice, targetPrice),
		Fields: []discordEmbedField{
			{Name: "TCGPlayer Price", Value: formatPrice(pack.CurrentPrice), Inline: true},
			{Name: "Your Target", Value: formatPrice(targetPrice), Inline: true},
			{Name: "MSRP", Value: formatPrice(msrp), Inline: true},
			{
				Name:  "You Save vs MSRP",
				Value: fmt.Sprintf("%s (%.1f%% off)", formatPrice(savings), percentOff),
			},
			{Name: "Set", Value: pack.SetName, Inline: true},
			{Name: "Type", Value: pricing.DisplayName(pack.ProductType), Inline: true},
		},
		Thumbnail: &discordThumbnail{URL: thumbnailURL(pack)},
		Timestamp: d.now().UTC().Format(time.RFC3339),
		Footer:    &discordFooter{Text: footerText},
	}

	return discordMessage{
		Embeds: []discordEmbed{embed},
		Components: []discordActionRow{{
			Type: 1,
			Components: []discordButton{{
				Type:  2,
				Style: 5,
				Label: "Buy on TCGPlayer",
				URL:   buyURL(pack),
			}},
		}},
	}
}

// alertColor escalates with how far below the target the price fell.
func alertColor(currentPrice, targetPrice float64) int {
	switch {
	case currentPrice <= targetPrice*0.8:
		return colorRed
	case currentPrice <= targetPrice*0.9:
		return colorGold
	default:
		return colorGreen
	}
}

func thumbnailURL(pack *domain.Pack) string {
	if pack.ImageURL != "" {
		return pack.ImageURL
	}
	return fmt.Sprintf("https://images.pokemontcg.io/%s/logo.png", pack.SetID)
}

func buyURL(pack *domain.Pack) string {
	if pack.BuyURL != "" {
		return pack.BuyURL
	}
	return "https://www.tcgplayer.com/search/pokemon/product?q=" +
		url.QueryEscape(pack.Name) + "&view=grid&ProductTypeName=Sealed+Products"
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func (d *DiscordNotifier) post(ctx context.Context, webhookURL string, msg discordMessage) Result {
	body, err := json.Marshal(msg)
	if err != nil {
		return Result{Reason: fmt.Sprintf("marshaling discord payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return Result{Reason: fmt.Sprintf("creating discord request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return Result{Reason: fmt.Sprintf("sending discord webhook: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.NotificationFailuresTotal.Inc()
		return Result{Reason: "discord rate limited (429)"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationFailuresTotal.Inc()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return Result{Reason: fmt.Sprintf("discord returned %d (body unreadable)", resp.StatusCode)}
		}
		return Result{Reason: fmt.Sprintf("discord returned %d: %s", resp.StatusCode, respBody)}
	}

	return Result{Delivered: true}
}
