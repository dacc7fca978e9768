// Package encourage produces weather-aware hydration encouragement: resolve
// caller location, resolve local weather, feed both into a templated prompt
// for a chat-completion API. The three steps form a fixed linear pipeline
// with no partial results — any failure aborts the whole request.
package encourage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hydrohabit/internal/coach/geo"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/weather"
	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

// placeholderMinutesSinceSip stands in for the real interval.
// TODO: wire to the sip ledger once the coach can identify its caller.
const placeholderMinutesSinceSip = 10

const promptTemplate = `You are a friendly and motivating hydration coach. Your job is to remind users to drink water in a fun and encouraging way.

Here is the current weather context and time since last sip:
- Temperature: %.1f°C
- Humidity: %.0f%%
- Time since last sip: %d minutes

Based on this, generate a short, engaging reminder for the user to stay hydrated.
If it's hot or humid, emphasize the importance of drinking more. If it's cool, still encourage hydration but without urgency.
If the user hasn't sipped in a while, make it sound like a friendly nudge rather than a command.

Avoid being robotic. Use some emojis if appropriate, not too many. Make it sound like a human coach who cares about the user's health and mood. No hashtags.
Keep it concise, around 2-3 sentences.`

// Locator resolves the caller's location.
type Locator interface {
	Locate(ctx context.Context) (*geo.Location, error)
}

// WeatherProvider resolves current conditions at a coordinate pair.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*weather.Reading, error)
}

// ChatCompleter turns a system prompt into one generated message.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt string) (string, error)
}

type Service struct {
	geo     Locator
	weather WeatherProvider
	chat    ChatCompleter
}

func NewService(g Locator, w WeatherProvider, c ChatCompleter) *Service {
	return &Service{geo: g, weather: w, chat: c}
}

// Encouragement runs the pipeline and returns one message. Location and
// weather failures surface as ErrorUpstreamUnavailable; generation failures
// as ErrorGeneration. No retries.
func (s *Service) Encouragement(ctx context.Context) (string, error) {

	loc, err := s.geo.Locate(ctx)
	if err != nil {
		return "", err
	}

	reading, err := s.weather.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(promptTemplate,
		reading.TemperatureC, reading.HumidityPct, placeholderMinutesSinceSip)

	msg, err := s.chat.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorGeneration, err)
	}

	return msg, nil
}
