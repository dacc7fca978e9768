package encourage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/hydrohabit/internal/coach/geo"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/weather"
	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

type fakeLocator struct {
	loc *geo.Location
	err error
}

func (f *fakeLocator) Locate(ctx context.Context) (*geo.Location, error) {
	return f.loc, f.err
}

type fakeWeather struct {
	reading *weather.Reading
	err     error
	gotLat  float64
	gotLon  float64
}

func (f *fakeWeather) Current(ctx context.Context, lat, lon float64) (*weather.Reading, error) {
	f.gotLat, f.gotLon = lat, lon
	return f.reading, f.err
}

type fakeChat struct {
	msg       string
	err       error
	gotPrompt string
}

func (f *fakeChat) Complete(ctx context.Context, systemPrompt string) (string, error) {
	f.gotPrompt = systemPrompt
	return f.msg, f.err
}

var upstreamErr = fmt.Errorf("%w: boom", common.ErrorUpstreamUnavailable)

func TestEncouragement_Success(t *testing.T) {
	loc := &fakeLocator{loc: &geo.Location{Latitude: 56.95, Longitude: 24.1}}
	wth := &fakeWeather{reading: &weather.Reading{TemperatureC: 31.6, HumidityPct: 72}}
	chat := &fakeChat{msg: "Stay hydrated! 💧"}

	s := NewService(loc, wth, chat)

	msg, err := s.Encouragement(context.Background())
	if err != nil {
		t.Fatalf("Encouragement error: %v", err)
	}
	if msg != "Stay hydrated! 💧" {
		t.Fatalf("unexpected message: %q", msg)
	}

	if wth.gotLat != 56.95 || wth.gotLon != 24.1 {
		t.Fatalf("coordinates not forwarded to weather: %v %v", wth.gotLat, wth.gotLon)
	}

	// the prompt carries the formatted conditions
	if !strings.Contains(chat.gotPrompt, "Temperature: 31.6°C") {
		t.Fatalf("temperature missing from prompt: %s", chat.gotPrompt)
	}
	if !strings.Contains(chat.gotPrompt, "Humidity: 72%") {
		t.Fatalf("humidity missing from prompt: %s", chat.gotPrompt)
	}
	if !strings.Contains(chat.gotPrompt, "Time since last sip: 10 minutes") {
		t.Fatalf("sip interval missing from prompt: %s", chat.gotPrompt)
	}
}

func TestEncouragement_LocationFailureSurfacesAsUpstream(t *testing.T) {
	s := NewService(&fakeLocator{err: upstreamErr}, &fakeWeather{}, &fakeChat{})

	_, err := s.Encouragement(context.Background())
	if !errors.Is(err, common.ErrorUpstreamUnavailable) {
		t.Fatalf("want ErrorUpstreamUnavailable, got %v", err)
	}
}

func TestEncouragement_WeatherFailureSurfacesAsUpstream(t *testing.T) {
	loc := &fakeLocator{loc: &geo.Location{}}
	s := NewService(loc, &fakeWeather{err: upstreamErr}, &fakeChat{})

	_, err := s.Encouragement(context.Background())
	if !errors.Is(err, common.ErrorUpstreamUnavailable) {
		t.Fatalf("want ErrorUpstreamUnavailable, got %v", err)
	}
}

func TestEncouragement_ChatFailureSurfacesAsGeneration(t *testing.T) {
	loc := &fakeLocator{loc: &geo.Location{}}
	wth := &fakeWeather{reading: &weather.Reading{}}
	s := NewService(loc, wth, &fakeChat{err: errors.New("model overloaded")})

	_, err := s.Encouragement(context.Background())
	if !errors.Is(err, common.ErrorGeneration) {
		t.Fatalf("want ErrorGeneration, got %v", err)
	}
	if errors.Is(err, common.ErrorUpstreamUnavailable) {
		t.Fatalf("generation failure must not look like an upstream failure: %v", err)
	}
}
