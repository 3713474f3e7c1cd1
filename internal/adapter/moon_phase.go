package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
)

const moonPhasesPath = "/v1/moonphases/"

type moonPhaseEntry struct {
	Phase    string `json:"Phase"`
	Error    int    `json:"Error"`
	ErrorMsg string `json:"ErrorMsg"`
}

// moonPhaseAdapter queries the farmsense moon-phase API.
type moonPhaseAdapter struct {
	client  *utils.HTTPClient
	enabled bool
	logger  *logger.Logger
}

// NewMoonPhaseAdapter builds a [MoonPhaseAdapter] for cfg.URL. Without URL
// every call returns [ErrProviderNotConfigured].
func NewMoonPhaseAdapter(cfg config.Cosmic, logger *logger.Logger) MoonPhaseAdapter {
	return &moonPhaseAdapter{
		client: utils.NewHTTPClient(
			utils.WithBaseURL(strings.TrimRight(cfg.URL, "/")),
			utils.WithTimeout(cfg.Timeout),
		),
		enabled: cfg.URL != "",
		logger:  logger,
	}
}

func (a *moonPhaseAdapter) MoonPhase(ctx context.Context, t time.Time) (string, error) {
	if !a.enabled {
		return "", ErrProviderNotConfigured
	}

	var entries []moonPhaseEntry
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("d", strconv.FormatInt(t.Unix(), 10)).
		SetResult(&entries).
		ForceContentType("application/json").
		Get(moonPhasesPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode())
	}

	if len(entries) == 0 || entries[0].Error != 0 || strings.TrimSpace(entries[0].Phase) == "" {
		detail := "no phase in response"
		if len(entries) > 0 && entries[0].ErrorMsg != "" {
			detail = entries[0].ErrorMsg
		}
		logger.FromContext(ctx).Warn().Str("func", "*moonPhaseAdapter.MoonPhase").Str("detail", detail).Msg("moon phase provider returned no phase")
		return "", fmt.Errorf("%w: %s", ErrProvider, detail)
	}

	return strings.TrimSpace(entries[0].Phase), nil
}
