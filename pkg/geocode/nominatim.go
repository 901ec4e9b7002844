package geocode

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Nominatim reverse-geocodes coordinates. Enrichment is best effort: the
// client never returns an error, only a coordinate-string fallback.
type Nominatim struct {
	cl      *req.Client
	baseURL string
}

func NewNominatim(baseURL string, cl *req.Client) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Nominatim{
		cl:      cl,
		baseURL: baseURL,
	}
}

func (n *Nominatim) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%.5f, %.5f", lat, lon)

	var apiResp reverseResponse

	resp, err := n.cl.R().
		SetContext(ctx).
		SetHeader("User-Agent", "spendsnap/1.0").
		SetQueryParam("format", "jsonv2").
		SetQueryParam("lat", fmt.Sprintf("%f", lat)).
		SetQueryParam("lon", fmt.Sprintf("%f", lon)).
		SetSuccessResult(&apiResp).
		Get(n.baseURL + "/reverse")
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("reverse geocoding failed")
		return fallback
	}

	if resp.IsErrorState() || apiResp.DisplayName == "" {
		zerolog.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Msg("reverse geocoding returned no result")
		return fallback
	}

	return apiResp.DisplayName
}
