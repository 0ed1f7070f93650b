package geocoding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/paulmach/orb"
	"golang.org/x/time/rate"
)

// SourceNominatim tags addresses resolved by the fallback service.
const SourceNominatim = "nominatim"

type nominatim struct {
	endpoint  string
	language  string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewNominatim creates the OpenStreetMap reverse geocoder. Nominatim rejects
// requests without a User-Agent and allows about one request per second.
func NewNominatim(endpoint, language, userAgent string, perSecond float64, client *http.Client) (service.Geocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim requires a User-Agent")
	}
	if perSecond <= 0 {
		perSecond = 1
	}

	return &nominatim{
		endpoint:  endpoint,
		language:  language,
		userAgent: userAgent,
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
	}, nil
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		Road        string `json:"road"`
		Suburb      string `json:"suburb"`
		Village     string `json:"village"`
		Town        string `json:"town"`
		City        string `json:"city"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
		Postcode    string `json:"postcode"`
	} `json:"address"`
}

func (g *nominatim) ReverseGeocode(ctx context.Context, point orb.Point) (*entity.GeocodedAddress, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, SourceNominatim)
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	q.Set("addressdetails", "1")
	if g.language != "" {
		q.Set("accept-language", g.language)
	}

	var resp nominatimResponse
	if err := getJSON(ctx, g.client, g.endpoint+"?"+q.Encode(), g.userAgent, &resp); err != nil {
		return nil, errors.Wrap(err, SourceNominatim)
	}
	if resp.Error != "" {
		return nil, errors.Errorf("%s: %s", SourceNominatim, resp.Error)
	}

	addr := resp.Address
	city := firstNonEmpty(addr.City, addr.Town, addr.Village)

	return &entity.GeocodedAddress{
		DisplayName: resp.DisplayName,
		Locality:    firstNonEmpty(addr.Suburb, addr.Road, city),
		City:        city,
		Region:      addr.State,
		Country:     addr.Country,
		CountryCode: strings.ToUpper(addr.CountryCode),
		Postcode:    addr.Postcode,
		Source:      SourceNominatim,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
