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
)

// SourceBigDataCloud tags addresses resolved by the primary service.
const SourceBigDataCloud = "bigdatacloud"

type bigDataCloud struct {
	endpoint  string
	language  string
	userAgent string
	client    *http.Client
}

// NewBigDataCloud creates the keyless reverse-geocode-client geocoder.
func NewBigDataCloud(endpoint, language, userAgent string, client *http.Client) service.Geocoder {
	return &bigDataCloud{
		endpoint:  endpoint,
		language:  language,
		userAgent: userAgent,
		client:    client,
	}
}

type bigDataCloudResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
	CountryCode          string `json:"countryCode"`
	Postcode             string `json:"postcode"`
}

func (g *bigDataCloud) ReverseGeocode(ctx context.Context, point orb.Point) (*entity.GeocodedAddress, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	if g.language != "" {
		q.Set("localityLanguage", g.language)
	}

	var resp bigDataCloudResponse
	if err := getJSON(ctx, g.client, g.endpoint+"?"+q.Encode(), g.userAgent, &resp); err != nil {
		return nil, errors.Wrap(err, SourceBigDataCloud)
	}

	// An ocean or an unmapped area comes back 200 with no country.
	if resp.CountryName == "" {
		return nil, errors.Errorf("%s: no address for %v", SourceBigDataCloud, point)
	}

	city := resp.City
	if city == "" {
		city = resp.Locality
	}

	return &entity.GeocodedAddress{
		DisplayName: joinNonEmpty(resp.Locality, city, resp.PrincipalSubdivision, resp.CountryName),
		Locality:    resp.Locality,
		City:        city,
		Region:      resp.PrincipalSubdivision,
		Country:     resp.CountryName,
		CountryCode: strings.ToUpper(resp.CountryCode),
		Postcode:    resp.Postcode,
		Source:      SourceBigDataCloud,
	}, nil
}

// joinNonEmpty joins distinct non-empty parts with ", ".
func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return strings.Join(out, ", ")
}
