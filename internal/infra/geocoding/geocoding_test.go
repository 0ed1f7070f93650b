package geocoding

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockService "marketplace/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var taipei = orb.Point{121.5654, 25.033}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBigDataCloud_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25.033", r.URL.Query().Get("latitude"))
		assert.Equal(t, "121.5654", r.URL.Query().Get("longitude"))
		assert.Equal(t, "en", r.URL.Query().Get("localityLanguage"))
		_, _ = w.Write([]byte(`{"city":"Taipei","locality":"Xinyi","principalSubdivision":"Taipei City","countryName":"Taiwan","countryCode":"tw","postcode":"110"}`))
	}))
	defer server.Close()

	geocoder := NewBigDataCloud(server.URL, "en", "test-agent", server.Client())

	addr, err := geocoder.ReverseGeocode(context.Background(), taipei)
	require.NoError(t, err)
	assert.Equal(t, "Xinyi, Taipei, Taipei City, Taiwan", addr.DisplayName)
	assert.Equal(t, "TW", addr.CountryCode)
	assert.Equal(t, SourceBigDataCloud, addr.Source)
}

func TestBigDataCloud_EmptyCountryIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"city":"","countryName":""}`))
	}))
	defer server.Close()

	_, err := NewBigDataCloud(server.URL, "en", "", server.Client()).ReverseGeocode(context.Background(), taipei)
	assert.Error(t, err)
}

func TestNominatim_RequiresUserAgent(t *testing.T) {
	_, err := NewNominatim("http://example.invalid", "en", " ", 1, http.DefaultClient)
	assert.Error(t, err)
}

func TestNominatim_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "marketplace-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"display_name":"Xinyi Rd, Taipei, Taiwan","address":{"road":"Xinyi Rd","town":"Taipei","state":"Taipei","country":"Taiwan","country_code":"tw","postcode":"110"}}`))
	}))
	defer server.Close()

	geocoder, err := NewNominatim(server.URL, "en", "marketplace-test/1.0", 100, server.Client())
	require.NoError(t, err)

	addr, err := geocoder.ReverseGeocode(context.Background(), taipei)
	require.NoError(t, err)
	assert.Equal(t, "Taipei", addr.City)
	assert.Equal(t, "Xinyi Rd", addr.Locality)
	assert.Equal(t, SourceNominatim, addr.Source)
}

func TestNominatim_ErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	geocoder, err := NewNominatim(server.URL, "en", "ua", 100, server.Client())
	require.NoError(t, err)

	_, err = geocoder.ReverseGeocode(context.Background(), taipei)
	assert.ErrorContains(t, err, "Unable to geocode")
}

func TestNominatim_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"display_name":"x","address":{"country":"Taiwan"}}`))
	}))
	defer server.Close()

	geocoder, err := NewNominatim(server.URL, "en", "ua", 1, server.Client())
	require.NoError(t, err)

	_, err = geocoder.ReverseGeocode(context.Background(), taipei)
	require.NoError(t, err)

	// The second call must wait about a second, longer than this deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = geocoder.ReverseGeocode(ctx, taipei)
	assert.Error(t, err)
}

func TestChain_PrimarySucceeds(t *testing.T) {
	primary := mockService.NewMockGeocoder(t)
	fallback := mockService.NewMockGeocoder(t)

	want := &entity.GeocodedAddress{Country: "Taiwan", Source: SourceBigDataCloud}
	primary.EXPECT().ReverseGeocode(mock.Anything, taipei).Return(want, nil).Once()

	got, err := NewChain(primary, fallback, discardLogger()).ReverseGeocode(context.Background(), taipei)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestChain_FallsBackOnPrimaryFailure(t *testing.T) {
	primary := mockService.NewMockGeocoder(t)
	fallback := mockService.NewMockGeocoder(t)

	want := &entity.GeocodedAddress{Country: "Taiwan", Source: SourceNominatim}
	primary.EXPECT().ReverseGeocode(mock.Anything, taipei).Return(nil, errors.New("503")).Once()
	fallback.EXPECT().ReverseGeocode(mock.Anything, taipei).Return(want, nil).Once()

	got, err := NewChain(primary, fallback, discardLogger()).ReverseGeocode(context.Background(), taipei)
	require.NoError(t, err)
	assert.Equal(t, SourceNominatim, got.Source)
}

func TestChain_BothFail(t *testing.T) {
	primary := mockService.NewMockGeocoder(t)
	fallback := mockService.NewMockGeocoder(t)

	primary.EXPECT().ReverseGeocode(mock.Anything, taipei).Return(nil, errors.New("503")).Once()
	fallback.EXPECT().ReverseGeocode(mock.Anything, taipei).Return(nil, errors.New("429")).Once()

	_, err := NewChain(primary, fallback, discardLogger()).ReverseGeocode(context.Background(), taipei)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}
