package main

import (
	"context"
	"fmt"

	"marketplace/internal/infra/geocoding"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func runGeocode(ctx context.Context, lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return errors.Errorf("coordinate out of range: %f,%f", lat, lon)
	}

	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	geocoder, err := geocoding.New(geocoding.Params{Config: env.cfg, Logger: env.logger})
	if err != nil {
		return err
	}

	addr, err := geocoder.ReverseGeocode(ctx, orb.Point{lon, lat})
	if err != nil {
		return err
	}

	fmt.Printf("source:   %s\n", addr.Source)
	fmt.Printf("address:  %s\n", addr.DisplayName)
	fmt.Printf("locality: %s\n", addr.Locality)
	fmt.Printf("city:     %s\n", addr.City)
	fmt.Printf("region:   %s\n", addr.Region)
	fmt.Printf("country:  %s (%s)\n", addr.Country, addr.CountryCode)
	fmt.Printf("postcode: %s\n", addr.Postcode)

	return nil
}
