package main

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

func runState(ctx context.Context, key string) error {
	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	keys := []string{key}
	if key == "" {
		if keys, err = env.storage.Keys(ctx); err != nil {
			return err
		}
	}

	dump := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	for _, k := range keys {
		var doc any
		found, err := env.storage.Load(ctx, k, &doc)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("%s: <absent>\n", k)

			continue
		}

		fmt.Printf("%s:\n", k)
		dump.Dump(doc)
	}

	return nil
}
