package main

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/store"
	"marketplace/internal/usecase/impl"

	"github.com/pkg/errors"
)

func runSearches(ctx context.Context, args []string) error {
	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	history := impl.NewSearchHistoryService(env.storage, store.NewStore(env.storage, env.logger), env.cfg)

	action := "list"
	if len(args) > 0 {
		action = args[0]
	}
	query := strings.Join(args[min(len(args), 1):], " ")

	var searches []string
	switch action {
	case "list":
		searches, err = history.List(ctx)
	case "add":
		searches, err = history.Add(ctx, query)
	case "remove":
		searches, err = history.Remove(ctx, query)
	case "clear":
		return history.Clear(ctx)
	default:
		return errors.Errorf("unknown searches action %q", action)
	}
	if err != nil {
		return err
	}

	for i, s := range searches {
		fmt.Printf("%2d. %s\n", i+1, s)
	}

	return nil
}
