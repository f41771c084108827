package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"livecontent/internal/client/sync"
)

// Show prints the current content document, with the local preview override
// merged over it. An optional dotted path argument narrows the output to a
// single value.
func (a *App) Show(ctx context.Context, args []string) error {
	raw, _, err := a.apiClient.GetContent(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	var doc sync.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Println(err.Error())
		return err
	}
	doc = sync.MergeOverride(doc, a.override.Load())

	var out any = doc
	if len(args) > 0 {
		v, ok := sync.Lookup(doc, args[0])
		if !ok {
			fmt.Println("Path not found:", args[0])
			return nil
		}
		out = v
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

// Publish replaces the published document with the contents of a local JSON
// file and signals other in-process consumers to refetch.
func (a *App) Publish(ctx context.Context, args []string) error {
	path, err := a.filenameArg(args)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.apiClient.PutContent(ctx, raw); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.broadcaster.Publish()
	fmt.Println("Published")
	return nil
}

// Hash prints the current content version tag.
func (a *App) Hash(ctx context.Context) error {
	_, etag, err := a.apiClient.GetContent(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println(etag)
	return nil
}
