package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"

	"livecontent/internal/client/binder"
	"livecontent/internal/client/sync"
)

// Render fetches the current document, merges the local override, and applies
// the binding manifest to a local HTML file. The result is written to the
// optional second argument or to stdout.
func (a *App) Render(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: render <html> [out]")
		return nil
	}

	manifest, err := binder.LoadManifest(a.config.ManifestPath)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

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

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer f.Close()

	page, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	b := binder.New(manifest, func(key string) string { return a.apiClient.MediaURL(key) })
	applied := b.Apply(page, doc)

	html, err := page.Html()
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], []byte(html), 0o644); err != nil {
			fmt.Println(err.Error())
			return err
		}
		fmt.Printf("Rendered %d bindings to %s\n", applied, args[1])
		return nil
	}

	fmt.Println(html)
	return nil
}
