package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"livecontent/internal/client/sync"
)

// Preview stores a local override document that is merged over the fetched
// content on this machine only. Nothing is sent to the server.
func (a *App) Preview(ctx context.Context, args []string) error {
	path, err := a.filenameArg(args)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	var doc sync.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Println("Not a JSON object:", err.Error())
		return err
	}

	if err := a.override.Save(doc); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.broadcaster.Publish()
	fmt.Println("Preview override saved to", a.config.OverridePath)
	return nil
}

// ClearPreview removes the local override.
func (a *App) ClearPreview(ctx context.Context) error {
	if err := a.override.Clear(); err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.broadcaster.Publish()
	fmt.Println("Preview override cleared")
	return nil
}
