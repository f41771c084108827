package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"livecontent/internal/client/sync"
)

// Watch runs the polling loop in the foreground, printing each document
// change as it lands. Pressing Enter stops it.
func (a *App) Watch(ctx context.Context) error {
	client := sync.NewClient(sync.Options{
		BaseURL:        a.config.ServerURL,
		FallbackPath:   a.config.FallbackPath,
		PollInterval:   a.config.PollInterval,
		RequestTimeout: a.config.RequestTimeout,
		Override:       a.override,
		Broadcaster:    a.broadcaster,
		Apply: func(doc sync.Document) {
			pretty, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return
			}
			fmt.Println(string(pretty))
		},
	})

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		buf := make([]byte, 1)
		_, _ = os.Stdin.Read(buf)
		cancel()
	}()

	fmt.Printf("Watching %s every %s (press Enter to stop)\n", a.config.ServerURL, a.config.PollInterval)
	client.Run(watchCtx)
	return nil
}
