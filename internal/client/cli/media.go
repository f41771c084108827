package cli

import (
	"context"
	"fmt"
	"os"
)

// Upload sends a local file to the media endpoint and prints the storage
// key and the URL the document should reference it by.
func (a *App) Upload(ctx context.Context, args []string) error {
	path, err := a.filenameArg(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	key, url, err := a.apiClient.UploadMedia(ctx, path, data)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if url == "" {
		url = a.apiClient.MediaURL(key)
	}

	fmt.Println("key:", key)
	fmt.Println("url:", url)
	return nil
}
