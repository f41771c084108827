package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"livecontent/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for the editor password and exchanges it for a
// bearer token. On success the token lives inside the API client and the
// session expiry is remembered for the REPL status line.
func (a *App) Login(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	exp, err := a.apiClient.Login(ctx, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Invalid password")
		case errors.Is(err, common.ErrServerMisconfigured):
			fmt.Println("Server has no editor credentials configured")
		default:
			fmt.Println(err.Error())
		}
		return err
	}

	a.sessionExp = time.Unix(exp, 0)
	fmt.Println("Login successful, session valid until", a.sessionExp.Format(time.RFC3339))
	return nil
}
