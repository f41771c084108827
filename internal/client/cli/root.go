package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(editor)"
	}
	return "(anon)"
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the livecontent editor console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
