package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.currentUser != nil {
		return fmt.Sprintf("(%s)", a.currentUser.Email)
	}
	return "(logged out)"
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Cantina POS (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
