package main

import (
	"context"

	"KonkurRankPredictor/cmd/rankctl/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
