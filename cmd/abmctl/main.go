package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/octobees/marketing-ops/api/cmd/abmctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
