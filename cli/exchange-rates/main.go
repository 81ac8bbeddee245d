package main

import (
	"context"
	"os"

	"github.com/malusev998/exchange-rates/cli/cmd"
)

func main() {
	config := &cmd.Config{
		Ctx:      context.Background(),
		Args:     os.Args[1:],
		EnvFiles: []string{".env"},
	}

	if err := cmd.Execute(config); err != nil {
		os.Exit(1)
	}
}
