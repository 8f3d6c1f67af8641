package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/cmd"
)

func main() {
	// A local .env may carry SLANG_DB for development setups. Absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
