// Command pillbox-admin runs schema migrations, rebuilds the search index and
// manages members and dev tokens
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
