package main

import (
	"context"
	"os"

	"github.com/mr-joshcrane/gmnx"
)

func main() {
	os.Exit(gmnx.Run(context.Background(), os.Args[1:], gmnx.ConfigFromEnv()))
}
