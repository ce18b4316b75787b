package main

import (
	"fmt"
	"os"

	"github.com/filmoteca-hq/filmoteca-client/cmd/filmoteca/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "filmoteca: %v\n", err)
		os.Exit(1)
	}
}
