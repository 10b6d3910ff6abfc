package main

import (
	"github.com/y24/perftimer/cmd/perftimer/cmd"
)

func main() {
	cmd.Execute()
}
