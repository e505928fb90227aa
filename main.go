package main

import (
	"github.com/maliksh/finagent/internal/cli"
)

func main() {
	cli.Run()
}
