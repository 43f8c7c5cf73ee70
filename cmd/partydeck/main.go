package main

import (
	"github.com/partydeck/partydeck-go/internal/cli"
)

func main() {
	cli.Execute()
}
