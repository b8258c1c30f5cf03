package main

import (
	"github.com/frcl/mensad/pkg/cli"
)

func main() {
	cli.Execute()
}
