package main

import (
	"github.com/robotalks/motoron.go/pkg/cli/sh"

	_ "github.com/robotalks/motoron.go/pkg/cli/cmds/motor"
)

//go-build: CGO_ENABLED=0

func main() {
	sh.Main()
}
