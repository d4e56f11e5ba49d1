package main

import (
	"github.com/robotalks/hitl.go/pkg/cli/sh"
	"github.com/robotalks/hitl.go/pkg/hitl"

	_ "github.com/robotalks/hitl.go/pkg/cli/cmds/pins"
)

//go-build: CGO_ENABLED=0

func init() {
	hitl.SetupFlags()
}

func main() {
	sh.Main()
}
