package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/hitl.go/pkg/bridge"
	fx "github.com/robotalks/hitl.go/pkg/framework"
	"github.com/robotalks/hitl.go/pkg/hitl"
)

func init() {
	hitl.SetupFlags()
	bridge.SetupFlags()
}

func run() error {
	ctl, err := hitl.Default().Open()
	if err != nil {
		return err
	}
	defer ctl.Close()

	runners, err := bridge.Default().NewRunners(ctl.Registry(), ctl)
	if err != nil {
		return err
	}
	return fx.NewRunner().HandleSignals().Go(runners...).Wait()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		glog.Exit(err)
	}
}
