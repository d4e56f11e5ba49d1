package sh

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/hitl.go/pkg/hitl"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell      *ishell.Shell
	Config     *hitl.Config
	Controller *hitl.Controller
}

const (
	shellKey      = "$shell"
	offlinePrompt = "[offline] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *hitl.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(offlinePrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Output prints v as JSON when requested, otherwise text.
func Output(c *ishell.Context, v interface{}, text string) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text)
}

// Open loads the pin registry and opens the serial port if configured.
func (s *Shell) Open() error {
	ctl, err := s.Config.Open()
	if err != nil {
		return err
	}
	s.Controller = ctl
	if s.Config.SerialDevice != "" {
		s.Shell.SetPrompt(fmt.Sprintf("%s > ", s.Config.SerialDevice))
	}
	return nil
}

// Close releases the controller.
func (s *Shell) Close() error {
	if s.Controller == nil {
		return nil
	}
	return s.Controller.Close()
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if err := s.Open(); err != nil {
		glog.Exitf("open %s failed: %v", s.Config.PinsFile, err)
	}
	defer s.Close()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exit("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(hitl.Default()).Run(flag.Args()...)
}
