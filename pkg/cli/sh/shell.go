// Package sh provides an interactive shell driving a local controller.
package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"

	"github.com/robotalks/motoron.go/pkg/motoron"
)

// Config specifies the device the shell opens.
type Config struct {
	Bus        string
	Controller string
}

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *Config
	Device *motoron.Device
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

// ErrNotOpen is reported by commands requiring an open device.
var ErrNotOpen = errors.New("no device open")

var (
	defaultConfig = Config{
		Bus:        "i2c:///dev/i2c-1?addr=0x10",
		Controller: motoron.M2T256.String(),
	}

	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	if val := os.Getenv("MOTORON_BUS"); val != "" {
		defaultConfig.Bus = val
	}
	if val := os.Getenv("MOTORON_CONTROLLER"); val != "" {
		defaultConfig.Controller = val
	}
	flag.StringVar(&defaultConfig.Bus, "bus", defaultConfig.Bus, "Bus URL")
	flag.StringVar(&defaultConfig.Controller, "controller", defaultConfig.Controller, "Controller model")
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command func requiring an open device.
func MustBeOpen(fn func(c *ishell.Context, dev *motoron.Device)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		dev := ShellFrom(c).Device
		if dev == nil {
			c.Err(ErrNotOpen)
			return
		}
		fn(c, dev)
	}
}

// Done reports the result of a command without output.
func Done(c *ishell.Context, err error) {
	if err != nil {
		c.Err(err)
		return
	}
	if ShellFrom(c).OutputJSON {
		c.Println(`{"ok":true}`)
		return
	}
	c.Println("OK")
}

// Print prints v as JSON or in the text form given by format.
func Print(c *ishell.Context, v interface{}, format string, args ...interface{}) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Printf(format+"\n", args...)
}

// ArgCountError is reported when a command gets too few arguments.
type ArgCountError struct {
	Usage string
}

// Error implements error.
func (e *ArgCountError) Error() string {
	return "usage: " + e.Usage
}

// CheckArgs fails with usage when fewer than n arguments are given.
func CheckArgs(c *ishell.Context, n int, usage string) bool {
	if len(c.Args) < n {
		c.Err(&ArgCountError{Usage: usage})
		return false
	}
	return true
}

// ParseInt parses decimal or 0x prefixed integers.
func ParseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return int(v), nil
}

// ParseFloat parses a float.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return v, nil
}

// ParseDuration parses a duration like 100ms.
func ParseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", s)
	}
	return v, nil
}

// ParseInts parses all args with ParseInt.
func ParseInts(args ...string) ([]int, error) {
	vals := make([]int, len(args))
	for n, arg := range args {
		v, err := ParseInt(arg)
		if err != nil {
			return nil, err
		}
		vals[n] = v
	}
	return vals, nil
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the device on busURL, closing the current one.
func (s *Shell) Open(busURL, controller string) error {
	ct, err := motoron.ParseControllerType(controller)
	if err != nil {
		return err
	}
	dev, err := motoron.Open(ct, busURL)
	if err != nil {
		return err
	}
	s.Close()
	s.Device = dev
	s.Config.Bus, s.Config.Controller = busURL, ct.String()
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", ct))
	return nil
}

// Close closes the current device.
func (s *Shell) Close() error {
	if s.Device == nil {
		return nil
	}
	err := s.Device.Close()
	s.Device = nil
	s.Shell.SetPrompt(closedPrompt)
	return err
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if s.AutoOpen && s.Config.Bus != "" {
		if s.Interactive {
			s.Shell.Printf("Opening %s on %s ...\n", s.Config.Controller, s.Config.Bus)
		}
		if err := s.Open(s.Config.Bus, s.Config.Controller); err != nil {
			log.Fatalf("open %q failed: %v", s.Config.Bus, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// OpenCmd opens a device.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[BUS-URL [CONTROLLER]]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			busURL, controller := s.Config.Bus, s.Config.Controller
			if len(c.Args) > 0 {
				busURL = c.Args[0]
			}
			if len(c.Args) > 1 {
				controller = c.Args[1]
			}
			Done(c, s.Open(busURL, controller))
		},
	}

	// CloseCmd closes the current device.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			Done(c, ShellFrom(c).Close())
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(NewConfig()).WithAutoOpen(true).Run(flag.Args()...)
}
