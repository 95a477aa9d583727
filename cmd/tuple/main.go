// Command tuple evaluates sequence operations from the command line or from
// YAML scripts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type handler func(input string) (exitCode int)
type command func(*cli, *kingpin.Application) (*kingpin.CmdClause, handler)

var commands = []command{
	buildCommand,
	joinCommand,
	reverseCommand,
	atCommand,
	lenCommand,
	runCommand,
}

// cli holds the state shared by every command.
type cli struct {
	out     io.Writer
	log     *logrus.Logger
	divider *string
}

func (c *cli) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	app := kingpin.New("tuple", "Operations over fixed-order sequences.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	exitCode := -1
	app.Terminate(func(code int) { exitCode = code })

	verbose := app.Flag("verbose", "Log debug messages.").Short('v').Bool()
	c := &cli{
		out:     stdout,
		log:     log,
		divider: app.Flag("divider", "Text inserted between joined values.").Short('d').Default("").String(),
	}

	handlers := make(map[string]handler, len(commands))
	for _, cmd := range commands {
		clause, h := cmd(c, app)
		handlers[clause.FullCommand()] = h
	}

	input, err := app.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		return 2
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("command", input).Debug("running command")
	return handlers[input](input)
}
