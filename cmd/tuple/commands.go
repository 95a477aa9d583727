package main

import (
	"os"

	"github.com/geofduf/tuple/sequence"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func buildCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("build", "prints a sequence of n copies of a value")
	value := cmd.Arg("value", "value to repeat").Required().String()
	n := cmd.Arg("n", "length of the sequence").Required().Int()

	return cmd, func(string) int {
		c.println(sequence.Join(sequence.Build(*value, *n), *c.divider))
		return 0
	}
}

func joinCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("join", "prints items joined by the divider")
	items := cmd.Arg("items", "items of the sequence").Strings()

	return cmd, func(string) int {
		c.println(sequence.Join(sequence.Of(*items...), *c.divider))
		return 0
	}
}

func reverseCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("reverse", "prints items in reverse order")
	items := cmd.Arg("items", "items of the sequence").Strings()

	return cmd, func(string) int {
		c.println(sequence.Join(sequence.Of(*items...).Reverse(), *c.divider))
		return 0
	}
}

func atCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("at", "prints the item at an index, negative indices counting from the end (use -- before a negative index)")
	index := cmd.Arg("index", "index of the item").Required().Int()
	items := cmd.Arg("items", "items of the sequence").Strings()

	return cmd, func(string) int {
		v, err := sequence.Of(*items...).At(*index)
		if err != nil {
			c.log.WithError(err).Error("at failed")
			return 1
		}
		c.println(v)
		return 0
	}
}

func lenCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("len", "prints the number of characters of a text")
	text := cmd.Arg("text", "text to measure").Required().String()

	return cmd, func(string) int {
		c.println(sequence.TextLength(*text))
		return 0
	}
}

func runCommand(c *cli, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("run", "executes the statements of a YAML script and prints every resulting sequence")
	path := cmd.Arg("script", "path to the script").Required().String()

	return cmd, func(string) int {
		data, err := os.ReadFile(*path)
		if err != nil {
			c.log.WithError(errors.Wrap(err, "cannot read script")).Error("run failed")
			return 1
		}
		sc, err := parseScript(data)
		if err != nil {
			c.log.WithError(err).WithField("script", *path).Error("run failed")
			return 1
		}
		return c.execute(sc)
	}
}

// execute runs the statements of sc against a new store and prints every
// sequence it holds afterwards.
func (c *cli) execute(sc script) int {
	divider := *c.divider
	if sc.Divider != nil {
		divider = *sc.Divider
	}
	statements, err := sc.statements()
	if err != nil {
		c.log.WithError(err).Error("run failed")
		return 1
	}
	for i, st := range sc.Statements {
		c.log.WithFields(logrus.Fields{"statement": i, "key": st.Key, "op": st.Op}).Debug("queued statement")
	}

	store := sequence.NewStore[string]()
	report, err := store.Batch(statements)
	for _, r := range report {
		c.log.Warn(r)
	}

	for _, k := range store.Keys() {
		s, _ := store.Get(k)
		c.println(k + ": " + sequence.Join(s, divider))
	}
	if err != nil {
		c.log.WithError(err).Error("run failed")
		return 1
	}
	return 0
}
