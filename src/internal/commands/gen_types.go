package commands

import (
	"flag"
	"fmt"

	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/typegen"
)

const defaultTypesOutput = "generated-types.ts"

// GenTypesCommand writes TypeScript declarations for the API payloads.
type GenTypesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	out string
}

// CreateGenTypesCommand creates a new gen-types command.
func CreateGenTypesCommand() Runner {
	return &GenTypesCommand{}
}

func (c *GenTypesCommand) Name() string {
	return "gen-types"
}

func (c *GenTypesCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("gen-types", flag.ContinueOnError)
	c.fs.StringVar(&c.out, "out", defaultTypesOutput, "Path of the generated TypeScript file")

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.out == "" {
		return fmt.Errorf("-out must not be empty")
	}
	return nil
}

func (c *GenTypesCommand) Run() error {
	if err := typegen.WriteFile(c.out); err != nil {
		return err
	}
	log.Infof("TypeScript types written to %s", c.out)
	return nil
}
