package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
)

// RoutesCommand prints the REST contract table.
type RoutesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	out io.Writer
}

// CreateRoutesCommand creates a new routes command.
func CreateRoutesCommand() Runner {
	return &RoutesCommand{out: os.Stdout}
}

func (c *RoutesCommand) Name() string {
	return "routes"
}

func (c *RoutesCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("routes", flag.ContinueOnError)
	return c.fs.Parse(args)
}

func (c *RoutesCommand) Run() error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMETHOD\tPATH\tINPUT\tRESPONSES")

	for _, route := range contract.Routes() {
		statuses := make([]string, 0, len(route.Responses))
		for _, code := range route.Statuses() {
			statuses = append(statuses, strconv.Itoa(code)+":"+typeName(route.Responses[code]))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			route.Name, route.Method, route.Path, typeName(route.Input), strings.Join(statuses, " "))
	}

	return tw.Flush()
}

// typeName renders a contract payload type, "-" for no body.
func typeName(v any) string {
	if v == nil {
		return "-"
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Slice {
		return "[]" + t.Elem().Name()
	}
	return t.Name()
}
