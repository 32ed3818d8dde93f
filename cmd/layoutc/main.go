// Command layoutc converts layout-encoded binary payloads to and from JSON
// text, inspects them, and manages the layout registry.
//
// Every data command takes its layout from a JSON schema file (--layout)
// or from the registry (--layout-name):
//
//	layoutc decode --layout person.json --in person.bin
//	layoutc encode --layout person.json --in person.json --out person.bin
//	layoutc size --layout-name person --in person.hex --hex
//	layoutc registry put person person.json
//	layoutc view --layout person.json --in person.bin
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := newApp(newTool())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "TOML configuration file",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error), overrides the config file",
	}

	layoutFlag = cli.StringFlag{
		Name:  "layout, l",
		Usage: "JSON schema file describing the layout",
	}
	layoutNameFlag = cli.StringFlag{
		Name:  "layout-name, n",
		Usage: "name of a layout stored in the registry",
	}
	inFlag = cli.StringFlag{
		Name:  "in, i",
		Usage: "input file, - for stdin",
		Value: "-",
	}
	outFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "output file, stdout when empty",
	}
	hexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "binary data is hex text",
	}
)

func newApp(t *tool) *cli.App {
	app := cli.NewApp()
	app.Name = "layoutc"
	app.Usage = "transcode layout-encoded binary data"
	app.Version = "v0.1.0"
	app.Flags = []cli.Flag{configFlag, logLevelFlag}
	app.Before = t.setup
	app.After = t.teardown

	app.Commands = []cli.Command{
		{
			Name:   "decode",
			Usage:  "convert binary data to JSON text",
			Flags:  []cli.Flag{layoutFlag, layoutNameFlag, inFlag, outFlag, hexFlag},
			Action: t.decode,
		},
		{
			Name:   "encode",
			Usage:  "convert JSON text to binary data",
			Flags:  []cli.Flag{layoutFlag, layoutNameFlag, inFlag, outFlag, hexFlag},
			Action: t.encode,
		},
		{
			Name:   "size",
			Usage:  "print the encoded size of the leading value",
			Flags:  []cli.Flag{layoutFlag, layoutNameFlag, inFlag, hexFlag},
			Action: t.size,
		},
		{
			Name:   "validate",
			Usage:  "validate a layout and print its tree",
			Flags:  []cli.Flag{layoutFlag, layoutNameFlag},
			Action: t.validate,
		},
		{
			Name:  "registry",
			Usage: "manage named layouts",
			Subcommands: []cli.Command{
				{
					Name:      "put",
					Usage:     "store a schema file under a name",
					ArgsUsage: "NAME FILE",
					Action:    t.registryPut,
				},
				{
					Name:      "get",
					Usage:     "print a stored schema",
					ArgsUsage: "NAME",
					Action:    t.registryGet,
				},
				{
					Name:   "list",
					Usage:  "list stored names",
					Action: t.registryList,
				},
				{
					Name:      "delete",
					Usage:     "remove a stored layout",
					ArgsUsage: "NAME",
					Action:    t.registryDelete,
				},
			},
		},
		{
			Name:   "view",
			Usage:  "edit binary data interactively",
			Flags:  []cli.Flag{layoutFlag, layoutNameFlag, inFlag, outFlag},
			Action: t.view,
		},
	}
	return app
}
