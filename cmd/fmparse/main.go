// Command fmparse parses a front-matter document and prints it as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	miniyaml "github.com/KimNorgaard/go-miniyaml"
)

type cli struct {
	Indent      int    `default:"2" help:"Indent width for JSON output." short:"i"`
	FrontMatter bool   `help:"Treat the input as a document with a leading front matter block." short:"f"`
	Subset      bool   `help:"Parse with the restricted fallback parser instead of the active backend." short:"s"`
	Backend     bool   `help:"Print the active parser backend and exit." short:"b"`
	Body        bool   `help:"With --front-matter, print the document body instead of the parsed block."`
	Source      string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("fmparse"),
		kong.Description("Parse front-matter YAML (or its restricted subset) into JSON."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.run())
}

func (c *cli) run() error {
	if c.Backend {
		fmt.Println(miniyaml.ActiveBackend())
		return nil
	}

	data, err := c.read()
	if err != nil {
		return err
	}

	if c.FrontMatter {
		doc, body, err := c.parseFrontMatter(data)
		if err != nil {
			return err
		}
		if c.Body {
			_, err := os.Stdout.Write(body)
			return err
		}
		return c.print(doc)
	}

	doc, err := c.parse(data)
	if err != nil {
		return err
	}
	return c.print(doc)
}

func (c *cli) read() ([]byte, error) {
	if c.Source == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(c.Source)
}

func (c *cli) parse(data []byte) (map[string]any, error) {
	if c.Subset {
		return miniyaml.ParseSubset(data)
	}
	return miniyaml.Parse(data)
}

func (c *cli) parseFrontMatter(data []byte) (map[string]any, []byte, error) {
	front, body, err := miniyaml.SplitFrontMatter(data)
	if err != nil {
		return nil, nil, err
	}
	doc, err := c.parse(front)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

func (c *cli) print(doc map[string]any) error {
	var out []byte
	var err error
	if c.Indent > 0 {
		out, err = json.MarshalIndent(doc, "", strings.Repeat(" ", c.Indent))
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
