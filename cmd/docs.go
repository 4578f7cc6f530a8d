package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/vertgenlab/gonomics/exception"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"bioanalyzer":          {title: "bioanalyzer", navOrder: 0},
	"bioanalyzer_parse":    {title: "parse", navOrder: 0, parent: "bioanalyzer"},
	"bioanalyzer_seq":      {title: "seq", navOrder: 1, parent: "bioanalyzer"},
	"bioanalyzer_search":   {title: "search", navOrder: 2, parent: "bioanalyzer"},
	"bioanalyzer_index":    {title: "index", navOrder: 3, parent: "bioanalyzer"},
	"bioanalyzer_suffix":   {title: "suffix", navOrder: 4, parent: "bioanalyzer"},
	"bioanalyzer_assemble": {title: "assemble", navOrder: 5, parent: "bioanalyzer"},
	"bioanalyzer_align":    {title: "align", navOrder: 6, parent: "bioanalyzer"},
}

// docsCmd regenerates the Markdown documentation pages. Hidden from help.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for every command",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		exception.PanicOnErr(os.MkdirAll("./docs", 0755))

		if err := doc.GenMarkdownTreeCustom(rootCmd, "./docs", filePrepender, linkHandler); err != nil {
			stderr.Fatal(err)
		}
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, _ := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}

	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "bioanalyzer" {
		return "/"
	}

	return base
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
