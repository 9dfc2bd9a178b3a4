package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/open-force/jsonparse"
)

const previewLimit = 48

const inspectLongDescription = `Parse the input document (or stdin), resolve the --path (default: the
document root), and render a table summarizing the node's children.
Scalars print a one-line summary instead.`

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize the children of a node",
		Long:  inspectLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return runInspect(cmd, name)
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, name string) error {
	data, err := readSource(name)
	if err != nil {
		return err
	}

	node, err := decodeDocument(data, viper.GetBool(yamlKey))
	if err != nil {
		return err
	}

	if path := viper.GetString(pathKey); path != "" {
		node, err = node.Resolve(path)
		if err != nil {
			return err
		}
	}

	cmd.Print(renderInspection(node))
	return nil
}

func renderInspection(node *jsonparse.Node) string {
	switch {
	case node.IsObject():
		entries, _ := node.AsMap()
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			child := entries[key]
			rows = append(rows, []string{key, child.Shape().String(), preview(child)})
		}
		return renderChildTable("KEY", rows)

	case node.IsArray():
		items, _ := node.AsList()
		rows := make([][]string, 0, len(items))
		for i, child := range items {
			rows = append(rows, []string{fmt.Sprintf("[%d]", i), child.Shape().String(), preview(child)})
		}
		return renderChildTable("INDEX", rows)
	}

	return fmt.Sprintf("%s: %s\n", node.Shape(), preview(node))
}

func renderChildTable(firstColumn string, rows [][]string) string {
	var tableBuffer strings.Builder

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{firstColumn, "SHAPE", "PREVIEW"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	return tableBuffer.String()
}

// preview renders a short single-line summary of a node's value.
func preview(node *jsonparse.Node) string {
	switch {
	case node.IsObject():
		entries, _ := node.AsMap()
		return fmt.Sprintf("{%d keys}", len(entries))
	case node.IsArray():
		items, _ := node.AsList()
		return fmt.Sprintf("[%d items]", len(items))
	}

	if node.Value() == nil {
		return "null"
	}

	text, err := node.GetStringValue()
	if err != nil {
		return fmt.Sprintf("%v", node.Value())
	}
	if utf8.RuneCountInString(text) > previewLimit {
		return string([]rune(text)[:previewLimit]) + "..."
	}
	return text
}
