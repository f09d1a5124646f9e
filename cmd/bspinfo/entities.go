package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/vbsp"
	"github.com/arloliu/vbsp/container"
	"github.com/arloliu/vbsp/entity"
)

func newEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entities <map.bsp>",
		Short: "List the entities of a map",
		Long: `List the entities of a map.

The yaml format prints typed records for known classes and the raw
properties for others. The text format prints the raw properties only.`,
		Args: cobra.ExactArgs(1),
		RunE: runEntities,
	}
	cmd.Flags().String("class", "", "Only show entities of this classname")
	cmd.Flags().String("format", "yaml", "Output format: yaml, text")

	return cmd
}

// entityDoc is the yaml document written for one entity.
type entityDoc struct {
	ClassName  string            `yaml:"classname"`
	Record     entity.Entity     `yaml:"record,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
	Error      string            `yaml:"error,omitempty"`
}

func runEntities(cmd *cobra.Command, args []string) error {
	class, _ := cmd.Flags().GetString("class")
	format, _ := cmd.Flags().GetString("format")

	var write func(io.Writer, entity.RawEntity) error
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		write = func(_ io.Writer, raw entity.RawEntity) error {
			return enc.Encode(newEntityDoc(raw))
		}
	case "text":
		write = writeEntityText
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	data, err := vbsp.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("open map: %w", err)
	}
	ents, err := vbsp.ReadEntities(data, container.WithLogger(newLogger(cmd)))
	if err != nil {
		return fmt.Errorf("read entities: %w", err)
	}

	for raw := range ents.All() {
		if class != "" && raw.ClassName() != class {
			continue
		}
		if err := write(cmd.OutOrStdout(), raw); err != nil {
			return err
		}
	}

	return nil
}

func newEntityDoc(raw entity.RawEntity) entityDoc {
	doc := entityDoc{ClassName: raw.ClassName()}

	ent, err := raw.Parse()
	switch e := ent.(type) {
	case nil:
		doc.Properties = raw.Map()
		doc.Error = err.Error()
	case *entity.Unknown:
		doc.Properties = e.Raw.Map()
	default:
		doc.Record = ent
	}

	return doc
}

func writeEntityText(w io.Writer, raw entity.RawEntity) error {
	if _, err := fmt.Fprintln(w, "{"); err != nil {
		return err
	}
	for k, v := range raw.Properties() {
		if _, err := fmt.Fprintf(w, "  %q %q\n", k, v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}
