package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholarly-metadata/rdfmap/rdf"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported output formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func runFormats(cmd *cobra.Command, args []string) error {
	for _, name := range rdf.Formats() {
		serializer, err := rdf.GetSerializer(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-4s  %-10s  .%s\n", serializer.Name(), serializer.Description(), serializer.Extension())
	}
	return nil
}
