package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/idle-city/content"
)

// loadContent returns the embedded tables, or the file at path when given
func loadContent(path string) (*content.Content, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

func newContentCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the game content tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective content YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadContent(opts.contentPath)
			if err != nil {
				return err
			}
			data, err := c.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:          "check <file>",
		Short:        "Validate a content file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d upgrades, %d research, %d ores, %d technologies, %d black hole upgrades, %d regions)\n",
				args[0], len(c.Upgrades), len(c.Research), len(c.Ores), len(c.Technology), len(c.Blackhole), len(c.Regions))
			return nil
		},
	})
	return cmd
}
