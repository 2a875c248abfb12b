package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Build the corpus and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSpinner("Building recipe corpus...")
		s.Start()
		svc, cfg, err := buildService(cmd.Context())
		s.Stop()
		if err != nil {
			return err
		}

		fmt.Printf("Source: %s (pages %d-%d)\n", cfg.Source.Path, cfg.Source.PageStart, cfg.Source.PageEnd)
		fmt.Printf("Indexed recipes: %d\n", svc.CorpusSize())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)
}
