package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kanajetzt/folio"
)

func newShowCmd(opts *globalOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved site profile",
		Long: `Print the site profile after config, env overrides and bio
interpolation have been applied.

Formats:
  text   human-readable; unused social handles are omitted
  json   the same document served at /profile.json
  yaml   the same fields as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prof, err := opts.loadProfile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeProfileText(out, prof)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(prof.Fields())
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(prof.Fields()); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func writeProfileText(w io.Writer, prof folio.SiteProfile) error {
	rows := [][2]string{
		{"Name", prof.Name()},
		{"Website", prof.Website()},
		{"Avatar", prof.Avatar()},
	}
	for _, l := range prof.SocialLinks() {
		rows = append(rows, [2]string{l.Label, fmt.Sprintf("%s (%s)", l.Handle, l.URL)})
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", r[0]+":", r[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s", prof.Bio())
	return err
}
