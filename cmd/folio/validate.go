package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Strictly validate the site profile",
		Long: `Check that website and avatar are absolute http(s) URLs, that the
first name is not blank and that no handle contains whitespace.

Every problem is listed; the command exits non-zero if there are any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prof, err := opts.loadProfile()
			if err != nil {
				return err
			}
			verr := prof.Validate()
			if verr == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			problems := []error{verr}
			if joined, ok := verr.(interface{ Unwrap() []error }); ok {
				problems = joined.Unwrap()
			}
			for _, p := range problems {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", p)
			}
			return errors.New("profile validation failed")
		},
	}
}
