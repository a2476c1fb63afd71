package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/kanajetzt/folio/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	FirstName   string
	LastName    string
	Website     string
	Avatar      string
}

func newInitCmd() *cobra.Command {
	var data scaffoldData

	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Create a starter folio.yaml and .env.example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data.ProjectName = filepath.Base(args[0])
			return runInit(cmd.OutOrStdout(), args[0], data)
		},
	}

	cmd.Flags().StringVar(&data.FirstName, "first-name", "", "first name shown on the page")
	cmd.Flags().StringVar(&data.LastName, "last-name", "", "last name shown on the page")
	cmd.Flags().StringVar(&data.Website, "website", "https://example.com", "absolute URL of the site")
	cmd.Flags().StringVar(&data.Avatar, "avatar", "https://example.com/avatar.png", "absolute URL of the avatar image")
	_ = cmd.MarkFlagRequired("first-name")
	return cmd
}

func runInit(out io.Writer, dir string, data scaffoldData) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Fprintf(out, "Creating folio site: %s\n\n", dir)

	root := "templates"
	funcs := template.FuncMap{"quote": strconv.Quote}

	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := filepath.Join(dir, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")

		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  folio validate --config folio.yaml")
	fmt.Fprintln(out, "  folio serve --config folio.yaml")
	return nil
}
