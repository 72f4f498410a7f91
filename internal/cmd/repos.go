package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
)

// ReposCmd prints the projects the Projects window shows
type ReposCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type repoOutput struct {
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
}

// Run fetches and prints the selected repositories
func (r *ReposCmd) Run(cli *CLI) error {
	projects := cli.Container.ProjectsService
	logging.Logger.Info("Repos command started", "user", projects.User())

	repos, err := projects.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load projects for %s: %w", projects.User(), err)
	}

	if r.Format == "json" {
		return writeReposJSON(os.Stdout, repos)
	}
	writeReposTable(os.Stdout, projects.User(), repos)
	return nil
}

func writeReposJSON(w io.Writer, repos []domain.Repository) error {
	output := make([]repoOutput, 0, len(repos))
	for _, repo := range repos {
		output = append(output, repoOutput{
			Description: repo.Description,
			Language:    repo.Language,
			Name:        repo.Name,
			Stars:       repo.Stars,
			URL:         repo.URL,
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeReposTable(w io.Writer, user string, repos []domain.Repository) {
	fmt.Fprintf(w, "Projects of %s\n\n", user)
	if len(repos) == 0 {
		fmt.Fprintln(w, "No public repositories yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Name\tLanguage\tStars\tURL")
	fmt.Fprintln(tw, "────\t────────\t─────\t───")
	for _, repo := range repos {
		language := repo.Language
		if language == "" {
			language = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", repo.Name, language, repo.Stars, repo.URL)
	}
	tw.Flush()
}
