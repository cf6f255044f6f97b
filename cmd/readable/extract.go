package main

import (
	"encoding/json"
	"fmt"

	"github.com/prince50856457/readable"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.ExtractArticle(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, article.Content)

	if len(article.Links) > 0 {
		fmt.Fprintln(deps.Stdout, "\nRelated links:")
		for _, link := range article.Links {
			fmt.Fprintf(deps.Stdout, "  - %s (%s)\n", link.Title, link.URL)
		}
	}

	if len(article.Concepts) > 0 {
		fmt.Fprintln(deps.Stdout, "\nKey concepts:")
		for _, concept := range article.Concepts {
			fmt.Fprintf(deps.Stdout, "  - %s: %s\n", concept.Term, concept.Overview)
		}
	}

	return nil
}
