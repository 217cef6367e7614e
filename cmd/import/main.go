// Command import runs a one-shot ContentShake article import against
// the database, outside the HTTP server.
//
//	import [--config config.yml] [--status published] [file]
//
// The file defaults to blog.txt in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/soursync/core/internal/config"
	"github.com/soursync/core/internal/database"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/modules/content/importer"
	"github.com/soursync/core/internal/modules/content/post"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	status := flag.String("status", models.PostStatusPublished, "Post status: draft or published")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = "blog.txt"
	}

	if err := run(*configPath, *status, path); err != nil {
		fmt.Fprintln(os.Stderr, "import failed:", err)
		os.Exit(1)
	}
}

func run(configPath, status, path string) error {
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		return fmt.Errorf("invalid status %q", status)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d bytes from %s\n", len(raw), path)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}

	postSvc := post.NewService(db)
	importSvc := importer.NewService(postSvc, cfg.Import.DefaultAuthor, nil)

	p, err := importSvc.ImportContentShake(string(raw), importer.Options{Status: status})
	if err != nil {
		var conflict *importer.ConflictError
		if errors.As(err, &conflict) {
			return fmt.Errorf("%s (existing id %s)", conflict.Error(), conflict.ExistingID)
		}
		return err
	}

	fmt.Println("Imported post:")
	fmt.Printf("  id:       %s\n", p.ID)
	fmt.Printf("  slug:     %s\n", p.Slug)
	fmt.Printf("  language: %s\n", p.Language)
	fmt.Printf("  title:    %s\n", p.Title)
	fmt.Printf("  status:   %s\n", p.Status)
	fmt.Printf("  headings: %d\n", len(p.TOC))
	return nil
}
