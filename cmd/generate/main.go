// Command generate prints dwipadi couplets built from a word list file or,
// without --words, from the word store.
//
// Flags:
//
//	--words   newline-separated word list (default: read the database)
//	--target  maatra target per line (default: generator.default_target)
//	--count   number of couplets (default: generator.default_count)
//	--seed    random seed; omit for a fresh draw each run
//	--format  text or yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres"
	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/padagalu-backend/internal/app"
	"github.com/heartmarshall/padagalu-backend/internal/app/seeder/padagalu"
	"github.com/heartmarshall/padagalu-backend/internal/config"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
)

type options struct {
	wordsPath string
	target    int
	count     int
	seed      *int64
	format    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	var genCfg config.GeneratorConfig
	if err := cleanenv.ReadEnv(&genCfg); err != nil {
		return fmt.Errorf("read generator config: %w", err)
	}
	if opts.target <= 0 {
		opts.target = genCfg.DefaultTarget
	}
	if opts.count <= 0 {
		opts.count = genCfg.DefaultCount
	}

	pool, err := loadPool(opts.wordsPath)
	if err != nil {
		return err
	}

	couplets := app.NewGenerator(genCfg).Generate(generator.WordsFromStrings(pool), opts.target, opts.count, opts.seed)
	return render(out, opts.format, couplets)
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var (
		opts options
		seed int64
	)
	fs.StringVar(&opts.wordsPath, "words", "", "word list file (default: read the database)")
	fs.IntVar(&opts.target, "target", 0, "maatra target per line")
	fs.IntVar(&opts.count, "count", 0, "number of couplets")
	fs.Int64Var(&seed, "seed", 0, "random seed")
	fs.StringVar(&opts.format, "format", "text", "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seed = &seed
		}
	})
	if opts.format != "text" && opts.format != "yaml" {
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

// loadPool reads the word file, normalising each entry, or falls back to
// the word store configured through the usual environment.
func loadPool(path string) ([]string, error) {
	if path != "" {
		texts, err := padagalu.Parse(path)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(texts))
		for _, t := range texts {
			if n := domain.NormalizeWord(t); n != "" {
				out = append(out, n)
			}
		}
		return out, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return word.New(pool).ListTexts(ctx)
}

func render(out io.Writer, format string, couplets []generator.Couplet) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(couplets); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	if len(couplets) == 0 {
		return errors.New("no couplets: word pool is empty or has no usable words")
	}
	for i, c := range couplets {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%.3f\n%s\n%s\n", c.Score, c.Line1, c.Line2)
	}
	return nil
}
