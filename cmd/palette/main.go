// Command palette prints the outfit recommendations for a set of colours
// without starting the server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

type options struct {
	Upper    string
	Lower    string
	Shoe     string
	Occasion string
	Format   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "palette: %v\n", err)
		return 2
	}

	palette := entities.Palette{
		Upper: valueobjects.Color(opts.Upper),
		Lower: valueobjects.Color(opts.Lower),
		Shoe:  valueobjects.Color(opts.Shoe),
	}
	occasion := valueobjects.Occasion(opts.Occasion)

	recs := services.NewRecommendationDomainService().Generate(palette, occasion, entities.ImageSet{})

	report := newReport(occasion, recs)
	switch opts.Format {
	case "json":
		err = renderJSON(stdout, report)
	case "yaml":
		err = renderYAML(stdout, report)
	default:
		err = renderText(stdout, report)
	}
	if err != nil {
		fmt.Fprintf(stderr, "palette: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Upper, "upper", "", "upper wear color, e.g. #FF0000")
	fs.StringVar(&opts.Lower, "lower", "", "lower wear color")
	fs.StringVar(&opts.Shoe, "shoe", "", "footwear color")
	fs.StringVar(&opts.Occasion, "occasion", "", "outing, dating, function or movie")
	fs.StringVar(&opts.Format, "format", "text", "output format: text, json or yaml")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.Format {
	case "text", "json", "yaml":
	default:
		return opts, fmt.Errorf("unknown format %q", opts.Format)
	}
	return opts, nil
}
