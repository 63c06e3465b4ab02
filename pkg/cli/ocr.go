package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/dark-instruments/pkg/ocr"
)

func imageFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "image",
		Aliases: []string{"i"},
		Usage:   "Search this image file instead of capturing the screen",
	}
}

var ocrCommand = &cli.Command{
	Name:  "ocr",
	Usage: "Find text on the screen or in an image",
	Description: `Recognition is limited to the characters of TEXT and matches whole
words exactly.

Examples:
  dark-instruments ocr contains OK
  dark-instruments ocr find Settings --image screen.png`,
	Subcommands: []*cli.Command{
		{
			Name:      "contains",
			Usage:     "Print whether TEXT is on screen",
			ArgsUsage: "TEXT",
			Flags:     []cli.Flag{imageFlag()},
			Action:    runOCRContains,
		},
		{
			Name:      "find",
			Usage:     "Print the center X,Y of every occurrence of TEXT",
			ArgsUsage: "TEXT",
			Flags:     []cli.Flag{imageFlag()},
			Action:    runOCRFind,
		},
	},
}

// ocrTarget returns the search text and the image to search.
func ocrTarget(c *cli.Context) (string, *ocr.Image, error) {
	if c.NArg() == 0 {
		return "", nil, errors.New("text is required")
	}
	text := strings.Join(c.Args().Slice(), " ")

	if path := c.String("image"); path != "" {
		img, err := newInstruments(c).OCRFile(path)
		return text, img, err
	}

	in, a, err := connect(c)
	if err != nil {
		return "", nil, err
	}
	img, err := in.OCRScreen(a)
	return text, img, err
}

func runOCRContains(c *cli.Context) error {
	text, img, err := ocrTarget(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout(c), img.ContainsText(text))
	return nil
}

func runOCRFind(c *cli.Context) error {
	text, img, err := ocrTarget(c)
	if err != nil {
		return err
	}
	xs, ys, ok := img.XYPositionsOf(text)
	if !ok {
		return fmt.Errorf("ocr failed for %q", text)
	}
	if len(xs) == 0 {
		printWarning(c, fmt.Sprintf("%q not found", text))
		return nil
	}
	for i := range xs {
		fmt.Fprintf(stdout(c), "%d,%d\n", xs[i], ys[i])
	}
	return nil
}
