package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/setanarut/wavebuilder"
	"github.com/setanarut/wavebuilder/utils"
)

var (
	opt           = wavebuilder.DefaultOptions()
	outPath       string
	palettePath   string
	paletteMethod string
	randomFile    string
	seed          int64
	limit         int
	retries       int
)

var imageExts = []string{".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp"}

var rootCmd = &cobra.Command{
	Use:   "wavebuilder <input image or xml>",
	Short: "Generate an image that locally resembles a sample",
	Long: `Generate an image whose every N×N window appears in the sample image
(overlapping wave function collapse). Tiled models described in xml are not
implemented yet.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkInput(args[0]); err != nil {
			log.Fatal(err)
		}
		img, err := utils.ReadImage(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if opt.PaletteMethod, err = utils.ParsePaletteMethod(paletteMethod); err != nil {
			log.Fatal(err)
		}
		opt.Symmetry = clampSymmetry(opt.Symmetry)
		if randomFile != "" {
			f, err := os.Open(randomFile)
			if err != nil {
				log.Fatal(err)
			}
			src, err := wavebuilder.ReadReplaySource(f)
			f.Close()
			if err != nil {
				log.Fatalf("%s: %v", randomFile, err)
			}
			opt.Random = src
		}

		model, err := wavebuilder.NewOverlappingModel(img, opt)
		if err != nil {
			log.Fatal(err)
		}
		result, used := generate(model, seed, limit, retries)
		if result != wavebuilder.Succeeded {
			log.Fatalf("%s with seeds %d..%d", result, seed, used)
		}
		out, err := model.Image()
		if err != nil {
			log.Fatal(err)
		}
		if err := utils.SaveImage(out, outPath); err != nil {
			log.Fatal(err)
		}
		if palettePath != "" {
			palette := slices.Clone(model.Catalog().Palette)
			utils.SortPaletteByBrightness(palette)
			if err := utils.SavePalette(palette, 32, palettePath); err != nil {
				log.Fatal(err)
			}
		}
		if opt.Verbose {
			log.Printf("wrote %s (seed %d)", outPath, used)
		}
	},
}

// Execute runs the root command and exits non-zero on flag errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&opt.N, "n", "n", opt.N, "Pattern size")
	f.IntVarP(&opt.Width, "width", "W", opt.Width, "Output width")
	f.IntVarP(&opt.Height, "height", "H", opt.Height, "Output height")
	f.BoolVar(&opt.PeriodicInput, "periodic-input", opt.PeriodicInput, "Wrap the sample when collecting patterns")
	f.BoolVar(&opt.PeriodicOutput, "periodic-output", opt.PeriodicOutput, "Generate a seamlessly tiling output")
	f.IntVar(&opt.Symmetry, "symmetry", opt.Symmetry, "Symmetry variants per pattern, clamped to 1-8")
	f.IntVar(&opt.Ground, "ground", opt.Ground, "Pattern forced along the bottom row (0 disables, negative counts from the end)")
	f.IntVar(&opt.MaxColors, "colors", 0, "Reduce the sample to this many colors first (0 keeps all)")
	f.StringVar(&paletteMethod, "palette-method", "dominantcolor", "Color reduction method: dominantcolor or kmeans")
	f.BoolVarP(&opt.Verbose, "verbose", "v", false, "Log progress")
	f.Int64Var(&seed, "seed", 0, "Seed of the first attempt")
	f.IntVar(&limit, "limit", 0, "Maximum observations per attempt (0 = unbounded)")
	f.IntVar(&retries, "retries", 10, "Attempts before giving up, each with the next seed")
	f.StringVarP(&outPath, "out", "o", "out.png", "Output png file")
	f.StringVar(&palettePath, "palette-out", "", "Also write the sample palette as a png strip")
	f.StringVar(&randomFile, "random-file", "", "Replay random values from this file, one per line")
}

// checkInput rejects inputs the overlapping model cannot read.
func checkInput(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(imageExts, ext):
		return nil
	case ext == ".xml":
		return fmt.Errorf("%s: %w", path, wavebuilder.ErrTiledModel)
	default:
		return fmt.Errorf("%s: %w", path, wavebuilder.ErrUnsupportedInput)
	}
}

func clampSymmetry(s int) int {
	return max(1, min(8, s))
}

// generate runs up to attempts solves with consecutive seeds and returns the
// last result with the seed that produced it.
func generate(model *wavebuilder.OverlappingModel, seed int64, limit, attempts int) (wavebuilder.Result, int64) {
	attempts = max(attempts, 1)
	result := wavebuilder.Running
	s := seed
	for i := 0; i < attempts; i++ {
		s = seed + int64(i)
		result = model.Run(s, limit)
		if result == wavebuilder.Succeeded {
			break
		}
		if opt.Verbose {
			log.Printf("attempt %d (seed %d): %s", i+1, s, result)
		}
	}
	return result, s
}
