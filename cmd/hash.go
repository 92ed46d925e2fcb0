package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/imghash"
)

var hashCmd = &cobra.Command{
	Use:   "hash [files...]",
	Short: "Compute perceptual hashes of image files",
	Long: `Compute a perceptual hash for each given image file and print it as a
fixed-width hexadecimal string.

Examples:
  # Hash a single image with the default 64-bit pHash
  imgprint hash photo.jpg

  # Hash with the difference-hash algorithm instead
  imgprint hash --algorithm dhash photo.jpg

  # Use the high-resolution preset and JSON output
  imgprint hash --preset detail --json *.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().String("algorithm", "", "Hash algorithm: phash, ahash or dhash (default from config)")
	hashCmd.Flags().String("preset", "", "Named hash geometry preset (default, detail, fast)")
	hashCmd.Flags().Int("width", 0, "Hash width in bits (0 = config default)")
	hashCmd.Flags().Int("height", 0, "Hash height in bits (0 = config default)")
	hashCmd.Flags().Int("factor", 0, "Oversampling factor for phash (0 = config default)")
	hashCmd.Flags().Bool("json", false, "Output as JSON")
}

type hashResult struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
}

func runHash(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	hasher, algorithm, err := buildHasher(cmd, cfg)
	if err != nil {
		return err
	}

	jsonOutput := mustGetBool(cmd, "json")
	results := make([]hashResult, 0, len(args))
	for _, path := range args {
		hash, err := hasher.HashFromPath(path)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", path, err)
		}
		results = append(results, hashResult{Path: path, Algorithm: algorithm, Hash: hash.Encode()})
	}

	if jsonOutput {
		return outputJSON(results)
	}
	for _, r := range results {
		fmt.Printf("%s  %s\n", r.Hash, r.Path)
	}
	return nil
}

// buildHasher resolves the hash geometry (config, then preset, then explicit
// flags) and constructs the requested algorithm.
func buildHasher(cmd *cobra.Command, cfg *config.Config) (imghash.Hasher, string, error) {
	width := cfg.Hash.Width
	height := cfg.Hash.Height
	factor := cfg.Hash.Factor

	if name := mustGetString(cmd, "preset"); name != "" {
		preset, ok := cfg.GetPreset(name)
		if !ok {
			return nil, "", fmt.Errorf("unknown preset %q", name)
		}
		width, height, factor = preset.Width, preset.Height, preset.Factor
	}
	if v := mustGetInt(cmd, "width"); v > 0 {
		width = v
	}
	if v := mustGetInt(cmd, "height"); v > 0 {
		height = v
	}
	if v := mustGetInt(cmd, "factor"); v > 0 {
		factor = v
	}

	algorithm := cfg.Hash.Algorithm
	if v := mustGetString(cmd, "algorithm"); v != "" {
		algorithm = v
	}

	var hasher imghash.Hasher
	var err error
	switch algorithm {
	case "phash":
		hasher, err = imghash.NewPerceptualHasher(width, height, factor)
	case "ahash":
		hasher, err = imghash.NewAverageHasher(width, height)
	case "dhash":
		hasher, err = imghash.NewDifferenceHasher(width, height)
	default:
		return nil, "", fmt.Errorf("unknown algorithm %q (want phash, ahash or dhash)", algorithm)
	}
	if err != nil {
		return nil, "", err
	}
	return hasher, algorithm, nil
}

// outputJSON pretty-prints v to stdout.
func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
