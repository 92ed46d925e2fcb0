package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/constants"
	"github.com/imgprint/imgprint/internal/dedup"
	"github.com/imgprint/imgprint/internal/imghash"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe [directory]",
	Short: "Find near-duplicate images in a directory",
	Long: `Recursively hash every image under the given directory and group files
whose perceptual hashes fall within the Hamming distance threshold.

Examples:
  imgprint dedupe ~/Pictures
  imgprint dedupe --threshold 4 --workers 8 ~/Pictures
  imgprint dedupe --json ~/Pictures`,
	Args: cobra.ExactArgs(1),
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().Int("threshold", -1, "Max Hamming distance for near-duplicates (-1 = config default)")
	dedupeCmd.Flags().Int("workers", 0, "Number of parallel hashing workers (0 = config default)")
	dedupeCmd.Flags().Bool("json", false, "Output as JSON")
}

type duplicateGroup struct {
	Paths []string `json:"paths"`
}

func runDedupe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	threshold := cfg.Dedupe.Threshold
	if v := mustGetInt(cmd, "threshold"); v >= 0 {
		threshold = v
	}
	workers := cfg.Dedupe.Workers
	if v := mustGetInt(cmd, "workers"); v > 0 {
		workers = v
	}

	files, err := collectImages(args[0])
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", args[0], err)
	}
	if len(files) == 0 {
		fmt.Println("No image files found.")
		return nil
	}

	hasher, err := imghash.NewPerceptualHasher(cfg.Hash.Width, cfg.Hash.Height, cfg.Hash.Factor)
	if err != nil {
		return fmt.Errorf("invalid hash configuration: %w", err)
	}

	entries := hashConcurrently(hasher, files, workers)
	groups := dedup.Find(entries, threshold)

	if mustGetBool(cmd, "json") {
		out := make([]duplicateGroup, len(groups))
		for i, group := range groups {
			for _, e := range group {
				out[i].Paths = append(out[i].Paths, e.Path)
			}
		}
		return outputJSON(out)
	}

	if len(groups) == 0 {
		fmt.Printf("No near-duplicates found among %d images (threshold %d).\n", len(files), threshold)
		return nil
	}
	fmt.Printf("Found %d duplicate groups (threshold %d):\n", len(groups), threshold)
	for i, group := range groups {
		fmt.Printf("\nGroup %d:\n", i+1)
		for _, e := range group {
			fmt.Printf("  %s  %s\n", e.Hash.Encode(), e.Path)
		}
	}
	return nil
}

// collectImages walks dir and returns every file with a supported image
// extension, case-insensitively.
func collectImages(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if constants.SupportedExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// hashConcurrently hashes files with a bounded worker pool and a progress
// bar. Files that fail to decode are logged and skipped; a partial scan is
// more useful than none.
func hashConcurrently(hasher imghash.Hasher, files []string, workers int) []dedup.Entry {
	bar := progressbar.Default(int64(len(files)), "hashing")
	results := make([]*dedup.Entry, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				hash, err := hasher.HashFromPath(files[i])
				if err != nil {
					logrus.WithError(err).Warnf("skipping %s", files[i])
				} else {
					results[i] = &dedup.Entry{Path: files[i], Hash: hash}
				}
				_ = bar.Add(1)
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	entries := make([]dedup.Entry, 0, len(files))
	for _, entry := range results {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries
}
