package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imgprint",
	Short: "A CLI tool for perceptual image hashing",
	Long: `Imgprint computes compact perceptual fingerprints of images. Visually
similar images produce near-identical fingerprints even after resizing or
recompression, which makes the fingerprints useful for duplicate detection
and similarity lookups via Hamming distance.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
