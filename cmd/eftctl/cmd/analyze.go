package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/eft.go/pkg/eft"
)

// NewAnalyzeCmd creates the analyze cobra command
func NewAnalyzeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze EFT file structure",
		Long:  "Parses and displays transaction metadata, subject demographics, and the fingerprint records of an EFT file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runAnalyze(filePath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "EFT file path to analyze")

	return cmd
}

// runAnalyze parses the file and prints its structure
func runAnalyze(filePath string) error {
	f, err := eft.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Printf("File size: %d bytes\n\n", f.FileSize)

	fmt.Println("=== Transaction (Type-1) ===")
	for _, field := range f.Type1.Fields {
		fmt.Printf("%-8s %s\n", field.Tag, printable(field.Value))
	}
	fmt.Println()

	fmt.Println("=== Subject (Type-2) ===")
	t2 := f.Type2
	if t2.Name != nil {
		fmt.Printf("Name: %s\n", t2.Name.FullName())
	}
	fmt.Printf("DOB: %s\n", eft.FormatDate(t2.DOB))
	if t2.Sex != "" {
		fmt.Printf("Sex: %s\n", eft.SexName(t2.Sex))
	}
	if t2.Race != "" {
		fmt.Printf("Race: %s\n", eft.RaceName(t2.Race))
	}
	if t2.EyeColor != "" {
		fmt.Printf("Eyes: %s\n", eft.EyeColorName(t2.EyeColor))
	}
	if t2.HairColor != "" {
		fmt.Printf("Hair: %s\n", eft.HairColorName(t2.HairColor))
	}
	if t2.Height != "" {
		fmt.Printf("Height: %s\n", eft.FormatHeight(t2.Height))
	}
	if t2.Weight != nil {
		fmt.Printf("Weight: %d lbs\n", *t2.Weight)
	}
	if t2.DateCaptured != nil {
		fmt.Printf("Captured: %s\n", eft.FormatDate(t2.DateCaptured))
	}
	if t2.Scanner != nil {
		fmt.Printf("Scanner: %s %s (SN %s)\n", t2.Scanner.Make, t2.Scanner.Model, t2.Scanner.Serial)
	}
	fmt.Println()

	fmt.Printf("=== Fingerprints (%d Type-4 records) ===\n", len(f.Type4Records))
	for i, rec := range f.Type4Records {
		fmt.Printf("\n--- Record %d ---\n", i)
		fmt.Printf("IDC: %d\n", rec.IDC)
		fmt.Printf("Finger: %s (%d)\n", rec.FingerName(), rec.FingerPosition)
		fmt.Printf("Impression: %s\n", rec.ImpressionName())
		fmt.Printf("Dimensions: %dx%d @ %d PPI\n", rec.Width, rec.Height, rec.PPI())
		fmt.Printf("Compression: %s\n", rec.CompressionName())
		fmt.Printf("Image data: %d bytes\n", len(rec.ImageData))
		if len(rec.ImageData) > 20 {
			fmt.Printf("First 20 bytes: % X\n", rec.ImageData[:20])
		}
	}

	return nil
}

// printable masks the ASCII control separators so raw Type-1 values render
// on one line.
func printable(v string) string {
	out := []rune(v)
	for i, r := range out {
		switch r {
		case eft.FS, eft.GS, eft.RS:
			out[i] = '|'
		case eft.US:
			out[i] = '/'
		}
	}
	return string(out)
}
