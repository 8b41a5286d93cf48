package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/image/tiff"

	"github.com/jpfielding/eft.go/pkg/eft"
)

// NewExportCmd creates the export cobra command
func NewExportCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Decode fingerprint images to TIFF/PNG",
		Long:  "Decodes the WSQ image of each selected Type-4 record and writes it as a TIFF or PNG file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			finger, _ := cmd.Flags().GetString("finger")
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runExport(ctx, filePath, finger, format, outDir)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "EFT file path to export from")
	pf.String("finger", "", "finger selector: code 1-14 or a name like right_thumb")
	pf.String("format", "tiff", "output format (tiff|png)")
	pf.StringP("out", "o", ".", "output directory")

	return cmd
}

func runExport(ctx context.Context, filePath, finger, format, outDir string) error {
	if format != "tiff" && format != "png" {
		return fmt.Errorf("unsupported format %q (tiff|png)", format)
	}

	f, err := eft.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	records, err := eft.FilterRecords(f.Type4Records, finger)
	if err != nil {
		return err
	}

	for _, rec := range records {
		img, err := rec.DecodeImage()
		if err != nil {
			return fmt.Errorf("decoding finger %d (IDC %d): %w", rec.FingerPosition, rec.IDC, err)
		}

		gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		copy(gray.Pix, img.Pixels)

		outPath := filepath.Join(outDir, eft.ExportFilename(rec.FingerPosition, format))
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}

		switch format {
		case "png":
			err = png.Encode(out, gray)
		default:
			err = tiff.Encode(out, gray, &tiff.Options{Compression: tiff.Deflate})
		}
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("encoding %s: %w", outPath, err)
		}

		slog.InfoContext(ctx, "exported fingerprint",
			"finger", rec.FingerName(),
			"path", outPath,
			"width", img.Width,
			"height", img.Height)
	}

	return nil
}
