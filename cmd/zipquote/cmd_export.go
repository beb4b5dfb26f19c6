package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kaosom/zipquote/internal/adapter/renderer"
	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/spf13/cobra"
)

var errXLSXPremium = fmt.Errorf("XLSX export is a premium feature. Upgrade for $%.2f/mo", entities.PremiumPrice)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write an estimate as an HTML page or an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			e, err := a.sync.Get(ctx, args[0])
			if err != nil {
				return err
			}

			var data []byte
			var mediaType string
			switch strings.ToLower(format) {
			case "html":
				mediaType = renderer.MediaTypeHTML
				data, err = exportHTML(e)
			case "xlsx":
				if !a.sessions.CurrentSession(ctx).Premium {
					return errXLSXPremium
				}
				mediaType = renderer.MediaTypeXLSX
				data, err = renderer.Workbook(e)
			default:
				return fmt.Errorf("unknown format %q (html or xlsx)", format)
			}
			if err != nil {
				return err
			}

			if out == "" {
				out = "estimate-" + shortID(e.ID) + renderer.Extension(mediaType)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "html or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: estimate-<id>.<ext>)")
	return cmd
}

// exportHTML reuses the document stored at save time and renders it again
// only when the estimate has none.
func exportHTML(e entities.Estimate) ([]byte, error) {
	if e.RenderedDocument != "" {
		mediaType, data, err := renderer.DecodeDataURI(e.RenderedDocument)
		if err == nil && mediaType == renderer.MediaTypeHTML {
			return data, nil
		}
		if err != nil && !errors.Is(err, renderer.ErrNotDataURI) {
			return nil, err
		}
	}
	return renderer.NewHTMLRenderer().Page(e)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
