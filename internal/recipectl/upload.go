package recipectl

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/recipeshare/internal/netx"
	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/spf13/cobra"
)

func NewUploadImageCommand(rootOpts *RootOptions) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload-image <file>",
		Short: "Upload a recipe image to object storage and print its key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			if contentType == "" {
				contentType = detectContentType(args[0], data)
			}

			up, err := services.NewImageService(rootOpts.Config).PresignUpload(cmd.Context(), contentType)
			if err != nil {
				return fmt.Errorf("presign: %w", err)
			}
			if err := netx.PutPresigned(cmd.Context(), up.URL, up.ContentType, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), up.Key)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "content-type", "t", "", "content type (detected when empty)")
	return cmd
}

// detectContentType prefers the file extension and falls back to sniffing.
func detectContentType(path string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
