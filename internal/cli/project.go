package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	editor "github.com/f4ze/editor"
	"github.com/f4ze/editor/store"
	"github.com/f4ze/editor/store/sqlite"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a blank project",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Create a project from an image file",
	Long: `Decodes a PNG, JPEG, GIF, WebP, BMP or TIFF file onto a white background
layer. Images larger than import.max_dimension are scaled down.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Flatten a project into an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project details",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a saved project",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

var (
	newWidth      int
	newHeight     int
	newBackground string

	exportFormat  string
	exportQuality int
)

func init() {
	newCmd.Flags().IntVar(&newWidth, "width", 0, "canvas width (default canvas.width)")
	newCmd.Flags().IntVar(&newHeight, "height", 0, "canvas height (default canvas.height)")
	newCmd.Flags().StringVar(&newBackground, "background", "", "background colour (default canvas.background)")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "png, jpeg, bmp or tiff (default from the file extension)")
	exportCmd.Flags().IntVarP(&exportQuality, "quality", "q", 0, "JPEG quality 1-100")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	if cmd.Flags().Changed("width") {
		w = newWidth
	}
	if cmd.Flags().Changed("height") {
		h = newHeight
	}
	bgHex := cfg.Canvas.Background
	if cmd.Flags().Changed("background") {
		bgHex = newBackground
	}
	bg, err := editor.Hex(bgHex)
	if err != nil {
		return err
	}

	ed, err := newEditor()
	if err != nil {
		return err
	}
	if err := ed.NewCanvas(w, h, bg); err != nil {
		return err
	}
	key := projectKey()
	return withStore(func(st *sqlite.Store) error {
		if err := ed.Save(cmd.Context(), st, key); err != nil {
			return err
		}
		cmd.Printf("Created %s (%dx%d)\n", key, w, h)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ed, err := newEditor()
	if err != nil {
		return err
	}
	if err := ed.ImportImage(f); err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	key := projectKey()
	return withStore(func(st *sqlite.Store) error {
		if err := ed.Save(cmd.Context(), st, key); err != nil {
			return err
		}
		doc := ed.Document()
		cmd.Printf("Imported %s as %s (%dx%d)\n", filepath.Base(args[0]), key, doc.Width(), doc.Height())
		return nil
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	name := exportFormat
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(args[0]), ".")
	}
	format, err := editor.ParseFormat(name)
	if err != nil {
		return err
	}

	return withStore(func(st *sqlite.Store) error {
		ed, err := openProject(cmd.Context(), st, projectKey(),
			editor.WithCodec(editor.DefaultCodec{JPEGQuality: exportQuality}))
		if err != nil {
			return err
		}
		data, err := ed.ExportBytes(format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return err
		}
		cmd.Printf("Exported %s (%s, %d bytes)\n", args[0], format, len(data))
		return nil
	})
}

func runList(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *sqlite.Store) error {
		keys, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			cmd.Println("No projects found")
			return nil
		}
		for _, k := range keys {
			e, err := st.Stat(cmd.Context(), k)
			if err != nil {
				return err
			}
			cmd.Printf("  %s\t%d bytes\t%s\n", k, e.Size, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		cmd.Printf("Total: %d projects\n", len(keys))
		return nil
	})
}

func runInfo(cmd *cobra.Command, _ []string) error {
	key := projectKey()
	return withStore(func(st *sqlite.Store) error {
		data, err := st.Get(cmd.Context(), key)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no project named %q", key)
		}
		if err != nil {
			return err
		}
		info, err := editor.ReadProjectInfo(data)
		if err != nil {
			return err
		}
		cmd.Printf("Project: %s\n", info.Name)
		cmd.Printf("Key:     %s\n", key)
		cmd.Printf("Saved:   %s\n", info.Date.Format("2006-01-02 15:04:05"))
		cmd.Printf("Canvas:  %dx%d\n", info.Width, info.Height)
		cmd.Printf("Layers:  %d\n", len(info.Layers))
		for i := len(info.Layers) - 1; i >= 0; i-- {
			cmd.Printf("  %d. %s\n", i+1, info.Layers[i])
		}
		return nil
	})
}

func runDelete(cmd *cobra.Command, _ []string) error {
	key := projectKey()
	return withStore(func(st *sqlite.Store) error {
		if err := st.Delete(cmd.Context(), key); err != nil {
			return err
		}
		cmd.Printf("Deleted %s\n", key)
		return nil
	})
}
