package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	editor "github.com/f4ze/editor"
	"github.com/f4ze/editor/store/sqlite"
	"github.com/f4ze/editor/tool"
)

var applyCmd = &cobra.Command{
	Use:   "apply [script|-]",
	Short: "Replay an edit script against a project",
	Long: `Reads a stream of JSON steps and feeds them through the interactive tools,
then saves the project. Each step names an op:

  {"op":"tool","name":"shape"}       {"op":"shape","name":"circle"}
  {"op":"primary","color":"#ff0000"} {"op":"secondary","color":"#00ff00"}
  {"op":"brush_size","value":8}      {"op":"font","name":"Arial","value":24}
  {"op":"down","x":10,"y":10}        {"op":"move","x":40,"y":40}
  {"op":"up","x":40,"y":40}          {"op":"leave"}
  {"op":"text","x":5,"y":5,"text":"Hello"}
  {"op":"key","name":"z","ctrl":true}
  {"op":"undo"}                      {"op":"redo"}
  {"op":"add_layer","name":"Ink"}    {"op":"layer","id":2}
  {"op":"visible","id":2,"visible":false}
  {"op":"adjust","name":"brightness","value":20}
  {"op":"filter","name":"sepia"}
  {"op":"rotate","clockwise":true}   {"op":"flip","name":"horizontal"}
  {"op":"resize","w":400,"h":300}    {"op":"crop","x":0,"y":0,"w":100,"h":100}`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applyDryRun bool

func init() {
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "run the script without saving")
	rootCmd.AddCommand(applyCmd)
}

// step is one scripted gesture or command.
type step struct {
	Op        string  `json:"op"`
	Name      string  `json:"name"`
	Text      string  `json:"text"`
	Color     string  `json:"color"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	Value     float64 `json:"value"`
	ID        int     `json:"id"`
	Visible   bool    `json:"visible"`
	Clockwise bool    `json:"clockwise"`
	Ctrl      bool    `json:"ctrl"`
	Shift     bool    `json:"shift"`
}

func runApply(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	key := projectKey()
	return withStore(func(st *sqlite.Store) error {
		ed, err := openProject(cmd.Context(), st, key)
		if err != nil {
			return err
		}
		session := tool.NewSession(ed)
		if err := session.SetFont(cfg.Text.Family, cfg.Text.Size); err != nil {
			return err
		}
		n, err := runScript(session, r)
		if err != nil {
			return err
		}
		if applyDryRun {
			cmd.Printf("Ran %d steps (not saved)\n", n)
			return nil
		}
		if err := ed.Save(cmd.Context(), st, key); err != nil {
			return err
		}
		cmd.Printf("Applied %d steps to %s\n", n, key)
		return nil
	})
}

// runScript decodes steps from r until EOF and returns how many ran.
func runScript(s *tool.Session, r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	n := 0
	for {
		var st step
		err := dec.Decode(&st)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("step %d: %w: %w", n+1, editor.ErrInvalidInput, err)
		}
		if err := runStep(s, st); err != nil {
			return n, fmt.Errorf("step %d (%s): %w", n+1, st.Op, err)
		}
		n++
	}
}

func runStep(s *tool.Session, st step) error {
	ed := s.Editor()
	switch st.Op {
	case "tool":
		return s.SelectTool(st.Name)
	case "shape":
		return s.SetShapeKind(st.Name)
	case "primary", "secondary":
		c, err := editor.Hex(st.Color)
		if err != nil {
			return err
		}
		if st.Op == "primary" {
			s.SetPrimary(c)
		} else {
			s.SetSecondary(c)
		}
		return nil
	case "swap":
		s.SwapColors()
		return nil
	case "brush_size":
		return s.SetBrushSize(st.Value)
	case "font":
		return s.SetFont(st.Name, st.Value)
	case "down":
		return s.PointerDown(st.X, st.Y)
	case "move":
		return s.PointerMove(st.X, st.Y)
	case "up":
		return s.PointerUp(st.X, st.Y)
	case "leave":
		s.PointerLeave()
		return nil
	case "text":
		return s.CommitText(st.X, st.Y, st.Text)
	case "key":
		_, err := s.HandleKey(tool.Key{Name: st.Name, Ctrl: st.Ctrl, Shift: st.Shift})
		return err
	case "undo":
		ed.Undo()
		return nil
	case "redo":
		ed.Redo()
		return nil
	case "add_layer":
		_, err := ed.AddLayer(st.Name)
		return err
	case "layer":
		return ed.SetCurrentLayer(st.ID)
	case "visible":
		return ed.SetLayerVisible(st.ID, st.Visible)
	case "adjust":
		kind, err := editor.ParseAdjustment(st.Name)
		if err != nil {
			return err
		}
		return ed.SetAdjustment(kind, int(st.Value))
	case "filter":
		f, err := editor.ParseFilter(st.Name)
		if err != nil {
			return err
		}
		return ed.SetFilter(f)
	case "rotate":
		return ed.Rotate90(st.Clockwise)
	case "flip":
		switch strings.ToLower(st.Name) {
		case "horizontal", "h", "":
			return ed.FlipAxis(true)
		case "vertical", "v":
			return ed.FlipAxis(false)
		}
		return fmt.Errorf("%w: flip axis %q", editor.ErrInvalidInput, st.Name)
	case "resize":
		return ed.ResizeCanvas(int(st.W), int(st.H))
	case "crop":
		return ed.CropTo(editor.Rect{X: st.X, Y: st.Y, W: st.W, H: st.H})
	}
	return fmt.Errorf("%w: unknown op %q", editor.ErrInvalidInput, st.Op)
}
