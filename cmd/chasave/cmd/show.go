package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/chasave/pkg/codec"
)

type fieldView struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

type slotView struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
	Tag   byte   `json:"tag" yaml:"tag"`
	ID    *int64 `json:"id,omitempty" yaml:"id,omitempty"`
}

type saveView struct {
	Path       string      `json:"path" yaml:"path"`
	Nickname   string      `json:"nickname" yaml:"nickname"`
	Sex        string      `json:"sex" yaml:"sex"`
	Appearance []fieldView `json:"appearance" yaml:"appearance"`
	QuickSlots []slotView  `json:"quickslots" yaml:"quickslots"`
	Cosmetic   []fieldView `json:"cosmetic" yaml:"cosmetic"`
	PrefixSize int         `json:"prefix_size" yaml:"prefix_size"`
	TailSize   int         `json:"tail_size" yaml:"tail_size"`
}

// schemaFields renders every field of rec. char fields go through char, which
// maps the stored byte to the rune the client shows.
func schemaFields[T any](schema codec.Schema[T], rec *T, char func(*T) rune) []fieldView {
	out := make([]fieldView, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		text := fmt.Sprint(f.Value(rec))
		if f.Kind == codec.KindChar && char != nil {
			text = fmt.Sprintf("%q", char(rec))
		}
		out = append(out, fieldView{Name: f.Name, Type: f.Kind.String(), Value: text})
	}
	return out
}

func newSaveView(path string, s *codec.SaveFile, tail codec.Tail) saveView {
	view := saveView{
		Path:       path,
		Nickname:   s.Nickname(),
		Sex:        s.Sex().String(),
		Appearance: schemaFields(codec.AppearanceSchema, &s.Appearance, (*codec.AppearanceRecord).BodyTypeRune),
		Cosmetic:   schemaFields(codec.CosmeticSchema, &s.Cosmetic, nil),
		PrefixSize: s.PrefixSize(),
		TailSize:   len(tail),
	}
	for i, slot := range s.QuickSlots {
		sv := slotView{Index: i, Kind: slot.Kind().String(), Tag: slot.Tag()}
		if id, ok := slot.ItemID(); ok {
			v := int64(id)
			sv.ID = &v
		} else if id, ok := slot.SkillID(); ok {
			v := int64(id)
			sv.ID = &v
		}
		view.QuickSlots = append(view.QuickSlots, sv)
	}
	return view
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the decoded contents of a save",
		Long: `Decode a character save and print every known field.

The tail of the file is not interpreted; only its size is shown.

Examples:
  chasave show 0.cha
  chasave show 0.cha -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, tail, err := codec.ReadFile(path)
			if err != nil {
				return describeError(err)
			}
			a.log.Debug("save decoded", zap.String("path", path), zap.Int("tail", len(tail)))

			view := newSaveView(path, s, tail)
			out := cmd.OutOrStdout()
			if done, err := printStructured(out, a.opts.Format, view); done {
				return err
			}

			w := newTable(out)
			fmt.Fprintf(w, "FILE\t%s\n", view.Path)
			fmt.Fprintf(w, "NICKNAME\t%s\n", view.Nickname)
			fmt.Fprintf(w, "SEX\t%s\n", view.Sex)
			fmt.Fprintf(w, "PREFIX\t%d bytes\n", view.PrefixSize)
			fmt.Fprintf(w, "TAIL\t%d bytes\n", view.TailSize)
			fmt.Fprintln(w)
			fmt.Fprintln(w, "FIELD\tTYPE\tVALUE")
			for _, f := range view.Appearance {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Type, f.Value)
			}
			for _, f := range view.Cosmetic {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Type, f.Value)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "SLOT\tCONTENT")
			for i, slot := range s.QuickSlots {
				fmt.Fprintf(w, "%d\t%s\n", i, slot)
			}
			return w.Flush()
		},
	}
}
