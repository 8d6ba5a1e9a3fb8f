package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/duetodo/internal/model"
	"github.com/idilsaglam/duetodo/internal/ui"
	"github.com/idilsaglam/duetodo/internal/view"
)

const listHint = "Tip: add with `todo add \"Buy milk\" --due 2025-01-01`"

func newAddCmd(app *App) *cobra.Command {
	var due string
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new todo (text can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("add: empty text")
			}
			d, err := parseDue(due)
			if err != nil {
				return err
			}
			if _, err := app.svc.Add(text, d); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := app.renderer.Render()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(tree, group)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index|id>",
		Short: "Toggle completion of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := app.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.svc.ToggleComplete(td.ID); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "toggled")
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index|id>",
		Aliases: []string{"delete"},
		Short:   "Remove a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := app.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.svc.Delete(td.ID); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var (
		text     string
		due      string
		clearDue bool
	)
	cmd := &cobra.Command{
		Use:   "edit <index|id>",
		Short: "Change the text or due date of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := app.lookup(cmd, args[0])
			if err != nil {
				return err
			}
			newText, newDue := td.Text, td.DueDate
			if cmd.Flags().Changed("text") {
				newText = text
			}
			if strings.TrimSpace(newText) == "" {
				return errors.New("edit: empty text")
			}
			if cmd.Flags().Changed("due") {
				if newDue, err = parseDue(due); err != nil {
					return err
				}
			}
			if clearDue {
				newDue = ""
			}
			if err := app.svc.Update(td.ID, newText, newDue); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New text")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var (
		render bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print todos as a Markdown checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := markdown(app.renderer.Render())
			if render {
				md = ui.RenderMarkdown(md, width)
			}
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Render the Markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")
	return cmd
}

func (app *App) lookup(cmd *cobra.Command, ref string) (model.Todo, error) {
	td, err := resolveRef(app.svc.List(), ref)
	if err != nil {
		hint(cmd.ErrOrStderr())
	}
	return td, err
}

func hint(w io.Writer) {
	ui.Hint(w, "Hint: run `todo ls` to see valid indexes")
}

func parseDue(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid due date %q: want YYYY-MM-DD", s)
	}
	return s, nil
}

// -------------- rendering helpers --------------

func listLines(tree view.Tree, group bool) []string {
	t := ui.Current()
	done, pending := tree.Summary()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(done, done+pending, 28)), ""}
	if group {
		lines = append(lines, groupLines(tree)...)
	} else {
		lines = append(lines, flatLines(tree.Rows, 1)...)
	}
	lines = append(lines, "", t.Muted.Render(listHint))
	return lines
}

// flatLines numbers rows starting at first so indexes stay valid for done/rm.
func flatLines(rows []view.Row, first int) []string {
	if len(rows) == 0 {
		return []string{ui.Current().Muted.Render("no todos")}
	}
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		idx := ui.Current().Muted.Render(fmt.Sprintf("%2d.", first+i))
		out = append(out, idx+" "+ui.RowLine(r, 96))
	}
	return out
}

func groupLines(tree view.Tree) []string {
	t := ui.Current()
	var lines []string
	for _, section := range []struct {
		title   string
		checked bool
	}{{"Pending", false}, {"Done", true}} {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(section.title))
		n := 0
		for i, r := range tree.Rows {
			if r.Checked == section.checked {
				lines = append(lines, flatLines([]view.Row{r}, i+1)...)
				n++
			}
		}
		if n == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
		}
	}
	return lines
}

func markdown(tree view.Tree) string {
	var b strings.Builder
	b.WriteString("# Todos\n\n")
	if tree.Empty {
		b.WriteString("_Nothing to do._\n")
		return b.String()
	}
	for _, r := range tree.Rows {
		box := "[ ]"
		if r.Checked {
			box = "[x]"
		}
		fmt.Fprintf(&b, "- %s %s", box, r.Text)
		if r.Due != nil {
			if r.Due.Overdue {
				fmt.Fprintf(&b, " (**overdue** %s)", r.Due.Label)
			} else {
				fmt.Fprintf(&b, " (due %s)", r.Due.Label)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
