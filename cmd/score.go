package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/export"
	"github.com/abhisek/mai/internal/inventory"
	"github.com/abhisek/mai/internal/reflection"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/session"
	"github.com/abhisek/mai/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a complete set of answers without the interactive UI",
	Long: "Score walks the answers through the same page-by-page session as the " +
		"interactive questionnaire and prints the category scores.\n\n" +
		"Answers are one character per statement: T/Y/1 for true, F/N/0 for false. " +
		"Commas and spaces are ignored.",
	Example: "  mai score --answers TFT\n  mai score --answers TFT --format json --download",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("answers")
		format, _ := cmd.Flags().GetString("format")
		download, _ := cmd.Flags().GetBool("download")
		archive, _ := cmd.Flags().GetBool("archive")
		reflect, _ := cmd.Flags().GetBool("reflect")

		if format != "csv" && format != "json" {
			return fmt.Errorf("unknown format %q (want csv or json)", format)
		}

		inv, err := loadInventory()
		if err != nil {
			return err
		}
		set, err := answers.Parse(raw)
		if err != nil {
			return err
		}
		st, err := runSession(inv, perPage(inv), set)
		if err != nil {
			return err
		}

		v := st.Snapshot()
		scores := scoring.Compute(v.Answers, inv.Categories)
		res := store.Result{
			SessionID:   uuid.New().String(),
			Inventory:   inv.Name,
			Answers:     v.Answers.String(),
			CompletedAt: time.Now(),
			Scores:      scores,
		}

		data, err := render(format, res)
		if err != nil {
			return err
		}
		if download {
			saver := export.NewDirSaver(cfg.ExportDir)
			name := export.Filename(inv.Name, format)
			if err := saver.Save(cmd.Context(), name, data); err != nil {
				return fmt.Errorf("save %s: %w", name, err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Saved", saver.Path(name))
		} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}

		if !archive && !reflect {
			return nil
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if archive {
			id, err := s.ResultRepo().Save(cmd.Context(), res)
			if err != nil {
				return fmt.Errorf("archive result: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Archived as result %d\n", id)
		}
		if reflect {
			return printReflection(cmd, s.EventRepo(), inv, scores)
		}
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.StringP("answers", "a", "", "Answer string, one character per statement")
	f.StringP("format", "f", "csv", "Output format: csv or json")
	f.Bool("download", false, "Write <inventory>_scores.<format> to the export directory instead of stdout")
	f.Bool("archive", false, "Save the result in the local history")
	f.Bool("reflect", false, "Ask the configured LLM for a reflection (printed to stderr)")
	_ = scoreCmd.MarkFlagRequired("answers")
}

// runSession feeds set through a session page by page and submits it.
// It fails on the first page that is not fully answered.
func runSession(inv *inventory.Inventory, perPage int, set answers.Set) (*session.State, error) {
	if len(set) != inv.NumQuestions() {
		return nil, fmt.Errorf("got %d answers, inventory %s has %d statements",
			len(set), inv.Name, inv.NumQuestions())
	}
	st, err := session.New(inv.NumQuestions(), perPage, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	for {
		start, end := st.Snapshot().PageRange()
		for id := start; id < end; id++ {
			if set[id] == answers.Unset {
				continue
			}
			if err := st.RecordAnswer(id, set[id] == answers.True); err != nil {
				return nil, err
			}
		}
		err := st.AdvancePage()
		if errors.Is(err, session.ErrNoNextPage) {
			break
		}
		var incomplete *session.PageIncompleteError
		if errors.As(err, &incomplete) {
			return nil, fmt.Errorf("%w: statements %v", err, displayIDs(incomplete.Missing))
		}
		if err != nil {
			return nil, err
		}
	}

	if err := st.Submit(); err != nil {
		var incomplete *session.IncompleteSubmissionError
		if errors.As(err, &incomplete) {
			return nil, fmt.Errorf("%w: statements %v", err, displayIDs(incomplete.Missing))
		}
		return nil, err
	}
	return st, nil
}

// displayIDs converts 0-based ids to the 1-based numbers shown on screen.
func displayIDs(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id + 1
	}
	return out
}

func render(format string, res store.Result) ([]byte, error) {
	if format == "json" {
		return export.JSON(export.Report{
			Inventory:   res.Inventory,
			SessionID:   res.SessionID,
			CompletedAt: res.CompletedAt,
			Answers:     res.Answers,
			Scores:      res.Scores,
		})
	}
	return export.CSV(export.ToTable(res.Scores))
}

func printReflection(cmd *cobra.Command, events store.EventRepo, inv *inventory.Inventory, scores []scoring.Entry) error {
	provider, err := newProvider(cmd.Context(), events)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}
	if provider == nil {
		return errors.New("no LLM provider configured (set llm.provider or an API key variable)")
	}

	r, err := reflection.NewService(provider, reflection.DefaultConfig()).
		Reflect(cmd.Context(), reflection.Input{Title: inv.Title, Scores: scores})
	if err != nil {
		return err
	}
	writeReflection(cmd.ErrOrStderr(), r)
	return nil
}

func writeReflection(w io.Writer, r *reflection.Reflection) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Summary)
	for _, s := range r.Strengths {
		fmt.Fprintln(w, "  +", s)
	}
	for _, g := range r.GrowthAreas {
		fmt.Fprintln(w, "  ->", g)
	}
}
