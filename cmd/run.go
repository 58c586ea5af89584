package cmd

import (
	"fmt"
	"os"

	"github.com/prateekk-tech99/safebite-quiz/internal/app"
	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/llm"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prog, err := progress.NewStore(ctx, progress.NewRepo(st.ProgressRepo()))
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	opts := app.Options{
		Progress: prog,
		Events:   st.EventRepo(),
		Lang:     resolveLang(cmd),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Only saved offline quizzes will be playable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		opts.Feedback = quizgen.NewFeedbackService(provider, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}

// resolveLang picks the UI language from --lang, then SAFEBITE_LANG,
// defaulting to English. Unknown values fall back to English.
func resolveLang(cmd *cobra.Command) i18n.Lang {
	s, _ := cmd.Flags().GetString("lang")
	if s == "" {
		s = os.Getenv("SAFEBITE_LANG")
	}
	l := i18n.Lang(s)
	if !l.Valid() {
		return i18n.LangEnglish
	}
	return l
}
