package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prateekk-tech99/safebite-quiz/internal/llm"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/relay"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation relay server",
	Long:  "Starts an HTTP server that generates quizzes on behalf of clients, keeping the LLM API key server-side.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; config can come from the environment.
		_ = godotenv.Load()

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

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider required for serve: %w", err)
		}
		generator := quizgen.New(provider, quizgen.DefaultConfig())

		port, err := resolvePort(cmd)
		if err != nil {
			return err
		}
		env := os.Getenv("SAFEBITE_ENV")
		if env == "" {
			env = "development"
		}

		srv := relay.NewServer(generator, port, env)
		fmt.Printf("Quiz relay listening on port %d (%s)\n", port, env)
		return srv.ListenAndServe()
	},
}

func resolvePort(cmd *cobra.Command) (int, error) {
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		return p, nil
	}
	for _, key := range []string{"SAFEBITE_PORT", "PORT"} {
		if v := os.Getenv(key); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			return p, nil
		}
	}
	return 3001, nil
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default 3001, or $SAFEBITE_PORT/$PORT)")
}
