package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/South-33/Elixer/pkg/batch"
	"github.com/South-33/Elixer/pkg/enhance"
	"github.com/South-33/Elixer/pkg/legaldb"
	"github.com/South-33/Elixer/pkg/watch"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "elixer",
		Short: "Legal database enhancement tool",
		Long: `Elixer converts raw legal-code JSON databases into the enhanced
form used by the ElixerAI application.

It derives stable identifiers for chapters and articles, builds searchable
fullText and keyword fields, tags each article with its chapter title, and
stamps the database metadata with the enhancement date.`,
		Version: version,
	}

	rootCmd.AddCommand(enhanceCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(keywordsCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func enhanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Enhance a legal database file",
		Long: `Enhance a legal database file and write the result to a new file.

The input file is never modified; the output file is overwritten if it
already exists.

Example:
  elixer enhance --input "Law on New Topic.json" --output "Enhanced_Law_on_New_Topic.json"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			fmt.Printf("Enhancing database: %s\n", input)
			startTime := time.Now()

			doc, err := legaldb.Load(input)
			if err != nil {
				return err
			}

			enhancer := enhance.New()
			if err := enhancer.Enhance(doc); err != nil {
				return err
			}
			if err := legaldb.Save(output, doc); err != nil {
				return err
			}

			stats := enhance.Stats(doc, 0)
			fmt.Printf("Enhanced %d chapters, %d articles (%d distinct keywords) in %v\n",
				stats.Chapters, stats.Articles, stats.DistinctKeywords,
				time.Since(startTime).Round(time.Millisecond))
			fmt.Printf("Wrote: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Raw database file (JSON)")
	cmd.Flags().StringP("output", "o", "", "Enhanced output file (JSON)")

	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for a database file",
		Long: `Show chapter, article, and keyword statistics for a database file.

Works on both raw and enhanced databases.

Example:
  elixer stats --input Enhanced_Law.json --top 10
  elixer stats --input Enhanced_Law.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			asJSON, _ := cmd.Flags().GetBool("json")
			top, _ := cmd.Flags().GetInt("top")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}

			doc, err := legaldb.Load(input)
			if err != nil {
				return err
			}

			stats := enhance.Stats(doc, top)

			if asJSON {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding stats: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Database: %s\n", input)
			fmt.Printf("  Chapters:          %d\n", stats.Chapters)
			fmt.Printf("  Articles:          %d\n", stats.Articles)
			fmt.Printf("  Points:            %d\n", stats.Points)
			fmt.Printf("  Articles with IDs: %d\n", stats.ArticlesWithIDs)
			fmt.Printf("  Distinct keywords: %d\n", stats.DistinctKeywords)
			if len(stats.TopKeywords) > 0 {
				fmt.Println("  Top keywords:")
				for _, kc := range stats.TopKeywords {
					fmt.Printf("    %-20s %d\n", kc.Keyword, kc.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Database file (JSON)")
	cmd.Flags().Bool("json", false, "Output statistics as JSON")
	cmd.Flags().Int("top", 0, "Show the N most frequent keywords")

	return cmd
}

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords [text...]",
		Short: "Show the keywords extracted from a piece of text",
		Long: `Show the keywords the enhancer would extract from a piece of text.

Useful for checking how article text will be indexed.

Example:
  elixer keywords "This is a test first point; second"
  elixer keywords --file article.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			var text string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading text file: %w", err)
				}
				text = string(data)
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				return fmt.Errorf("provide text as arguments or via --file")
			}

			for _, kw := range enhance.ExtractKeywords(text) {
				fmt.Println(kw)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read text from a file instead of arguments")

	return cmd
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Enhance multiple databases from a YAML job file",
		Long: `Enhance multiple databases described by a YAML job file.

Job file format:
  databases:
    - name: consumer-law
      input: Database/Law.json
      output: Database/Enhanced_Law.json

Databases are processed in file order; the first failure aborts the run.

Example:
  elixer batch --jobs databases.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobsPath, _ := cmd.Flags().GetString("jobs")

			if jobsPath == "" {
				return fmt.Errorf("--jobs flag is required")
			}

			jf, err := batch.LoadJobs(jobsPath)
			if err != nil {
				return err
			}

			fmt.Printf("Enhancing %d databases from %s\n", len(jf.Databases), jobsPath)

			results, err := batch.Run(enhance.New(), jf)
			for _, r := range results {
				if r.Err != nil {
					fmt.Printf("  FAIL %s: %v\n", r.Job.Name, r.Err)
				} else {
					fmt.Printf("  ok   %s: %s -> %s\n", r.Job.Name, r.Job.Input, r.Job.Output)
				}
			}
			return err
		},
	}

	cmd.Flags().StringP("jobs", "j", "", "YAML job file listing databases to enhance")

	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-enhance a database whenever its input file changes",
		Long: `Watch a database file and regenerate the enhanced copy on every change.

Runs one enhancement immediately, then blocks until interrupted.

Example:
  elixer watch --input Law.json --output Enhanced_Law.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			watcher, err := watch.New(enhance.New(), watch.Config{
				Input:    input,
				Output:   output,
				Debounce: debounce,
				OnResult: func(err error) {
					stamp := time.Now().Format("15:04:05")
					if err != nil {
						fmt.Fprintf(os.Stderr, "[%s] enhancement failed: %v\n", stamp, err)
						return
					}
					fmt.Printf("[%s] enhanced %s -> %s\n", stamp, input, output)
				},
			})
			if err != nil {
				return err
			}

			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s (Ctrl+C to stop)\n", input)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh
			fmt.Println("\nStopping")
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Raw database file to watch (JSON)")
	cmd.Flags().StringP("output", "o", "", "Enhanced output file (JSON)")
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before re-running after a change")

	return cmd
}
