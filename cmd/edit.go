package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matjar-app/matjar/internal/mutate"
)

var (
	editMessage string
	editOutput  string
)

var editCmd = &cobra.Command{
	Use:   "edit <page.html>",
	Short: "Edit a generated page through chat",
	Long: `Applies natural-language edits to a generated storefront page. With
--message a single edit is applied and the file is written back.
Without it, an interactive conversation starts: type edit requests,
or /undo, /redo, /save, /quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading page: %w", err)
		}

		outPath := editOutput
		if outPath == "" {
			outPath = path
		}

		engine := buildEngine(cfg)

		if editMessage != "" {
			res, err := engine.Apply(cmd.Context(), mutate.Intent{
				Message:     editMessage,
				CurrentHTML: string(data),
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, []byte(res.HTML), 0o644); err != nil {
				return fmt.Errorf("writing page: %w", err)
			}
			fmt.Println(res.Message)
			return nil
		}

		return runConversation(cmd, engine, string(data), outPath)
	},
}

// runConversation is the interactive editing loop. Documents are kept
// on an undo stack so every applied edit is reversible.
func runConversation(cmd *cobra.Command, engine *mutate.Engine, doc, outPath string) error {
	docs := []string{doc}
	cursor := 0

	fmt.Println("Chat with your store. Commands: /undo, /redo, /save, /quit")
	fmt.Println("Try for example:")
	for _, a := range mutate.QuickActions[:4] {
		fmt.Printf("  %s\n", a.Prompt)
	}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return nil
		case "/save":
			if err := os.WriteFile(outPath, []byte(docs[cursor]), 0o644); err != nil {
				return fmt.Errorf("writing page: %w", err)
			}
			fmt.Printf("Saved %s\n", outPath)
		case "/undo":
			if cursor == 0 {
				fmt.Println("Nothing to undo")
				continue
			}
			cursor--
			fmt.Println("Undone")
		case "/redo":
			if cursor == len(docs)-1 {
				fmt.Println("Nothing to redo")
				continue
			}
			cursor++
			fmt.Println("Redone")
		default:
			res, err := engine.Apply(cmd.Context(), mutate.Intent{
				Message:     line,
				CurrentHTML: docs[cursor],
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			docs = append(docs[:cursor+1], res.HTML)
			cursor = len(docs) - 1
			fmt.Println(res.Message)
		}
	}
	return scanner.Err()
}

func init() {
	editCmd.Flags().StringVarP(&editMessage, "message", "m", "", "single edit to apply, e.g. 'خلي الألوان ذهبية'")
	editCmd.Flags().StringVarP(&editOutput, "output", "o", "", "write the result to this path instead of in place")
	rootCmd.AddCommand(editCmd)
}
