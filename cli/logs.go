package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tdat2209/Read-Track-Backend/cli/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Reading log commands",
	Long:  `List and record reading logs for a book.`,
}

var logsBookID string

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reading logs for a book",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		resp, err := http.Get(fmt.Sprintf("%s/books/%s/logs", serverURL, logsBookID))
		if err != nil {
			printError("List failed: Server connection error")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			printError(fmt.Sprintf("List failed: %s", errorMessage(body)))
			return fmt.Errorf("list failed")
		}

		var entries []struct {
			ID        int64  `json:"id"`
			Date      string `json:"date"`
			PagesRead int    `json:"pagesRead"`
		}
		json.Unmarshal(body, &entries)

		if len(entries) == 0 {
			fmt.Println("No reading logs for this book yet.")
			return nil
		}

		total := 0
		fmt.Printf("%d log(s):\n\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("  %s  %4d pages  (id %d)\n", entry.Date, entry.PagesRead, entry.ID)
			total += entry.PagesRead
		}
		fmt.Printf("\nTotal pages read: %d\n", total)
		return nil
	},
}

var (
	logDate  string
	logPages int
)

var logsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record pages read on a date",
	Long:  `Record a reading log. One log per book per calendar date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		payload := map[string]interface{}{
			"date":      logDate,
			"pagesRead": logPages,
		}
		body, _ := json.Marshal(payload)

		url := fmt.Sprintf("%s/books/%s/logs", serverURL, logsBookID)
		resp, err := http.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			printError("Add failed: Server connection error")
			return err
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusCreated {
			printError(fmt.Sprintf("Add failed: %s", errorMessage(respBody)))
			return fmt.Errorf("add failed")
		}

		printSuccess(fmt.Sprintf("Logged %d pages on %s", logPages, logDate))
		return nil
	},
}

func init() {
	logsCmd.PersistentFlags().StringVar(&logsBookID, "book-id", "", "Book id (required)")
	logsCmd.MarkPersistentFlagRequired("book-id")

	logsAddCmd.Flags().StringVar(&logDate, "date", "", "Date in YYYY-MM-DD form (required)")
	logsAddCmd.Flags().IntVar(&logPages, "pages", 0, "Pages read (required)")
	logsAddCmd.MarkFlagRequired("date")
	logsAddCmd.MarkFlagRequired("pages")

	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsAddCmd)
}
