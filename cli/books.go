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

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Book management commands",
	Long:  `List, add, update, and delete tracked books.`,
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		resp, err := http.Get(serverURL + "/books")
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

		var books []struct {
			ID         int64   `json:"id"`
			Title      string  `json:"title"`
			Author     *string `json:"author"`
			TotalPages int     `json:"totalPages"`
			CreatedAt  string  `json:"createdAt"`
		}
		json.Unmarshal(body, &books)

		if len(books) == 0 {
			fmt.Println("No books tracked yet.")
			return nil
		}

		fmt.Printf("Tracking %d book(s):\n\n", len(books))
		for i, book := range books {
			fmt.Printf("%d. %s\n", i+1, book.Title)
			fmt.Printf("   ID: %d\n", book.ID)
			if book.Author != nil {
				fmt.Printf("   Author: %s\n", *book.Author)
			}
			fmt.Printf("   Total Pages: %d\n", book.TotalPages)
			fmt.Printf("   Created: %s\n", book.CreatedAt)
			fmt.Println()
		}
		return nil
	},
}

var (
	addTitle      string
	addAuthor     string
	addTotalPages int
)

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book",
	Long:  `Add a book to track. Title and total page count are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		payload := map[string]interface{}{
			"title":      addTitle,
			"totalPages": addTotalPages,
		}
		if cmd.Flags().Changed("author") {
			payload["author"] = addAuthor
		}

		body, _ := json.Marshal(payload)
		resp, err := http.Post(serverURL+"/books", "application/json", bytes.NewReader(body))
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

		var book struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		}
		json.Unmarshal(respBody, &book)
		printSuccess(fmt.Sprintf("Added %q (id %d)", book.Title, book.ID))
		return nil
	},
}

var (
	updateTitle      string
	updateAuthor     string
	updateTotalPages int
)

var booksUpdateCmd = &cobra.Command{
	Use:   "update [book-id]",
	Short: "Update a book",
	Long:  `Partially update a book. Only the provided flags are sent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		payload := map[string]interface{}{}
		if cmd.Flags().Changed("title") {
			payload["title"] = updateTitle
		}
		if cmd.Flags().Changed("author") {
			payload["author"] = updateAuthor
		}
		if cmd.Flags().Changed("total-pages") {
			payload["totalPages"] = updateTotalPages
		}
		if len(payload) == 0 {
			printError("Nothing to update: pass --title, --author, or --total-pages")
			return fmt.Errorf("no fields provided")
		}

		body, _ := json.Marshal(payload)
		req, err := http.NewRequest(http.MethodPatch, serverURL+"/books/"+args[0], bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			printError("Update failed: Server connection error")
			return err
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			printError(fmt.Sprintf("Update failed: %s", errorMessage(respBody)))
			return fmt.Errorf("update failed")
		}

		printSuccess("Book updated")
		return nil
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete [book-id]",
	Short: "Delete a book",
	Long:  `Delete a book and all of its reading logs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: readtrack init")
			return err
		}

		req, err := http.NewRequest(http.MethodDelete, serverURL+"/books/"+args[0], nil)
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			printError("Delete failed: Server connection error")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			body, _ := io.ReadAll(resp.Body)
			printError(fmt.Sprintf("Delete failed: %s", errorMessage(body)))
			return fmt.Errorf("delete failed")
		}

		printSuccess("Book and its reading logs deleted")
		return nil
	},
}

func errorMessage(body []byte) string {
	var errResp map[string]string
	json.Unmarshal(body, &errResp)
	if msg := errResp["error"]; msg != "" {
		return msg
	}
	return "unexpected server response"
}

func init() {
	booksAddCmd.Flags().StringVar(&addTitle, "title", "", "Book title (required)")
	booksAddCmd.Flags().StringVar(&addAuthor, "author", "", "Book author")
	booksAddCmd.Flags().IntVar(&addTotalPages, "total-pages", 0, "Total page count (required)")
	booksAddCmd.MarkFlagRequired("title")
	booksAddCmd.MarkFlagRequired("total-pages")

	booksUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	booksUpdateCmd.Flags().StringVar(&updateAuthor, "author", "", "New author")
	booksUpdateCmd.Flags().IntVar(&updateTotalPages, "total-pages", 0, "New total page count")

	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksAddCmd)
	booksCmd.AddCommand(booksUpdateCmd)
	booksCmd.AddCommand(booksDeleteCmd)
}
