package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"libraryhub/library"
)

const dateFormat = "Jan 2, 2006"

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after password input
	return strings.TrimSpace(string(bytePassword)), nil
}

func prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func runShell(a *app) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("========================================")
	fmt.Println("     LIBRARYHUB LIBRARY SYSTEM")
	fmt.Println("========================================")
	fmt.Println("Sample Login Credentials:")
	fmt.Println("  Student:   S001 /", library.DemoStudentPassword)
	fmt.Println("  Faculty:   F001 /", library.DemoFacultyPassword)
	fmt.Println("  Librarian: L001 /", library.DemoLibrarianPassword)
	fmt.Println()
	fmt.Println("Available commands:")
	fmt.Println("  Account:     login, logout, register, whoami")
	fmt.Println("  Catalog:     browse, items, search, add item (librarian)")
	fmt.Println("  Circulation: borrow, return, my transactions")
	fmt.Println("  Reports:     overdue, activity, stats")
	fmt.Println("  Admin:       users, transactions (librarian)")
	fmt.Println("  System:      theme, exit")

	if u := a.session.Current(); u != nil {
		fmt.Printf("\nRestored session: welcome back, %s (%s)\n", u.Name, u.Role)
	}

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "login":
			handleLogin(scanner, a)
		case "logout":
			a.session.Logout()
			fmt.Println("Logged out.")
		case "register":
			handleRegister(scanner, a)
		case "whoami":
			handleWhoami(a)
		case "browse":
			printItems(a.store.AvailableItems())
		case "items":
			printItems(a.store.Items())
		case "search":
			handleSearch(scanner, a)
		case "borrow":
			handleBorrow(scanner, a)
		case "return":
			handleReturn(scanner, a)
		case "my transactions":
			handleMyTransactions(a)
		case "add item":
			handleAddItem(scanner, a)
		case "users":
			handleUsers(a)
		case "transactions":
			handleAllTransactions(a)
		case "overdue":
			printOverdueReport(a)
		case "activity":
			handleActivity(scanner, a)
		case "stats":
			printStats(a)
		case "theme":
			fmt.Println("Theme is now:", a.session.ToggleTheme())
		case "exit":
			fmt.Println("Thank you for using LibraryHub!")
			return
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func handleLogin(sc *bufio.Scanner, a *app) {
	userID, ok := prompt(sc, "User ID: ")
	if !ok {
		return
	}
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Println("Failed to read password:", err)
		return
	}

	user, err := a.engine.Authenticate(userID, password)
	if err != nil {
		fmt.Println("Login failed:", library.AsFailure(err).Message)
		return
	}
	a.session.Login(user, time.Now())
	fmt.Printf("Login successful! Welcome, %s (%s)\n", user.Name, user.Role)
}

func handleRegister(sc *bufio.Scanner, a *app) {
	id, ok := prompt(sc, "User ID (e.g. S004): ")
	if !ok {
		return
	}
	name, ok := prompt(sc, "Name: ")
	if !ok {
		return
	}
	email, ok := prompt(sc, "Email: ")
	if !ok {
		return
	}
	roleInput, ok := prompt(sc, "Role (Student/Faculty/Librarian): ")
	if !ok {
		return
	}
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Println("Failed to read password:", err)
		return
	}

	user := &library.User{ID: id, Name: name, Email: email, Role: library.Role(roleInput)}
	if err := a.engine.RegisterUser(user, password); err != nil {
		fmt.Println("Registration failed:", library.AsFailure(err).Message)
		return
	}
	fmt.Println("Registered successfully! You can now log in.")
}

func handleWhoami(a *app) {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s: %s <%s>, role %s, %d item(s) borrowed\n",
		u.ID, u.Name, u.Email, u.Role, a.store.BorrowedCount(u.ID))
}

func handleSearch(sc *bufio.Scanner, a *app) {
	query, ok := prompt(sc, "Search query (empty shows everything): ")
	if !ok {
		return
	}
	printItems(a.engine.SearchItems(query))
}

func handleBorrow(sc *bufio.Scanner, a *app) {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please log in first.")
		return
	}
	itemID, ok := prompt(sc, "Item ID to borrow: ")
	if !ok {
		return
	}

	txn, err := a.engine.Borrow(user.ID, itemID)
	if err != nil {
		fmt.Println("Borrow failed:", library.AsFailure(err).Message)
		return
	}
	fmt.Printf("Borrowed %q. Due date: %s\n", txn.ItemTitle, txn.DueDate.Format(dateFormat))
}

func handleReturn(sc *bufio.Scanner, a *app) {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please log in first.")
		return
	}
	itemID, ok := prompt(sc, "Item ID to return: ")
	if !ok {
		return
	}

	fine, txn, err := a.engine.Return(user.ID, itemID)
	if err != nil {
		fmt.Println("Return failed:", library.AsFailure(err).Message)
		return
	}
	fmt.Printf("Returned %q.\n", txn.ItemTitle)
	if fine > 0 {
		fmt.Printf("Late fee: $%.2f\n", fine)
	} else {
		fmt.Println("No late fee.")
	}
}

func handleMyTransactions(a *app) {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please log in first.")
		return
	}
	printTransactions(a.engine.UserTransactions(user.ID))
}

func handleAddItem(sc *bufio.Scanner, a *app) {
	typeInput, ok := prompt(sc, "Type (Book/Magazine/Journal): ")
	if !ok {
		return
	}
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	publisher, ok := prompt(sc, "Publisher: ")
	if !ok {
		return
	}

	draft := library.ItemDraft{Type: library.ItemType(typeInput), Title: title, Publisher: publisher}
	switch draft.Type {
	case library.ItemBook:
		draft.Author, _ = prompt(sc, "Author: ")
		draft.Genre, _ = prompt(sc, "Genre: ")
	case library.ItemMagazine:
		draft.Month, _ = prompt(sc, "Month: ")
		draft.Category, _ = prompt(sc, "Category: ")
	case library.ItemJournal:
		draft.Field, _ = prompt(sc, "Field: ")
		draft.Editor, _ = prompt(sc, "Editor: ")
	default:
		fmt.Println("Unknown item type:", typeInput)
		return
	}

	item, err := a.engine.AddItem(a.session.Current(), draft)
	if err != nil {
		fmt.Println("Add item failed:", library.AsFailure(err).Message)
		return
	}
	fmt.Printf("Added %s %q with id %s\n", item.Type, item.Title, item.ID)
}

func handleUsers(a *app) {
	users, err := a.engine.ListUsers(a.session.Current())
	if err != nil {
		fmt.Println("Failed:", library.AsFailure(err).Message)
		return
	}
	fmt.Printf("%-6s %-22s %-32s %-10s %s\n", "ID", "Name", "Email", "Role", "Borrowed")
	for _, u := range users {
		fmt.Printf("%-6s %-22s %-32s %-10s %d\n", u.ID, u.Name, u.Email, u.Role, a.store.BorrowedCount(u.ID))
	}
}

func handleAllTransactions(a *app) {
	if !a.session.IsLibrarian() {
		fmt.Println("Failed:", library.AsFailure(library.ErrUnauthorized).Message)
		return
	}
	printTransactions(a.store.Transactions())
}

func handleActivity(sc *bufio.Scanner, a *app) {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please log in first.")
		return
	}
	userID := user.ID
	if a.session.IsLibrarian() {
		if id, ok := prompt(sc, "User ID (empty for yourself): "); ok && id != "" {
			userID = id
		}
	}

	report := a.engine.ActivityReport(userID)
	fmt.Println("========== User Activity Report ==========")
	fmt.Println("User ID:             ", report.UserID)
	fmt.Println("Total Items Borrowed:", report.TotalBorrowed)
	fmt.Println("Currently Borrowed:  ", report.CurrentlyBorrowed)
	fmt.Printf("Total Fines:          $%.2f\n", report.TotalFines)
}

func printOverdueReport(a *app) {
	report := a.engine.OverdueReport(time.Now())
	if len(report) == 0 {
		fmt.Println("No overdue items.")
		return
	}
	fmt.Println("========== Overdue Items Report ==========")
	for _, entry := range report {
		fmt.Printf("%-5s user %-5s %-40q due %s, %d day(s) overdue, fine so far $%.2f\n",
			entry.ID, entry.UserID, entry.ItemTitle, entry.DueDate.Format(dateFormat),
			entry.DaysOverdue, entry.CurrentFine)
	}
}

func printStats(a *app) {
	st := a.store.Statistics(time.Now())
	fmt.Println("Users:              ", st.TotalUsers)
	fmt.Println("Items:              ", st.TotalItems)
	fmt.Println("Available items:    ", st.AvailableItems)
	fmt.Println("Transactions:       ", st.TotalTransactions)
	fmt.Println("Active loans:       ", st.ActiveTransactions)
	fmt.Println("Overdue loans:      ", st.OverdueTransactions)
}

func printItems(items []*library.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}
	fmt.Printf("%-6s %-9s %-45s %-25s %s\n", "ID", "Type", "Title", "Publisher", "Available")
	for _, it := range items {
		fmt.Printf("%-6s %-9s %-45s %-25s %t\n", it.ID, it.Type, truncate(it.Title, 43), it.Publisher, it.Available)
	}
}

func printTransactions(txns []*library.Transaction) {
	if len(txns) == 0 {
		fmt.Println("No transactions found.")
		return
	}
	fmt.Printf("%-5s %-6s %-6s %-40s %-13s %-13s %-9s %s\n",
		"ID", "User", "Item", "Title", "Borrowed", "Due", "Status", "Fine")
	for _, t := range txns {
		fmt.Printf("%-5s %-6s %-6s %-40s %-13s %-13s %-9s $%.2f\n",
			t.ID, t.UserID, t.ItemID, truncate(t.ItemTitle, 38),
			t.BorrowDate.Format(dateFormat), t.DueDate.Format(dateFormat), t.Status, t.Fine)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
