// ABOUTME: Interactive terminal console for the banking back-office API
// ABOUTME: Readline-style command loop over the shell, panels, and session

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/config"
	"github.com/bankexample/bankdesk/internal/console"
	"github.com/bankexample/bankdesk/internal/model"
	"github.com/bankexample/bankdesk/internal/panel"
	"github.com/bankexample/bankdesk/internal/session"
)

const banner = `
 _                 _       _           _
| |__   __ _ _ __ | | ____| | ___  ___| | __
| '_ \ / _' | '_ \| |/ / _' |/ _ \/ __| |/ /
| |_) | (_| | | | |   < (_| |  __/\__ \   <
|_.__/ \__,_|_| |_|_|\_\__,_|\___||___/_|\_\
`

func main() {
	// .env is optional; real environment always wins
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to config file (YAML)")
	server := flag.String("server", "", "API base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.API.BaseURL = *server
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	client := api.New(cfg.API.BaseURL, logger)
	tokens := session.NewFileTokenStore(cfg.Token.Path)
	sess := session.NewManager(client, tokens, logger)
	notices := console.NewNotices(nil, 0)
	shell := console.New(client, sess, notices)

	color.New(color.FgCyan).Print(banner)
	fmt.Printf("bankdesk connected to %s\n", client.BaseURL())
	fmt.Println("Type /help for commands. Ctrl+C to quit.")
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shell.Bootstrap(ctx)
	printNotice(notices)

	if err := run(ctx, shell); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGoodbye!")
}

func run(ctx context.Context, shell *console.Shell) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printPrompt(shell)

		inputCh := make(chan string, 1)
		errCh := make(chan error, 1)

		go func() {
			if scanner.Scan() {
				inputCh <- scanner.Text()
			} else {
				if err := scanner.Err(); err != nil {
					errCh <- err
				} else {
					errCh <- io.EOF
				}
			}
		}()

		var input string
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		case input = <-inputCh:
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "/quit" || input == "/exit" || input == "/q" {
			return nil
		}

		dispatch(ctx, shell, input)
		printNotice(shell.Notices())
		fmt.Println()
	}
}

func printPrompt(shell *console.Shell) {
	if !shell.Authenticated() {
		fmt.Print("(anonymous)> ")
		return
	}
	op := shell.Session().Operator()
	role := "user"
	if op.IsAdmin {
		role = "admin"
	}
	fmt.Printf("[%s:%s %s]> ", op.Name, role, shell.ActiveTab())
}

func dispatch(ctx context.Context, shell *console.Shell, input string) {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help", "help":
		printHelp()
		return
	case "login":
		if len(args) != 2 {
			color.Yellow("Usage: login <email> <password>")
			return
		}
		_ = shell.Login(ctx, args[0], args[1])
		return
	case "register":
		kv := parseKV(args)
		userID, err := shell.Session().Register(ctx, session.RegisterInput{
			Name:     kv["name"],
			Email:    kv["email"],
			Contact:  kv["contact"],
			Address:  kv["address"],
			Password: kv["password"],
		})
		if err != nil {
			shell.Notices().Error("%s", err)
			return
		}
		shell.Notices().Success("User registered with ID %d. You can now log in.", userID)
		return
	}

	if !shell.Authenticated() {
		color.Yellow("Not logged in. Use: login <email> <password>")
		return
	}

	switch cmd {
	case "logout":
		shell.Logout()
	case "whoami":
		printWhoami(shell)
	case "tabs":
		for _, t := range console.Tabs {
			marker := "  "
			if t == shell.ActiveTab() {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, t)
		}
	case "use":
		if len(args) != 1 {
			color.Yellow("Usage: use <tab>")
			return
		}
		if err := shell.SwitchTab(ctx, console.Tab(args[0])); err != nil {
			color.Red("Error: %v", err)
			return
		}
		printActivePanel(shell)
	case "show":
		printActivePanel(shell)
	case "refresh":
		if err := shell.Refresh(ctx); err == nil {
			printActivePanel(shell)
		}
	default:
		dispatchPanel(ctx, shell, cmd, args)
	}
}

// dispatchPanel routes mutation verbs to the active panel.
func dispatchPanel(ctx context.Context, shell *console.Shell, cmd string, args []string) {
	kv := parseKV(args)

	switch shell.ActiveTab() {
	case console.TabUsers:
		switch cmd {
		case "create":
			_ = shell.Users().Create(ctx, panel.UserCreate{
				Name:     kv["name"],
				Email:    kv["email"],
				Contact:  kv["contact"],
				Address:  kv["address"],
				Password: kv["password"],
				IsAdmin:  kv["admin"] == "true",
			})
		case "update":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Users().Update(ctx, id, panel.UserUpdate{
				Name:     kv["name"],
				Contact:  kv["contact"],
				Address:  kv["address"],
				Password: kv["password"],
				IsActive: parseOptBool(kv["active"]),
			})
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Users().Delete(ctx, id)
		default:
			unknownCommand(cmd)
		}

	case console.TabAccounts:
		switch cmd {
		case "create":
			_ = shell.Accounts().Create(ctx, panel.AccountCreate{
				UserID:         parseInt(kv["user"]),
				AccountType:    model.AccountType(kv["type"]),
				InitialDeposit: parseFloat(kv["deposit"]),
			})
		case "update":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Accounts().Update(ctx, id, panel.AccountUpdate{
				AccountType: model.AccountType(kv["type"]),
				IsActive:    parseOptBool(kv["active"]),
			})
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Accounts().Delete(ctx, id)
		case "balance":
			id, ok := argID(args)
			if !ok {
				return
			}
			balance, err := shell.Accounts().Balance(ctx, id)
			if err == nil {
				fmt.Printf("Balance: %.2f\n", balance)
			}
		default:
			unknownCommand(cmd)
		}

	case console.TabTransactions:
		switch cmd {
		case "transfer":
			_ = shell.Transactions().SubmitTransfer(ctx, panel.Transfer{
				FromAccountID:    parseInt(kv["from"]),
				ToAccountID:      parseOptInt(kv["to"]),
				ExternalBankName: parseOptString(kv["bank"]),
				Amount:           parseFloat(kv["amount"]),
				Description:      kv["desc"],
			})
		case "filter":
			if len(args) == 1 && args[0] == "clear" {
				shell.Transactions().SetFilter(panel.TransactionFilter{})
			} else {
				shell.Transactions().SetFilter(panel.TransactionFilter{
					DateFrom:  kv["from"],
					DateTo:    kv["to"],
					Type:      model.TransactionType(kv["type"]),
					MinAmount: parseOptFloat(kv["min"]),
					MaxAmount: parseOptFloat(kv["max"]),
				})
			}
			if err := shell.Transactions().Load(ctx); err == nil {
				printActivePanel(shell)
			}
		case "update":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Transactions().Update(ctx, id, panel.TransactionUpdate{
				Description: kv["desc"],
				Status:      model.TransactionStatus(kv["status"]),
			})
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Transactions().Delete(ctx, id)
		default:
			unknownCommand(cmd)
		}

	case console.TabDebitCards:
		switch cmd {
		case "create":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.DebitCards().Create(ctx, id)
		case "activate":
			if len(args) != 2 {
				color.Yellow("Usage: activate <card_id> <otp>")
				return
			}
			_ = shell.DebitCards().Activate(ctx, parseInt(args[0]), args[1])
		case "status":
			if len(args) != 2 {
				color.Yellow("Usage: status <card_id> <active|disabled>")
				return
			}
			_ = shell.DebitCards().SetStatus(ctx, parseInt(args[0]), model.CardStatus(args[1]))
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.DebitCards().Delete(ctx, id)
		default:
			unknownCommand(cmd)
		}

	case console.TabMutualFunds:
		switch cmd {
		case "create":
			_ = shell.MutualFunds().CreateFund(ctx, kv["name"], kv["symbol"], parseFloat(kv["nav"]))
		case "update":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.MutualFunds().UpdateNAV(ctx, id, parseFloat(kv["nav"]))
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.MutualFunds().DeleteFund(ctx, id)
		case "buy":
			_ = shell.MutualFunds().Buy(ctx, parseInt(kv["account"]), parseInt(kv["fund"]), parseFloat(kv["amount"]))
		case "sell":
			_ = shell.MutualFunds().Sell(ctx, parseInt(kv["account"]), parseInt(kv["fund"]), parseFloat(kv["units"]))
		default:
			unknownCommand(cmd)
		}

	case console.TabDeposits:
		switch cmd {
		case "create":
			_ = shell.Deposits().Create(ctx, panel.DepositCreate{
				AccountID:    parseInt(kv["account"]),
				DepositType:  model.DepositType(kv["type"]),
				TermMonths:   int(parseInt(kv["term"])),
				Amount:       parseFloat(kv["amount"]),
				InterestRate: parseFloat(kv["rate"]),
			})
		case "cancel":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Deposits().Cancel(ctx, id)
		case "delete":
			id, ok := argID(args)
			if !ok {
				return
			}
			_ = shell.Deposits().Delete(ctx, id)
		default:
			unknownCommand(cmd)
		}

	case console.TabAudit:
		unknownCommand(cmd)
	}
}

func printWhoami(shell *console.Shell) {
	op := shell.Session().Operator()
	role := "user"
	if op.IsAdmin {
		role = "admin"
	}
	fmt.Printf("%s <%s> (%s)\n", op.Name, op.Email, role)
	if exp, ok := shell.Session().TokenExpiry(); ok {
		fmt.Printf("Token expires: %s\n", exp.Format("2006-01-02 15:04:05"))
	}
}

func printHelp() {
	yellow := color.New(color.FgYellow)

	fmt.Println("General:")
	fmt.Println("  login <email> <password>   Sign in")
	fmt.Println("  register k=v ...           Register (name, email, contact, address, password)")
	fmt.Println("  logout                     Sign out")
	fmt.Println("  whoami                     Show operator identity")
	fmt.Println("  tabs                       List panels")
	fmt.Println("  use <tab>                  Switch panel")
	fmt.Println("  show                       Show the active panel")
	fmt.Println("  refresh                    Reload the active panel")
	fmt.Println("  /quit                      Exit")
	fmt.Println()
	yellow.Println("Panel commands (act on the active tab):")
	fmt.Println("  users:        create/update/delete  (name= email= contact= address= password= admin= active=)")
	fmt.Println("  accounts:     create/update/delete/balance  (user= type= deposit= active=)")
	fmt.Println("  transactions: transfer/filter/update/delete  (from= to= bank= amount= desc= type= min= max= status=)")
	fmt.Println("  debit_cards:  create <account_id> / activate <id> <otp> / status <id> <s> / delete <id>")
	fmt.Println("  mutual_funds: create/update/delete/buy/sell  (name= symbol= nav= account= fund= amount= units=)")
	fmt.Println("  deposits:     create/cancel/delete  (account= type= term= amount= rate=)")
}

// printActivePanel renders the active tab's collections as tables.
func printActivePanel(shell *console.Shell) {
	switch shell.ActiveTab() {
	case console.TabUsers:
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCONTACT\tADMIN\tACTIVE")
		for _, u := range shell.Users().Users() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Contact, yesNo(u.IsAdmin), yesNo(u.IsActive))
		}
		flushTable(w, len(shell.Users().Users()))

	case console.TabAccounts:
		w := newTable()
		fmt.Fprintln(w, "ID\tNUMBER\tUSER\tTYPE\tBALANCE\tACTIVE\tDELETED")
		for _, a := range shell.Accounts().Accounts() {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.2f\t%s\t%s\n", a.ID, a.AccountNumber, a.UserID, a.AccountType, a.Balance, yesNo(a.IsActive), yesNo(a.IsDeleted))
		}
		flushTable(w, len(shell.Accounts().Accounts()))

	case console.TabTransactions:
		w := newTable()
		fmt.Fprintln(w, "ID\tFROM\tTO\tTYPE\tAMOUNT\tSTATUS\tREFERENCE\tTIME")
		for _, t := range shell.Transactions().Transactions() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n", t.ID, optInt(t.FromAccountID), optInt(t.ToAccountID), t.TransactionType, t.Amount, t.Status, t.Reference, t.CreatedAt)
		}
		flushTable(w, len(shell.Transactions().Transactions()))

	case console.TabDebitCards:
		w := newTable()
		fmt.Fprintln(w, "ID\tACCOUNT\tNUMBER\tSTATUS\tACTIVATED\tEXPIRY")
		for _, c := range shell.DebitCards().Cards() {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", c.ID, c.AccountID, c.CardNumber, c.Status, optString(c.ActivationDate), c.ExpiryDate)
		}
		flushTable(w, len(shell.DebitCards().Cards()))

	case console.TabMutualFunds:
		fmt.Println("Fund catalog:")
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSYMBOL\tNAV\tACTIVE")
		for _, f := range shell.MutualFunds().Funds() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%s\n", f.ID, f.Name, f.Symbol, f.NAV, yesNo(f.IsActive))
		}
		flushTable(w, len(shell.MutualFunds().Funds()))

		fmt.Println("Holdings:")
		w = newTable()
		fmt.Fprintln(w, "ID\tUSER\tACCOUNT\tFUND\tUNITS\tAVG NAV")
		for _, h := range shell.MutualFunds().Holdings() {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.4f\t%.4f\n", h.ID, h.UserID, h.AccountID, h.FundID, h.Units, h.AverageNAV)
		}
		flushTable(w, len(shell.MutualFunds().Holdings()))

		fmt.Println("Trades:")
		w = newTable()
		fmt.Fprintln(w, "ID\tACCOUNT\tFUND\tTYPE\tUNITS\tAMOUNT\tTIME")
		for _, t := range shell.MutualFunds().Trades() {
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%.4f\t%.2f\t%s\n", t.ID, t.AccountID, t.FundID, t.TradeType, t.Units, t.Amount, t.CreatedAt)
		}
		flushTable(w, len(shell.MutualFunds().Trades()))

	case console.TabDeposits:
		w := newTable()
		fmt.Fprintln(w, "ID\tACCOUNT\tTYPE\tTERM\tAMOUNT\tRATE\tSTATUS\tPENALTY")
		for _, d := range shell.Deposits().Deposits() {
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%.2f\t%.2f\t%s\t%s\n", d.ID, d.AccountID, d.DepositType, d.TermMonths, d.Amount, d.InterestRate, d.Status, optFloat(d.PenaltyAmount))
		}
		flushTable(w, len(shell.Deposits().Deposits()))

	case console.TabAudit:
		if shell.AuditLogs().Blocked() {
			color.Yellow("Audit logs are available only for admins.")
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tUSER\tACTION\tENTITY\tENTITY ID\tTIME")
		for _, e := range shell.AuditLogs().Entries() {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", e.ID, e.UserID, e.Action, e.Entity, optInt(e.EntityID), e.CreatedAt)
		}
		flushTable(w, len(shell.AuditLogs().Entries()))
	}
}

func printNotice(notices *console.Notices) {
	n := notices.Current()
	if n == nil {
		return
	}
	if n.Kind == console.NoticeError {
		color.Red("[error] %s", n.Message)
	} else {
		color.Green("[ok] %s", n.Message)
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func flushTable(w *tabwriter.Writer, rows int) {
	w.Flush()
	if rows == 0 {
		fmt.Println("No records found.")
	}
	fmt.Println()
}

// parseKV turns ["name=Bob", "email=b@x"] into a map. Values may contain
// '=' after the first one.
func parseKV(args []string) map[string]string {
	kv := make(map[string]string, len(args))
	for _, arg := range args {
		if k, v, ok := strings.Cut(arg, "="); ok {
			kv[k] = v
		}
	}
	return kv
}

func argID(args []string) (int64, bool) {
	if len(args) == 0 {
		color.Yellow("An ID argument is required")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		color.Yellow("Invalid ID %q", args[0])
		return 0, false
	}
	return id, true
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseOptInt(s string) *int64 {
	if s == "" {
		return nil
	}
	v := parseInt(s)
	return &v
}

func parseOptFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v := parseFloat(s)
	return &v
}

func parseOptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptBool(s string) *bool {
	if s == "" {
		return nil
	}
	v := s == "true"
	return &v
}

func optInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func optString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func unknownCommand(cmd string) {
	color.Yellow("Unknown command %q for this panel. Type /help for commands.", cmd)
}
