package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	client "github.com/forwardemail/forwardemail-go-client"
	"github.com/forwardemail/forwardemail-go-client/internal/config"
)

// configCommand stores credentials. With --api-key, --base-url or --from
// it writes them directly; otherwise it prompts, keeping current values
// for blank answers.
func configCommand(_ context.Context, r *runner) error {
	out := r.app.Stdout

	// Re-read the file so environment overrides are not persisted.
	cfg, err := config.Load(r.cfgPath)
	if err != nil {
		return err
	}

	if r.flags.apiKey != "" || r.flags.baseURL != "" || r.flags.from != "" {
		cfg.APIKey = firstNonEmpty(r.flags.apiKey, cfg.APIKey)
		cfg.BaseURL = firstNonEmpty(r.flags.baseURL, cfg.BaseURL)
		cfg.DefaultFrom = firstNonEmpty(r.flags.from, cfg.DefaultFrom)
	} else {
		fmt.Fprintln(out, "Forward Email Configuration")
		fmt.Fprintln(out)

		in := bufio.NewReader(r.app.Stdin)
		cfg.APIKey = firstNonEmpty(prompt(r, in, "Enter your API key: "), cfg.APIKey)
		cfg.BaseURL = firstNonEmpty(prompt(r, in, "Enter base URL (press enter for default): "), cfg.BaseURL)
		cfg.DefaultFrom = firstNonEmpty(prompt(r, in, `Enter default "from" email (optional): `), cfg.DefaultFrom)
	}

	if err := config.Save(r.cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ Configuration saved to:", r.cfgPath)
	return nil
}

func prompt(r *runner, in *bufio.Reader, question string) string {
	fmt.Fprint(r.app.Stdout, question)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func testCommand(ctx context.Context, r *runner) error {
	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	out := r.app.Stdout
	fmt.Fprintln(out, "Testing Forward Email API...")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "1. Testing account access...")
	account, err := c.GetAccount(ctx)
	if err != nil {
		return &failure{"Test failed", err}
	}
	fmt.Fprintf(out, "   ✓ Account: %s (%s plan)\n", account.Email, account.Plan)

	fmt.Fprintln(out, "\n2. Testing email limits...")
	limits, err := c.GetEmailLimit(ctx)
	if err != nil {
		return &failure{"Test failed", err}
	}
	fmt.Fprintf(out, "   ✓ Email usage: %d/%d\n", limits.Count, limits.Limit)

	fmt.Fprintln(out, "\n3. Testing domain access...")
	domains, err := c.ListDomains(ctx)
	if err != nil {
		return &failure{"Test failed", err}
	}
	fmt.Fprintf(out, "   ✓ Found %d domain(s)\n", len(domains))
	if len(domains) > 0 {
		fmt.Fprintf(out, "   First domain: %s\n", domains[0].Name)
	}

	fmt.Fprintln(out, "\n✓ All tests passed! API is working correctly.")
	return nil
}

func sendCommand(ctx context.Context, r *runner) error {
	f := r.flags
	from := firstNonEmpty(f.from, r.cfg.DefaultFrom)
	to := splitList(f.to)

	if from == "" || len(to) == 0 || f.subject == "" {
		return &client.Error{Kind: client.KindValidation, Message: "--from, --to, and --subject are required"}
	}
	if f.text == "" && f.html == "" {
		return &client.Error{Kind: client.KindValidation, Message: "Either --text or --html content is required"}
	}

	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	out := r.app.Stdout
	fmt.Fprintln(out, "Sending email...")
	fmt.Fprintln(out)

	email, err := c.SendEmail(ctx, &client.EmailOptions{
		From:    from,
		To:      to,
		Cc:      splitList(f.cc),
		Bcc:     splitList(f.bcc),
		Subject: f.subject,
		Text:    f.text,
		HTML:    f.html,
	})
	if err != nil {
		return &failure{"Failed to send email", err}
	}

	fmt.Fprintln(out, "✓ Email sent successfully!")
	fmt.Fprintf(out, "   ID: %s\n", email.ID)
	fmt.Fprintf(out, "   Status: %s\n", email.Status)
	fmt.Fprintf(out, "   Message ID: %s\n", email.MessageID)
	return nil
}

func listCommand(ctx context.Context, r *runner) error {
	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	out := r.app.Stdout
	fmt.Fprintln(out, "Fetching recent emails...")
	fmt.Fprintln(out)

	page, limit := 1, 10
	emails, err := c.ListEmails(ctx, &client.ListEmailsOptions{Page: &page, Limit: &limit})
	if err != nil {
		return &failure{"Failed to list emails", err}
	}

	if len(emails) == 0 {
		fmt.Fprintln(out, "No emails found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d recent email(s):\n\n", len(emails))
	for i, e := range emails {
		fmt.Fprintf(out, "%d. %s\n", i+1, e.Subject)
		fmt.Fprintf(out, "   From: %s\n", e.Envelope.From)
		fmt.Fprintf(out, "   To: %s\n", strings.Join(e.Envelope.To, ", "))
		fmt.Fprintf(out, "   Status: %s\n", e.Status)
		fmt.Fprintf(out, "   Date: %s\n", formatTime(e.Date))
		fmt.Fprintf(out, "   ID: %s\n\n", e.ID)
	}
	return nil
}

func accountCommand(ctx context.Context, r *runner) error {
	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	account, err := c.GetAccount(ctx)
	if err != nil {
		return &failure{"Failed to get account info", err}
	}

	out := r.app.Stdout
	fmt.Fprintln(out, "Account Information:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Email: %s\n", account.Email)
	fmt.Fprintf(out, "  Plan: %s\n", account.Plan)
	fmt.Fprintf(out, "  Display Name: %s\n", orNA(account.DisplayName))
	fmt.Fprintf(out, "  Locale: %s\n", orNA(account.Locale))
	fmt.Fprintf(out, "  2FA Enabled: %s\n", yesNo(account.OTPEnabled))
	fmt.Fprintf(out, "  Created: %s\n", formatTime(account.CreatedAt))
	return nil
}

func limitsCommand(ctx context.Context, r *runner) error {
	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	limits, err := c.GetEmailLimit(ctx)
	if err != nil {
		return &failure{"Failed to get limits", err}
	}

	out := r.app.Stdout
	fmt.Fprintln(out, "Email Sending Limits:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Used: %d\n", limits.Count)
	fmt.Fprintf(out, "  Limit: %d\n", limits.Limit)
	fmt.Fprintf(out, "  Remaining: %d\n", limits.Remaining())
	if limits.Limit > 0 {
		fmt.Fprintf(out, "  Usage: %.1f%%\n", float64(limits.Count)/float64(limits.Limit)*100)
	}
	return nil
}

func domainsCommand(ctx context.Context, r *runner) error {
	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	out := r.app.Stdout
	fmt.Fprintln(out, "Fetching domains...")
	fmt.Fprintln(out)

	domains, err := c.ListDomains(ctx)
	if err != nil {
		return &failure{"Failed to list domains", err}
	}

	if len(domains) == 0 {
		fmt.Fprintln(out, "No domains found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d domain(s):\n\n", len(domains))
	for i, d := range domains {
		fmt.Fprintf(out, "%d. %s\n", i+1, d.Name)
		fmt.Fprintf(out, "   Plan: %s\n", d.Plan)
		fmt.Fprintf(out, "   MX Record: %s\n", checkMark(d.HasMXRecord))
		fmt.Fprintf(out, "   TXT Record: %s\n", checkMark(d.HasTXTRecord))
		fmt.Fprintf(out, "   SMTP Enabled: %s\n", yesNo(d.HasSMTP))
		fmt.Fprintf(out, "   Created: %s\n\n", formatTime(d.CreatedAt))
	}
	return nil
}

func aliasesCommand(ctx context.Context, r *runner) error {
	if len(r.args) == 0 {
		return &client.Error{
			Kind:    client.KindValidation,
			Message: "Domain name is required\nUsage: forwardemail aliases <domain>",
		}
	}
	domain := r.args[0]

	c, err := r.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	out := r.app.Stdout
	fmt.Fprintf(out, "Fetching aliases for %s...\n\n", domain)

	aliases, err := c.ListAliases(ctx, domain)
	if err != nil {
		return &failure{"Failed to list aliases", err}
	}

	if len(aliases) == 0 {
		fmt.Fprintln(out, "No aliases found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d alias(es):\n\n", len(aliases))
	for i, a := range aliases {
		fmt.Fprintf(out, "%d. %s\n", i+1, a.Address())
		fmt.Fprintf(out, "   Recipients: %s\n", strings.Join(a.Recipients, ", "))
		fmt.Fprintf(out, "   Enabled: %s\n", yesNo(a.IsEnabled))
		fmt.Fprintf(out, "   IMAP: %s\n", yesNo(a.HasIMAP))
		fmt.Fprintf(out, "   Created: %s\n\n", formatTime(a.CreatedAt))
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(time.RFC3339)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func checkMark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
