package transaction

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// draftFlags are the form fields settable from the command line.
type draftFlags struct {
	User          string
	Category      string
	PaymentMethod string
	Amount        string
	Note          string
}

var draftFlagNames = []string{"user", "category", "payment-method", "amount", "note"}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.User, "user", "u", "", "User id or name")
	cmd.Flags().StringVarP(&f.Category, "category", "g", "", "Category id or name")
	cmd.Flags().StringVarP(&f.PaymentMethod, "payment-method", "p", "", "Payment method id or name")
	cmd.Flags().StringVarP(&f.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&f.Note, "note", "n", "", "Optional note")
}

// changed reports whether any form field was given on the command line.
func (f *draftFlags) changed(cmd *cobra.Command) bool {
	for _, name := range draftFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply writes the flags that were given into the form the same way the
// interactive form would. Fields without a flag keep their current value.
func (f *draftFlags) apply(cmd *cobra.Command, form *page.Form) {
	set := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	set("user", func() { form.User.SetValue(resolveOption(form.User, f.User)) })
	set("category", func() { form.Category.SetValue(resolveOption(form.Category, f.Category)) })
	set("payment-method", func() { form.PaymentMethod.SetValue(resolveOption(form.PaymentMethod, f.PaymentMethod)) })
	set("amount", func() { form.Amount.SetValue(f.Amount) })
	set("note", func() { form.Note.SetValue(f.Note) })
}

type addRunner struct {
	app   *app.App
	flags *draftFlags
	cmd   *cobra.Command
}

func NewAddCmd(application *app.App) *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add a new transaction to the tracker.

	Users, categories and payment methods can be given by id or by name.
	Without flags the command opens an interactive form.

	Examples:
	# Interactive mode
	fintrack transaction add

	# Quick mode with flags
	fintrack transaction add --user Alice --category Groceries --payment-method Cash --amount 12.50 --note "coffee"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	form, err := r.app.Page.Form(constants.ElemTransactionForm)
	if err != nil {
		return err
	}
	out := r.cmd.OutOrStdout()

	// failures already surfaced as banners; an empty selector is caught below
	if err := r.app.Service.Sequencer.Bootstrap(ctx); err != nil {
		r.app.Log.WithError(err).Warn("bootstrap incomplete")
	}

	if r.flags.changed(r.cmd) {
		r.flags.apply(r.cmd, form)
	} else {
		submit, err := PromptAndConfirm(out, form, r.app.Config.Display.Currency)
		if err != nil {
			return err
		}
		if !submit {
			return nil
		}
	}

	if err := form.Submit(ctx); err != nil {
		return err
	}

	return views.NewTransactionListView(out).Render(r.app.Service.Renderer.Targets().Transactions)
}

// resolveOption maps raw to an option value, matching ids first and then
// names case-insensitively. Unknown input is returned unchanged so the
// binder rejects it.
func resolveOption(sel *page.Select, raw string) string {
	raw = strings.TrimSpace(raw)
	options := sel.Options()

	for _, o := range options {
		if o.Value == raw {
			return o.Value
		}
	}
	for _, o := range options {
		if strings.EqualFold(o.Label, raw) {
			return o.Value
		}
	}
	return raw
}

// PromptAndConfirm fills form interactively, prints a summary and asks for
// confirmation. It reports whether the draft should be submitted.
func PromptAndConfirm(out io.Writer, form *page.Form, currency string) (bool, error) {
	if err := prompts.PromptTransactionForm(form); err != nil {
		return false, err
	}

	amount := form.Amount.Value()
	if d, err := decimal.NewFromString(amount); err == nil {
		amount = utils.FormatCurrency(d, currency)
	}

	pterm.Fprintln(out)
	if err := views.RenderDraftSummary(out, views.DraftSummaryItem{
		User:          form.User.LabelFor(form.User.Value()),
		Category:      form.Category.LabelFor(form.Category.Value()),
		PaymentMethod: form.PaymentMethod.LabelFor(form.PaymentMethod.Value()),
		Amount:        amount,
		Note:          form.Note.Value(),
	}); err != nil {
		return false, err
	}

	confirmed, err := prompts.PromptConfirm("Save this transaction?", true)
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	if !confirmed {
		pterm.Info.WithWriter(out).Println("Transaction discarded")
	}
	return confirmed, nil
}
