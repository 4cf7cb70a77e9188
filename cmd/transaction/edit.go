package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type EditCommandRunner struct {
	app   *app.App
	flags *draftFlags
	cmd   *cobra.Command
}

func NewEditCmd(application *app.App) *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction's user, category, payment method, amount and note.

	The form starts from the stored values. With flags only the given fields
	change and no form is shown.

	Examples:
	fintrack transaction edit 12
	fintrack transaction edit 12 --amount 18.40 --note "shared taxi"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *EditCommandRunner) Run(args []string) error {
	txID, err := parseTxID(args[0])
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()
	out := r.cmd.OutOrStdout()

	form, err := r.app.Page.Form(constants.ElemTransactionForm)
	if err != nil {
		return err
	}

	tx, err := r.app.Client.GetTransaction(ctx, txID)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	// failures already surfaced as banners; an empty selector is caught below
	if err := r.app.Service.Sequencer.Bootstrap(ctx); err != nil {
		r.app.Log.WithError(err).Warn("bootstrap incomplete")
	}
	prefill(form, tx)

	ui.FprintL2Title(out, "Editing Transaction #%d", txID)
	if err := views.RenderTransactionDetail(out, *tx, r.app.Config.Display.Currency, time.Local); err != nil {
		return err
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

	if err := r.app.Service.Binder.Update(ctx, txID, tx.IsDeposit); err != nil {
		return err
	}

	return views.NewTransactionListView(out).Render(r.app.Service.Renderer.Targets().Transactions)
}

// prefill loads tx into the form. The backend returns reference names, so
// selectors are matched by label.
func prefill(form *page.Form, tx *model.Transaction) {
	form.User.SetValue(resolveOption(form.User, tx.User))
	form.Category.SetValue(resolveOption(form.Category, tx.Category))
	form.PaymentMethod.SetValue(resolveOption(form.PaymentMethod, tx.PaymentMethod))
	form.Amount.SetValue(tx.Amount.String())
	form.Note.SetValue(tx.NoteText())
}
