package cmd

import (
	"io"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type refsRunner struct {
	app *app.App
	out io.Writer
}

func NewRefsCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "refs",
		Aliases: []string{"ref"},
		Short:   "List users, categories and payment methods",
		Long:    `Fetch the three reference lists the transaction form selects from and print them with their ids.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &refsRunner{
				app: application,
				out: cmd.OutOrStdout(),
			}
			return runner.Run(cmd)
		},
	}
}

func (r *refsRunner) Run(cmd *cobra.Command) error {
	renderer := r.app.Service.Renderer
	if err := renderer.PopulateDropdowns(cmd.Context()); err != nil {
		return err
	}
	return renderReferences(r.out, renderer.Targets())
}

func renderReferences(out io.Writer, targets service.Targets) error {
	return views.NewReferenceListView(out).Render(
		views.ReferenceList{Title: "Users", Select: targets.Users},
		views.ReferenceList{Title: "Categories", Select: targets.Categories},
		views.ReferenceList{Title: "Payment Methods", Select: targets.PaymentMethods},
	)
}
