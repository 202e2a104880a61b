package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/config"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	priceColor  = color.New(color.FgGreen)
)

func newPlansCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the plans on sale",
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes, err := loadQuoteService(*configPath)
			if err != nil {
				return err
			}
			return printPlans(os.Stdout, quotes.Plans())
		},
	}
}

func newQuoteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quote [plan-id]",
		Short: "Show the installment table of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes, err := loadQuoteService(*configPath)
			if err != nil {
				return err
			}
			quote, err := quotes.Quote(args[0])
			if err != nil {
				return err
			}
			return printQuote(os.Stdout, quote, quotes.MonthlyRate().String())
		},
	}
}

func loadQuoteService(configPath string) (*services.QuoteService, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	catalog, err := cfg.Catalog.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return services.NewQuoteService(catalog, cfg.Payment.MonthlyRate()), nil
}

func printPlans(out io.Writer, plans []domain.Plan) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headerColor.Fprintln(w, "ID\tPLAN\tMONTHS\tPRICE (R$)")
	for _, p := range plans {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Label, p.TermMonths, priceColor.Sprint(p.Price.StringFixed(2)))
	}
	return w.Flush()
}

func printQuote(out io.Writer, quote *services.PlanQuote, monthlyRate string) error {
	fmt.Fprintf(out, "%s (R$ %s), monthly rate %s\n", quote.Plan.Label, quote.Plan.Price.StringFixed(2), monthlyRate)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headerColor.Fprintln(w, "INSTALLMENTS\tPER INSTALLMENT (R$)\tTOTAL (R$)\tCENTS")
	for _, q := range quote.Quotes {
		fmt.Fprintf(w, "%dx\t%s\t%s\t%d\n",
			q.Installments,
			priceColor.Sprint(q.PerInstallment.StringFixed(2)),
			q.Total.StringFixed(2),
			q.AmountCents,
		)
	}
	return w.Flush()
}
