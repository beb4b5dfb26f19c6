package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kaosom/zipquote/internal/adapter/renderer"
	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved estimates",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			list, err := a.sync.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No estimates yet. Create one with `zipquote new`.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tITEMS\tTOTAL\tCREATED")
			for _, e := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.ID, e.Client.Name, len(e.Items),
					renderer.Money(decimal.NewFromFloat(e.Total)), e.CreatedAt.Local().Format("2006-01-02"))
			}
			return w.Flush()
		}),
	}
}

type estimateFlags struct {
	contractor      string
	contractorEmail string
	contractorPhone string
	client          string
	clientEmail     string
	clientPhone     string
	clientAddress   string
	taxRate         float64
	items           []string
}

func (f *estimateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.contractor, "contractor", "", "Contractor name")
	cmd.Flags().StringVar(&f.contractorEmail, "contractor-email", "", "Contractor email")
	cmd.Flags().StringVar(&f.contractorPhone, "contractor-phone", "", "Contractor phone")
	cmd.Flags().StringVar(&f.client, "client", "", "Client name")
	cmd.Flags().StringVar(&f.clientEmail, "client-email", "", "Client email")
	cmd.Flags().StringVar(&f.clientPhone, "client-phone", "", "Client phone")
	cmd.Flags().StringVar(&f.clientAddress, "client-address", "", "Client address")
	cmd.Flags().Float64Var(&f.taxRate, "tax", 0, "Tax rate in percent")
}

// apply copies the flags that were set on the command line onto e.
func (f *estimateFlags) apply(cmd *cobra.Command, e *entities.Estimate) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("contractor", &e.Contractor.Name, f.contractor)
	set("contractor-email", &e.Contractor.Email, f.contractorEmail)
	set("contractor-phone", &e.Contractor.Phone, f.contractorPhone)
	set("client", &e.Client.Name, f.client)
	set("client-email", &e.Client.Email, f.clientEmail)
	set("client-phone", &e.Client.Phone, f.clientPhone)
	set("client-address", &e.Client.Address, f.clientAddress)
	if cmd.Flags().Changed("tax") {
		e.TaxRatePercent = f.taxRate
	}
}

func newNewCmd(opts *globalOptions) *cobra.Command {
	f := &estimateFlags{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an estimate",
		Example: `  zipquote new --contractor "Ana Builder" --client "Bob" --tax 8.5 \
    --item "Drywall:12:150" --item "Haul away:1:80"`,
		Args: cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			e := entities.NewEstimate(time.Now())
			f.apply(cmd, &e)
			if len(f.items) > 0 {
				e.Items = nil
				for _, raw := range f.items {
					it, err := parseItem(raw)
					if err != nil {
						return err
					}
					e.Items = append(e.Items, it)
				}
			}
			e.Normalize()

			saved, err := a.sync.Save(ctx, e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved estimate %s (total %s)\n", saved.ID, renderer.Money(decimal.NewFromFloat(saved.Total)))
			return nil
		}),
	}
	f.register(cmd)
	cmd.Flags().StringArrayVar(&f.items, "item", nil, `Line item as "name:quantity:unit price" (repeatable)`)
	return cmd
}

func newEditCmd(opts *globalOptions) *cobra.Command {
	f := &estimateFlags{}
	var remove []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an estimate's parties, tax rate or items",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			e, err := a.sync.Get(ctx, args[0])
			if err != nil {
				return err
			}
			f.apply(cmd, &e)
			for _, raw := range f.items {
				it, err := parseItem(raw)
				if err != nil {
					return err
				}
				e.UpsertItem(it)
			}
			for _, id := range remove {
				if !e.RemoveItem(id) {
					fmt.Fprintf(cmd.ErrOrStderr(), "item %s not removed (unknown id or last item)\n", id)
				}
			}
			e.Recompute()

			saved, err := a.sync.Save(ctx, e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated estimate %s (total %s)\n", saved.ID, renderer.Money(decimal.NewFromFloat(saved.Total)))
			return nil
		}),
	}
	f.register(cmd)
	cmd.Flags().StringArrayVar(&f.items, "add-item", nil, `Line item to add as "name:quantity:unit price" (repeatable)`)
	cmd.Flags().StringArrayVar(&remove, "remove-item", nil, "Item id to remove (repeatable)")
	return cmd
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			e, err := a.sync.Get(ctx, args[0])
			if err != nil {
				return err
			}
			md := renderer.Markdown(e)
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return err
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}),
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	return cmd
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an estimate",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			if err := a.sync.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted estimate %s\n", args[0])
			return nil
		}),
	}
}

func newQuotaCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show how many estimates the current plan allows",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			q, err := a.sync.Quota(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if q.Premium {
				fmt.Fprintf(out, "%d estimates saved (premium, unlimited)\n", q.Count)
				return nil
			}
			fmt.Fprintf(out, "%d/%d estimates saved (free plan)\n", q.Count, q.Limit)
			if !q.CanCreate {
				fmt.Fprintln(out, entities.QuotaExceededMessage)
			}
			return nil
		}),
	}
}

// parseItem reads "name:quantity:unit price"; the name may itself contain colons.
func parseItem(raw string) (entities.LineItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return entities.LineItem{}, fmt.Errorf("item %q: want name:quantity:unit price", raw)
	}
	n := len(parts)
	qty, err := strconv.ParseFloat(strings.TrimSpace(parts[n-2]), 64)
	if err != nil {
		return entities.LineItem{}, fmt.Errorf("item %q: quantity: %w", raw, err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(parts[n-1]), 64)
	if err != nil {
		return entities.LineItem{}, fmt.Errorf("item %q: unit price: %w", raw, err)
	}
	if !isFinite(qty) || !isFinite(price) {
		return entities.LineItem{}, fmt.Errorf("item %q: quantity and price must be finite numbers", raw)
	}
	if qty < 0 || price < 0 {
		return entities.LineItem{}, fmt.Errorf("item %q: quantity and price must not be negative", raw)
	}
	return entities.LineItem{
		Name:      strings.TrimSpace(strings.Join(parts[:n-2], ":")),
		Quantity:  qty,
		UnitPrice: price,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
