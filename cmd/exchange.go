package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
)

type exchangeFlags struct {
	Seller      string
	Buyer       string
	FeeAccount  string
	Asset       string
	Amount      string
	PriceAsset  string
	Price       string
	FeeRate     string
	Description string
}

func NewExchangeCmd(application *app.App) *cobra.Command {
	flags := &exchangeFlags{}

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Book a trade between two customers",
		Long: `Book a trade: the seller hands --amount of --asset to the buyer, who pays
--price of --price-asset. Both sides are charged the fee rate on what they
receive; the fees are credited to --fee-account.`,
		Example: `  ledger exchange --seller 1401 --buyer 1400 --fee-account 8400 \
    --asset BTC --amount 4.5 --price-asset EUR --price 320.85`,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := application.Service.Journal.Exchange(service.ExchangeInput{
				Seller:      flags.Seller,
				Buyer:       flags.Buyer,
				FeeAccount:  flags.FeeAccount,
				Asset:       flags.Asset,
				Amount:      flags.Amount,
				PriceAsset:  flags.PriceAsset,
				Price:       flags.Price,
				FeeRate:     flags.FeeRate,
				Description: flags.Description,
			})
			if err != nil {
				return err
			}

			if err := views.RenderJournalPreview(journal); err != nil {
				return err
			}
			pterm.Success.Printf("Journal %s posted\n", journal.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Seller, "seller", "", "Account code handing over the asset")
	cmd.Flags().StringVar(&flags.Buyer, "buyer", "", "Account code paying the price")
	cmd.Flags().StringVar(&flags.FeeAccount, "fee-account", "", "Income account collecting the fees")
	cmd.Flags().StringVar(&flags.Asset, "asset", "", "Asset being sold, e.g. BTC")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Quantity of the asset")
	cmd.Flags().StringVar(&flags.PriceAsset, "price-asset", "", "Asset the price is paid in, e.g. EUR")
	cmd.Flags().StringVar(&flags.Price, "price", "", "Total price")
	cmd.Flags().StringVar(&flags.FeeRate, "fee-rate", "", "Fee rate, overrides fees.rate from the config")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Journal description")

	for _, name := range []string{"seller", "buyer", "asset", "amount", "price-asset", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
