package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/calculator"
	"chargecalc/backend/services/calculator-service/internal/config"
	"chargecalc/backend/services/calculator-service/internal/models"
	"chargecalc/backend/services/calculator-service/internal/service"
)

type estimateFlags struct {
	battery float64
	start   float64
	end     float64
	price   float64
	voltage float64
}

func newEstimateCommand() *cobra.Command {
	var flags estimateFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate charging time, cost and environmental impact",
		Long: `Estimate a single charge in the terminal. Flags left unset take the configured defaults.

Examples:
  calculator-service estimate
  calculator-service estimate --battery 26.8 --start 20 --end 80 --price 0.16428
  calculator-service estimate --battery 60 --start 10 --end 90 --voltage 240`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, flags)
		},
	}

	cmd.Flags().Float64Var(&flags.battery, "battery", 0, "Battery size in kWh")
	cmd.Flags().Float64Var(&flags.start, "start", 0, "Start state of charge in %")
	cmd.Flags().Float64Var(&flags.end, "end", 0, "Target state of charge in %")
	cmd.Flags().Float64Var(&flags.price, "price", 0, "Electricity price before tax in €/kWh")
	cmd.Flags().Float64Var(&flags.voltage, "voltage", calculator.DefaultVoltage, "Supply voltage in V")
	return cmd
}

func runEstimate(cmd *cobra.Command, flags estimateFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	req := models.EstimateRequest{
		BatterySizeKWh: cfg.Defaults.BatterySizeKWh,
		StartPct:       cfg.Defaults.StartPercentage,
		EndPct:         cfg.Defaults.EndPercentage,
		Voltage:        &flags.voltage,
	}
	if cmd.Flags().Changed("battery") {
		req.BatterySizeKWh = flags.battery
	}
	if cmd.Flags().Changed("start") {
		req.StartPct = flags.start
	}
	if cmd.Flags().Changed("end") {
		req.EndPct = flags.end
	}
	if cmd.Flags().Changed("price") {
		req.UnitPrice = &flags.price
	}

	// Terminal output is the result; logs would interleave with it.
	logger := zap.NewNop()
	tariffs := service.NewTariffService(nil, nil, cfg.Defaults.UnitPriceBeforeTax, logger)
	resp, err := service.NewEstimateService(tariffs, logger).Estimate(cmd.Context(), service.ChannelCLI, req)
	if err != nil {
		st := newStyles(cmd.ErrOrStderr())
		fmt.Fprintln(cmd.ErrOrStderr(), st.err.Render("Error: "+err.Error()))
		return fmt.Errorf("estimate: %w", err)
	}

	renderEstimate(cmd.OutOrStdout(), resp)
	return nil
}

func renderEstimate(out io.Writer, resp *models.EstimateResponse) {
	st := newStyles(out)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			st.header.Render("Current"),
			st.header.Render("Power"),
			st.header.Render("Duration"),
			st.header.Render("Per 10%"),
		),
	}
	for _, c := range resp.ChargeTimes {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			st.cell.Render(fmt.Sprintf("%gA", c.Amperage)),
			st.cell.Render(fmt.Sprintf("%gkW", c.PowerKW)),
			st.cell.Render(c.Duration),
			st.cell.Render(c.TimePer10Percent),
		))
	}

	cost := summary(st, [][2]string{
		{"Unit price before tax", fmt.Sprintf("€%g/kWh", resp.Cost.UnitPriceBeforeTax)},
		{"Energy needed", fmt.Sprintf("%.2f kWh", resp.Cost.EnergyNeededKWh)},
		{"Cost incl. 20% VAT", resp.Cost.TotalCost},
		{"Full charge (0-100%)", resp.Cost.FullChargeCost},
	})

	env := resp.Environment
	impact := summary(st, [][2]string{
		{"Estimated range", env.RangeKM + " km"},
		{"EV CO2 emissions", env.EVEmissions},
		{"CO2 saved vs petrol", env.CO2SavingsPetrolKg + " kg"},
		{"CO2 saved vs diesel", env.CO2SavingsDieselKg + " kg"},
		{"NOx saved vs petrol / diesel", env.NOxSavedPetrolG + " g / " + env.NOxSavedDieselG + " g"},
		{"PM saved vs petrol / diesel", env.PMSavedPetrolG + " g / " + env.PMSavedDieselG + " g"},
	})

	fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(fmt.Sprintf("Charging time at %gV", resp.Voltage)),
		st.box.Render(strings.Join(rows, "\n")),
		st.title.Render("Charging cost"),
		st.box.Render(cost),
		st.title.Render("Environmental impact"),
		st.box.Render(impact),
	))
}

func summary(st styles, lines [][2]string) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(line[0]), st.value.Render(line[1])))
	}
	return strings.Join(rendered, "\n")
}
