package ui

import (
	"strconv"

	"github.com/K0NGR3SS/riskmap/internal/models"
	"github.com/pterm/pterm"
)

// RegisterTable returns the rows PrintRegister renders, header first.
func RegisterTable(reg models.Register) [][]string {
	data := [][]string{
		{"#", "Risk", "Severity", "Probability", "Score", "Level", "Color"},
	}

	for i, e := range reg {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			pterm.FgCyan.Sprint(e.Name),
			formatPercent(e.Severity),
			formatPercent(e.Probability),
			strconv.FormatFloat(e.Score(), 'f', -1, 64),
			levelStyle(e.Level()),
			e.Color,
		})
	}
	return data
}

func PrintRegister(reg models.Register) {
	if len(reg) == 0 {
		pterm.Warning.Println("Risk register is empty.")
		return
	}

	pterm.Info.Printf("Risk register (%d entries):\n\n", len(reg))
	_ = pterm.DefaultTable.WithHasHeader().WithData(RegisterTable(reg)).Render()
}

func levelStyle(level models.RiskLevel) string {
	switch level {
	case models.RiskCritical:
		return pterm.FgRed.Sprint("CRITICAL")
	case models.RiskHigh:
		return pterm.FgLightRed.Sprint("HIGH")
	case models.RiskMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgGreen.Sprint("LOW")
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(text)
	return spinner
}

// UpdateSpinner is a no-op on a nil spinner.
func UpdateSpinner(spinner *pterm.SpinnerPrinter, text string) {
	if spinner == nil {
		return
	}
	spinner.UpdateText(text)
}
