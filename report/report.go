package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

const reportWidth = 56

var (
	AccentColor = lipgloss.Color("33")
	SafeColor   = lipgloss.Color("35")
	ShakyColor  = lipgloss.Color("178")
	DangerColor = lipgloss.Color("203")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1).Width(reportWidth)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

var statNames = [6]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

// RenderDamageReport lays out one damage calc as a bordered panel. Names are
// passed in separately so callers can show nicknames or set descriptions.
func RenderDamageReport(attackerName, defenderName, moveName string, res vgccalc.DamageResult) string {
	title := titleStyle.Render(fmt.Sprintf("%s %s vs %s", attackerName, moveName, defenderName))

	if res.Immune {
		body := lipgloss.JoinVertical(lipgloss.Left,
			title,
			labelStyle.Render("No damage"),
			res.KoChance,
		)
		return panelStyle.Render(body)
	}

	rangeLine := fmt.Sprintf("%s %s", labelStyle.Render("Damage"), res.DamageRange())
	if res.Crit {
		rangeLine += " (crit)"
	}
	if res.HitCount > 1 {
		rangeLine += fmt.Sprintf(" over %d hits", res.HitCount)
	}

	color := verdictColor(res)
	lines := []string{
		title,
		rangeLine,
		gauge(res.MaxPercent, reportWidth-4, color),
	}

	if res.TypeEffectiveness != 1 {
		lines = append(lines, fmt.Sprintf("%s x%g", labelStyle.Render("Effectiveness"), res.TypeEffectiveness))
	}
	if len(res.AppliedMods) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Mods"), strings.Join(res.AppliedMods, ", ")))
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(res.KoChance))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderSpeedReport shows outspeed shares against one target plus the most
// common spreads behind them.
func RenderSpeedReport(res vgccalc.SpeedTierResult) string {
	title := titleStyle.Render(fmt.Sprintf("%d Speed vs %s (base %d)", res.YourSpeed, res.TargetName, res.TargetBaseSpeed))

	lines := []string{
		title,
		shareLine("Outspeed", res.OutspeedPct, SafeColor),
		shareLine("Tie", res.TiePct, ShakyColor),
		shareLine("Outsped", res.UnderspeedPct, DangerColor),
		res.Analysis,
	}

	top := lo.Subset(res.Distribution, 0, 5)
	if len(top) > 0 {
		lines = append(lines, labelStyle.Render("Common spreads"))
		for _, point := range top {
			lines = append(lines, fmt.Sprintf("  %3d  %s %d EVs  %.1f%%", point.Speed, point.Nature, point.SpeedEvs, point.UsagePct))
		}
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderSpreadReport shows a suggested EV spread in the usual paste order.
func RenderSpreadReport(name string, res vgccalc.SpreadResult) string {
	title := titleStyle.Render(fmt.Sprintf("Suggested spread for %s", name))

	statLine := make([]string, 0, 6)
	for i, stat := range res.Stats {
		statLine = append(statLine, fmt.Sprintf("%d %s", stat, statNames[i]))
	}

	lines := []string{
		title,
		fmt.Sprintf("%s %s", labelStyle.Render("Nature"), res.Nature.Name),
		fmt.Sprintf("%s %s", labelStyle.Render("EVs"), EvLine(res.Evs)),
		fmt.Sprintf("%s %s", labelStyle.Render("Stats"), strings.Join(statLine, " / ")),
		res.Reasoning,
	}

	if res.EvSavings > 0 {
		lines = append(lines, fmt.Sprintf("Nature saves %d EVs", res.EvSavings))
	}
	if !res.Reachable {
		lines = append(lines, lipgloss.NewStyle().Foreground(DangerColor).Render("Some targets are out of reach"))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderChipReport shows residual damage turn by turn.
func RenderChipReport(name string, sim vgccalc.ChipSimulation) string {
	title := titleStyle.Render(fmt.Sprintf("Residuals on %s over %d turns", name, sim.TurnsSimulated))

	lines := []string{title}
	for _, turn := range sim.Turns {
		sources := make([]string, 0, len(turn.Effects))
		for _, effect := range turn.Effects {
			sources = append(sources, effect.Source)
		}

		lines = append(lines, fmt.Sprintf("T%d  %d/%d (%.1f%%)  %s", turn.Turn, turn.HpAfter, sim.MaxHp, turn.HpPercent, strings.Join(sources, ", ")))
	}

	final := fmt.Sprintf("Net %+d HP", sim.NetChange)
	if sim.Fainted {
		final = lipgloss.NewStyle().Foreground(DangerColor).Render("Faints to residual damage")
	}
	lines = append(lines, final)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// EvLine formats a spread the way sets are usually written,
// e.g. "252 HP / 4 Def / 252 Spe". Zero stats are left out.
func EvLine(evs [6]int) string {
	parts := make([]string, 0, 6)
	for i, ev := range evs {
		if ev == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", ev, statNames[i]))
	}

	if len(parts) == 0 {
		return "no EVs"
	}

	return strings.Join(parts, " / ")
}

func shareLine(label string, pct float64, color lipgloss.Color) string {
	return fmt.Sprintf("%-8s %5.1f%% %s", label, pct, gauge(pct, reportWidth-20, color))
}

func gauge(pct float64, width int, color lipgloss.Color) string {
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

func verdictColor(res vgccalc.DamageResult) lipgloss.Color {
	ko := res.KoProbability
	if ko == nil {
		return SafeColor
	}

	switch {
	case ko.Ohko >= 100:
		return DangerColor
	case ko.Ohko > 0 || ko.TwoHko >= 100:
		return ShakyColor
	default:
		return SafeColor
	}
}
