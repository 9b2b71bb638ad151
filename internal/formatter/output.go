// Package formatter renders analysis results for the command line.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"gopkg.in/yaml.v3"

	"github.com/healthtrend/backend/internal/domain"
)

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// DisplayResults writes the result in the requested format
func DisplayResults(w io.Writer, result domain.AnalysisResult, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, result)
	case FormatYAML:
		return displayYAML(w, result)
	case FormatHuman:
		fallthrough
	default:
		displayHuman(w, result)
	}
	return nil
}

func displayJSON(w io.Writer, result domain.AnalysisResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// displayYAML goes through JSON first so YAML keys match the JSON contract.
func displayYAML(w io.Writer, result domain.AnalysisResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	output, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHuman(w io.Writer, result domain.AnalysisResult) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	t := result.Trends
	bundle := result.Recommendations

	fmt.Fprintln(w)

	gradeColor(t.Overall.Grade).Fprintf(w, "📊 HEALTH SCORE: %d (%s)\n", t.Overall.Score, t.Overall.Grade)
	for _, f := range t.Overall.Factors {
		fmt.Fprintf(w, "   - %s\n", f)
	}
	fmt.Fprintln(w)

	white.Fprintln(w, "📈 TRENDS:")
	fmt.Fprintf(w, "   BMI:            %s\n", describeBMI(t.BMI))
	fmt.Fprintf(w, "   Blood pressure: %s\n", describeBloodPressure(t.BloodPressure))
	fmt.Fprintf(w, "   Blood sugar:    %s\n", describeBloodSugar(t.BloodSugar))
	fmt.Fprintf(w, "   Lifestyle:      %s\n\n", describeLifestyle(t.Lifestyle))

	plotSeries(w, "BMI", pointValues(t.BMI.Data))
	plotSeries(w, "Systolic (mmHg)", systolicValues(t.BloodPressure.Data))
	plotSeries(w, "Blood sugar (mg/dL)", pointValues(t.BloodSugar.Data))

	if len(result.RiskFactors) > 0 {
		red.Fprintln(w, "⚠️  RISK FACTORS:")
		for i, r := range result.RiskFactors {
			fmt.Fprintf(w, "   %d. %s %s\n", i+1, getLevelIcon(r.Level), r.Type)
			fmt.Fprintf(w, "      %s\n", r.Description)
		}
		fmt.Fprintln(w)
	}

	if len(result.Improvements) > 0 {
		green.Fprintln(w, "✅ IMPROVEMENTS:")
		for _, imp := range result.Improvements {
			fmt.Fprintf(w, "   - %s\n", imp.Description)
		}
		fmt.Fprintln(w)
	}

	cyan.Fprintln(w, "💡 ASSESSMENT:")
	fmt.Fprintln(w, wrapText(bundle.OverallAssessment, 80, "   "))
	fmt.Fprintln(w)

	buckets := []struct {
		title string
		items []string
	}{
		{"Warnings", bundle.Recommendations.Warning},
		{"Diet", bundle.Recommendations.Diet},
		{"Exercise", bundle.Recommendations.Exercise},
		{"Lifestyle", bundle.Recommendations.Lifestyle},
		{"Medication", bundle.Recommendations.Medication},
		{"Monitoring", bundle.Recommendations.Monitoring},
	}
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		yellow.Fprintf(w, "%s:\n", strings.ToUpper(b.title))
		for _, item := range b.items {
			fmt.Fprintln(w, wrapText("• "+item, 80, "   "))
		}
		fmt.Fprintln(w)
	}

	if len(bundle.MonitoringPlan) > 0 {
		white.Fprintln(w, "🗓  MONITORING PLAN:")
		for _, p := range bundle.MonitoringPlan {
			fmt.Fprintf(w, "   - %s\n", p)
		}
		fmt.Fprintln(w)
	}

	if len(bundle.MedicationNotes) > 0 {
		white.Fprintln(w, "💊 MEDICATION NOTES:")
		for _, n := range bundle.MedicationNotes {
			fmt.Fprintln(w, wrapText("- "+n, 80, "   "))
		}
		fmt.Fprintln(w)
	}

	if bundle.FollowUp != "" {
		green.Fprintln(w, "🩺 FOLLOW-UP:")
		fmt.Fprintf(w, "   %s\n\n", color.GreenString(bundle.FollowUp))
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	source := bundle.Meta.Source
	if bundle.Meta.Reason != "" {
		source += " (" + bundle.Meta.Reason + ")"
	}
	fmt.Fprintf(w, "Recommendations: %s\n", color.HiBlackString(source))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// minPlotPoints is the shortest series worth charting.
const minPlotPoints = 3

func plotSeries(w io.Writer, caption string, values []float64) {
	if len(values) < minPlotPoints {
		return
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Offset(6),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)
}

func pointValues(points []domain.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func systolicValues(points []domain.BloodPressurePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Systolic
	}
	return out
}

func describeBMI(t domain.BMITrend) string {
	if t.Current == nil {
		return string(t.Trend)
	}
	return fmt.Sprintf("%.1f %s, %s", *t.Current, t.Category, t.Trend)
}

func describeBloodPressure(t domain.BloodPressureTrend) string {
	if t.Average == nil {
		return string(t.Trend)
	}
	return fmt.Sprintf("avg %.0f/%.0f mmHg, %s risk, %s", t.Average.Systolic, t.Average.Diastolic, t.RiskLevel, t.Trend)
}

func describeBloodSugar(t domain.BloodSugarTrend) string {
	if t.Average == nil {
		return string(t.Trend)
	}
	return fmt.Sprintf("avg %.1f mg/dL, %s risk, %s", *t.Average, t.DiabetesRisk, t.Trend)
}

func describeLifestyle(t domain.LifestyleTrend) string {
	if !t.Trend.HasResult() && t.Trend != domain.TrendInsufficientData {
		return string(t.Trend)
	}
	return fmt.Sprintf("exercise %s min (%s), sleep %s h (%s), stress %s (%s)",
		t.Exercise.Average, t.Exercise.Recommendation,
		t.Sleep.Average, t.Sleep.Recommendation,
		t.Stress.Average, t.Stress.Level)
}

func gradeColor(grade string) *color.Color {
	switch grade {
	case "A", "B":
		return color.New(color.FgGreen, color.Bold)
	case "C":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func getLevelIcon(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return "🔴"
	case domain.RiskModerate:
		return "🟡"
	case domain.RiskLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
