package report

import (
	"fmt"
	"strings"

	"portfolio-deck-api/domain"
)

const indicatorGlyph = "●"

// RenderSection paints every page of one report section: the record list is
// paginated independently per schema and each group becomes one table page.
func RenderSection(c Canvas, s *Schema, records []domain.Record) error {
	sizes, err := Paginate(len(records), MinPerPage, MaxPerPage)
	if err != nil {
		return fmt.Errorf("paginate %s: %w", s.Title, err)
	}
	for _, group := range SplitGroups(records, sizes) {
		if err := renderPage(c, s, group); err != nil {
			return fmt.Errorf("render %s: %w", s.Title, err)
		}
	}
	return nil
}

func renderPage(c Canvas, s *Schema, group []domain.Record) error {
	if s.Orientation == RowPerProject {
		renderRowPage(c, s, group)
		return nil
	}
	return renderColumnPage(c, s, group)
}

// renderRowPage paints a header row followed by one row per project.
func renderRowPage(c Canvas, s *Schema, group []domain.Record) {
	rows := 1 + len(group)
	table := c.AddTablePage(s.Title, s.TitleSize, rows, len(s.Columns), s.Frame)

	for i, col := range s.Columns {
		table.SetColumnWidth(i, col.Width)
		table.SetCell(0, i, Cell{
			Text:     col.Header,
			Fill:     &s.HeaderFill,
			FontSize: s.HeaderFontSize,
			Bold:     true,
			Centered: true,
		})
	}

	for r, rec := range group {
		for i, col := range s.Columns {
			table.SetCell(1+r, i, resolveCell(&col, rec))
		}
	}
}

// renderColumnPage paints fixed label columns followed by one column per
// project, with parameter rows driven by the schema.
func renderColumnPage(c Canvas, s *Schema, group []domain.Record) error {
	rows := 1 + len(s.Params)
	if s.ReasonLabel != "" {
		rows++
	}
	cols := len(s.LabelColumns) + len(group)
	table := c.AddTablePage(s.Title, s.TitleSize, rows, cols, s.Frame)

	_, dynamicWidth, err := AllocateColumns(len(group), s.Frame.W, s.AllocFixed)
	if err != nil {
		return err
	}
	for i, lc := range s.LabelColumns {
		table.SetColumnWidth(i, lc.Width)
	}
	for i := len(s.LabelColumns); i < cols; i++ {
		table.SetColumnWidth(i, dynamicWidth)
	}

	headerCell := func(text string) Cell {
		return Cell{Text: text, Fill: &s.HeaderFill, FontSize: s.HeaderFontSize, Bold: true, Centered: true}
	}
	for i, lc := range s.LabelColumns {
		table.SetCell(0, i, headerCell(lc.Header))
	}
	for p, rec := range group {
		table.SetCell(0, len(s.LabelColumns)+p, headerCell(projectLabel(rec, p)))
	}

	for r, param := range s.Params {
		row := 1 + r
		label := s.LabelColumns[0]
		table.SetCell(row, 0, Cell{Text: param.Label, Fill: &label.Fill, FontSize: label.FontSize, Bold: label.Bold})
		if len(s.LabelColumns) > 1 {
			desc := s.LabelColumns[1]
			table.SetCell(row, 1, Cell{Text: param.Desc, Fill: &desc.Fill, FontSize: desc.FontSize, Bold: desc.Bold})
		}

		for p, rec := range group {
			col := len(s.LabelColumns) + p
			value := rec.Field(param.Field)
			if s.Glyph {
				table.SetGlyph(row, col, indicatorGlyph, indicatorPalette.Color(ClassifyIndicator(value)))
				continue
			}
			fill := auditPalette.Color(ClassifyAudit(value))
			table.SetCell(row, col, finalize(Cell{Text: value, Fill: &fill, FontSize: s.ValueFontSize}))
		}
	}

	if s.ReasonLabel != "" {
		row := rows - 1
		label := s.LabelColumns[0]
		table.SetCell(row, 0, Cell{Text: s.ReasonLabel, Fill: &label.Fill, FontSize: 10, Bold: true})
		for p, rec := range group {
			table.SetCell(row, len(s.LabelColumns)+p, reasonCell(rec, s.ReasonField))
		}
	}
	return nil
}

// resolveCell runs the generic population step for one row-oriented cell:
// resolve the field, apply the schema's rule, classify, and map the category
// through the rule's palette.
func resolveCell(col *Column, rec domain.Record) Cell {
	cell := Cell{FontSize: col.FontSize, Bold: col.Bold, Centered: col.Centered, Fill: col.Fill}

	switch col.Rule {
	case RuleLiteral:
		cell.Text = col.Literal

	case RulePlain:
		cell.Text = rec.Field(col.Field)

	case RuleSentiment:
		cell.Text = rec.Field(col.Field)
		cell.Fill = fillFor(sentimentPalette, ClassifySentiment(cell.Text))

	case RuleCompletion:
		cell.Text = rec.Field(col.Field)
		cell.Fill = fillFor(completionPalette, ClassifyCompletion(cell.Text))

	case RuleFeedback:
		cell.Text = rec.Field(col.Field)
		cat := ClassifyFeedback(rec.Optional(col.Aux), cell.Text)
		cell.Fill = fillFor(feedbackPalette, cat)

	case RuleDetailsOverride:
		status := rec.Field(col.Field)
		if details, ok := presentDetails(rec.Optional(col.Aux)); ok {
			cell.Text = details
			cell.Fill = &colorAmber
		} else {
			cell.Text = status
			cell.Fill = fillFor(completionPalette, ClassifyCompletion(status))
		}

	case RuleScheduledDetails:
		status := rec.Field(col.Field)
		details, ok := presentDetails(rec.Optional(col.Aux))
		if !ok {
			cell.Text = status
			cell.Fill = fillFor(completionPalette, ClassifyCompletion(status))
			break
		}
		cell.Text = details
		lower := strings.ToLower(details)
		switch {
		case strings.Contains(lower, "scheduled") || strings.Contains(lower, "yet"):
			cell.Fill = &colorAmber
		case strings.Contains(lower, "not applicable") || strings.Contains(lower, "n/a"):
			cell.Fill = &colorSlate
		default:
			cell.Fill = fillFor(completionPalette, ClassifyCompletion(status))
		}

	case RulePairedUsage:
		used := rec.Field(col.Field)
		updated := rec.Field(col.Aux)
		switch {
		case affirmative(used) && affirmative(updated):
			cell.Text = "Concourse available\nRisks, documents\nare updated"
			cell.Fill = &colorDeepGreen
		case affirmative(used):
			cell.Text = "Concourse available\nNeeds to be\nupdated"
			cell.Fill = &colorAmber
		default:
			cell.Text = used
			cell.Fill = fillFor(completionPalette, ClassifyCompletion(used))
		}

	case RulePairedRollup:
		first := affirmative(rec.Field(col.Field))
		second := affirmative(rec.Field(col.Aux))
		switch {
		case first && second:
			cell.Text = "Yes"
			cell.Fill = &colorDeepGreen
		case first || second:
			cell.Text = "Partial"
			cell.Fill = &colorAmber
		default:
			cell.Text = "N/A"
			cell.Fill = &colorSlate
		}

	case RuleUpsellJoin:
		opportunity := fieldOr(rec, col.Field, "None")
		details := rec.Optional(col.Aux)
		cell.Text = opportunity
		if details != "" && !isNoneValue(opportunity) {
			cell.Text = opportunity + "\n" + details
		}

	case RuleUpsellFlag:
		cell.Text = fieldOr(rec, col.Field, "None")
		if affirmative(rec.Optional(col.Aux)) {
			cell.Fill = &colorSoftYellow
		} else {
			cell.Fill = &colorLightGray
		}
	}

	return finalize(cell)
}

func reasonCell(rec domain.Record, field string) Cell {
	reason := fieldOr(rec, field, "NA")
	trimmed := strings.TrimSpace(reason)
	if trimmed != "" && !strings.EqualFold(trimmed, "NA") {
		return Cell{Text: reason, Fill: &colorTan, FontSize: 8}
	}
	return Cell{Text: "NA", Fill: &colorLightGray, FontSize: 8}
}

// presentDetails reports whether a details field carries real content, as
// opposed to being absent or an explicit placeholder.
func presentDetails(details string) (string, bool) {
	trimmed := strings.TrimSpace(details)
	if trimmed == "" || strings.EqualFold(trimmed, "N/A") {
		return "", false
	}
	return details, true
}

// finalize substitutes the display placeholder for empty cell text.
func finalize(cell Cell) Cell {
	if cell.Text == "" {
		cell.Text = domain.Missing
	}
	return cell
}

func fillFor(p Palette, cat Category) *RGB {
	rgb := p.Color(cat)
	return &rgb
}

func projectLabel(rec domain.Record, idx int) string {
	if _, ok := rec["Project Name"]; !ok {
		return fmt.Sprintf("Project %d", idx+1)
	}
	return rec["Project Name"]
}

func fieldOr(rec domain.Record, field, fallback string) string {
	if v, ok := rec[field]; ok {
		return v
	}
	return fallback
}

func affirmative(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "YES", "Y":
		return true
	}
	return false
}

func isNoneValue(value string) bool {
	lower := strings.ToLower(value)
	return lower == "none" || lower == "n/a"
}
