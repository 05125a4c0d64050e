package report

// ColumnRule selects how a cell's value and fill are derived. Most columns
// are plain copies or single-classifier cells; the remaining rules encode the
// per-schema business quirks (details overrides, AND/OR roll-ups, text joins)
// exactly as the review process defines them.
type ColumnRule int

const (
	RulePlain ColumnRule = iota
	RuleLiteral
	RuleSentiment
	RuleCompletion
	RuleFeedback
	// RuleDetailsOverride shows the companion details text on an amber fill
	// when present, otherwise the status value with its completion color.
	RuleDetailsOverride
	// RuleScheduledDetails is the SME variant of the override: the details
	// wording itself decides between amber (scheduled), gray (not
	// applicable) and the status completion color.
	RuleScheduledDetails
	// RulePairedUsage combines a tool-adoption answer with its upkeep
	// answer: both yes is green with a canned caption, adoption alone is
	// amber with a canned caption, otherwise the raw adoption answer.
	RulePairedUsage
	// RulePairedRollup folds two yes/no answers into Yes / Partial / N/A:
	// both yes for green, either yes for amber.
	RulePairedRollup
	// RuleUpsellJoin appends the details line to the opportunity flag when
	// the flag is a real opportunity.
	RuleUpsellJoin
	// RuleUpsellFlag highlights the cell when the companion
	// active-opportunities answer is affirmative.
	RuleUpsellFlag
)

// Column describes one column of a row-per-project table.
type Column struct {
	Header   string
	Width    float64
	Field    string
	Aux      string // companion field: satisfaction level, details, pair second half
	Rule     ColumnRule
	Literal  string
	FontSize float64
	Bold     bool
	Centered bool
	Fill     *RGB // static background for plain cells
}

// LabelColumn is a fixed leading column of a column-per-project table.
type LabelColumn struct {
	Header   string
	Width    float64
	Fill     RGB
	FontSize float64
	Bold     bool
}

// ParamRow is one fixed row of a column-per-project table.
type ParamRow struct {
	Label string // left label, may carry bullet sub-items
	Desc  string // review description column, empty when the schema has none
	Field string
}

// Orientation says which axis projects occupy.
type Orientation int

const (
	RowPerProject Orientation = iota
	ColumnPerProject
)

// Schema is the immutable declarative description of one report section.
// Six exist, one per report type; they are defined once and never mutated.
type Schema struct {
	Section        string // divider page title
	Title          string // content page title
	TitleSize      float64
	Frame          Frame
	HeaderFill     RGB
	HeaderFontSize float64
	Orientation    Orientation

	// RowPerProject layout.
	Columns []Column

	// ColumnPerProject layout.
	LabelColumns  []LabelColumn
	Params        []ParamRow
	AllocFixed    float64 // fixed width handed to the column allocator
	ValueFontSize float64
	Glyph         bool   // paint indicator glyphs instead of colored cells
	ReasonLabel   string // optional trailing free-text row
	ReasonField   string
}

const contractDatesPlaceholder = "2021\nSeptember-\n2027 March"

var projectHealthSchema = Schema{
	Section:        "Project Health Status",
	Title:          "Project Health Status",
	TitleSize:      28,
	Frame:          Frame{X: 0.5, Y: 1.1, W: 12.33, H: 5.9},
	HeaderFill:     colorHeaderGray,
	HeaderFontSize: 9,
	Orientation:    RowPerProject,
	Columns: []Column{
		{Header: "Project\nName", Width: 1.2, Field: "Project Name", Rule: RulePlain, FontSize: 10, Bold: true},
		{Header: "PMD/\nUS Lead/\nAC Lead", Width: 1.1, Field: "PMD Name", Rule: RulePlain, FontSize: 9},
		{Header: "Contract\nStart Date\n& End Date", Width: 0.9, Rule: RuleLiteral, Literal: contractDatesPlaceholder, FontSize: 9},
		{Header: "Overall\nStatus\n(Red/Amber/\nGreen)", Width: 0.9, Field: "Overall Status", Rule: RuleSentiment, FontSize: 10, Bold: true, Centered: true},
		{Header: "Staffing", Width: 0.8, Field: "Staffing Status", Rule: RuleSentiment, FontSize: 10, Bold: true, Centered: true},
		{Header: "Scope", Width: 0.8, Field: "Scope Status", Rule: RuleSentiment, FontSize: 10, Bold: true, Centered: true},
		{Header: "Project\nGovernance", Width: 0.9, Field: "Project Governance Status", Rule: RuleSentiment, FontSize: 10, Bold: true, Centered: true},
		{Header: "Escalation\nManagement", Width: 0.9, Field: "Escalation Management Status1", Rule: RuleSentiment, FontSize: 10, Bold: true, Centered: true},
		{Header: "Reason\nfor Amber\n/ Red", Width: 1.0, Field: "Reason for Amber / Red", Rule: RulePlain, FontSize: 9},
		{Header: "Total FTEs", Width: 1.0, Field: "Total FTEs", Rule: RulePlain, FontSize: 9},
		{Header: "Highlights", Width: 1.5, Field: "Project Highlights", Rule: RulePlain, FontSize: 9},
		{Header: "Up-sell/Cross-sell\nOpportunities", Width: 1.2, Field: "Up-sell / Cross-sell Opportunities", Aux: "Up-sell / Cross-sell Details", Rule: RuleUpsellJoin, FontSize: 9},
	},
}

var ticketQualitySchema = Schema{
	Section:        "Ticket Quality Checks - Incidents",
	Title:          "Ticket Quality Checks (Incidents)",
	TitleSize:      26,
	Frame:          Frame{X: 0.5, Y: 1.1, W: 12.33, H: 5.9},
	HeaderFill:     colorSlate,
	HeaderFontSize: 11,
	Orientation:    ColumnPerProject,
	LabelColumns: []LabelColumn{
		{Header: "Ticket Quality Parameter", Width: 1.8, Fill: colorRose, FontSize: 10, Bold: true},
		{Header: "Review Description", Width: 3.2, Fill: colorLightGray, FontSize: 9},
	},
	AllocFixed:    5.0,
	ValueFontSize: 9,
	Params: []ParamRow{
		{Label: "Tool", Desc: "What is the ticketing tool used in project?", Field: "Tool"},
		{Label: "Description", Desc: "Description clearly added to the ticket?", Field: "Description"},
		{Label: "Steps to Reproduce", Desc: "Are the steps to reproduce clearly stated in the ticket?", Field: "Steps to Reproduce"},
		{Label: "Module", Desc: "Is there a field in the ticketing tool that tags the ticket to particular SE functionality?", Field: "Module"},
		{Label: "Priority", Desc: "Is Business Priority captured?", Field: "Priority"},
		{Label: "Owner", Desc: "Is Owner properly assigned to ticket?", Field: "Owner"},
		{Label: "SLA", Desc: "Is SLA tracked for the ticket?", Field: "SLA"},
		{Label: "RCA", Desc: "Is RCA updated on ticket?", Field: "RCA"},
		{Label: "Ticket Status", Desc: "Is Status being updated regularly and correctly?", Field: "Ticket Status"},
		{Label: "Comments (Team Follow-up)", Desc: "Is team regularly updating ticket with appropriate and clear comments?", Field: "Comments (Team Follow-up)"},
		{Label: "Closing Comments", Desc: "Is resolution comments added after issue is fixed?", Field: "Closing Comments"},
		{Label: "QA Test Results", Desc: "Is QA creating Test task and adding all necessary documentations before closure?", Field: "QA Test Results"},
		{Label: "Tracking Changes", Desc: "Is the modified components list updated on ticket?", Field: "Tracking Changes"},
	},
}

var enhancementQualitySchema = Schema{
	Section:        "Quality Checks - Enhancements/Bugs",
	Title:          "Quality Checks (Enhancements/Bugs)",
	TitleSize:      26,
	Frame:          Frame{X: 0.5, Y: 1.1, W: 12.33, H: 5.9},
	HeaderFill:     colorSlate,
	HeaderFontSize: 11,
	Orientation:    ColumnPerProject,
	LabelColumns: []LabelColumn{
		{Header: "Ticket Quality Parameter", Width: 1.8, Fill: colorRose, FontSize: 10, Bold: true},
		{Header: "Review Description", Width: 3.2, Fill: colorLightGray, FontSize: 9},
	},
	AllocFixed:    5.0,
	ValueFontSize: 9,
	Params: []ParamRow{
		{Label: "Review Process", Desc: "How is the review done?", Field: "Review Process"},
		{Label: "Tool1", Desc: "What is the tool used?", Field: "Tool1"},
		{Label: "Story Point", Desc: "How is the story point measured and assigned?", Field: "Story Point"},
		{Label: "Acceptance Criteria", Desc: "Is AC being captured for stories?", Field: "Acceptance Criteria"},
		{Label: "Story / Defect Description", Desc: "Is there a proper description added for stories?", Field: "Story / Defect Description"},
		{Label: "Module1", Desc: "Is there a field on ticketing tool that tags story to particular functionality?", Field: "Module1"},
		{Label: "Priority1", Desc: "Is Business Priority captured on story", Field: "Priority1"},
		{Label: "Owner1", Desc: "Is Owner properly assigned to story?", Field: "Owner1"},
		{Label: "Sprint Tag", Desc: "Is correct Sprint tagged to story?", Field: "Sprint Tag"},
		{Label: "Ticket Status1", Desc: "Is Status being updated regularly and correctly?", Field: "Ticket Status1"},
		{Label: "Comments / Team Follow-up", Desc: "Is team regularly following up on ticket if story is blocked?", Field: "Comments / Team Follow-up"},
		{Label: "QA Test Results1", Desc: "Is QA creating Test task and adding all necessary documentations before closure?", Field: "QA Test Results1"},
		{Label: "Technical Changes", Desc: "Is the modified components list updated on story?", Field: "Technical Changes"},
		{Label: "RCA (Root Cause Analysis)", Desc: "Is RCA updated if it is bug?", Field: "RCA (Root Cause Analysis)"},
	},
}

var feedbackSummarySchema = Schema{
	Section:        "Feedback Summary",
	Title:          "Feedback Summary",
	TitleSize:      28,
	Frame:          Frame{X: 0.5, Y: 1.1, W: 12.33, H: 5.9},
	HeaderFill:     colorSlate,
	HeaderFontSize: 10,
	Orientation:    RowPerProject,
	Columns: []Column{
		{Header: "Project Name", Width: 1.4, Field: "Project Name", Rule: RulePlain, FontSize: 10, Bold: true, Fill: &colorSilver},
		{Header: "PMD", Width: 1.1, Field: "PMD Name", Rule: RulePlain, FontSize: 9, Fill: &colorLightGray},
		{Header: "US Lead", Width: 1.1, Field: "US Lead Name", Rule: RulePlain, FontSize: 9, Fill: &colorLightGray},
		{Header: "AC Lead", Width: 1.1, Field: "AC Lead Name", Rule: RulePlain, FontSize: 9, Fill: &colorLightGray},
		{Header: "Onshore Team\nFeedback", Width: 2.1, Field: "Onshore Team Feedback", Aux: "Overall Onshore Satisfaction", Rule: RuleFeedback, FontSize: 9},
		{Header: "Client Feedback", Width: 2.1, Field: "Client Feedback", Aux: "Overall Client Satisfaction", Rule: RuleFeedback, FontSize: 9},
		{Header: "Offshore Team\nFeedback", Width: 1.9, Field: "Offshore Team Feedback", Rule: RulePlain, FontSize: 9, Fill: &colorLightGray},
		{Header: "Up-Sell/Cross-sell\nOpportunities", Width: 1.5, Field: "Up-sell / Cross-sell Opportunities1", Aux: "Are there any active Up-Sell/Cross-Sell opportunities?", Rule: RuleUpsellFlag, FontSize: 9},
	},
}

var salesforceQualitySchema = Schema{
	Section:        "Salesforce Project Quality",
	Title:          "Salesforce Project Quality",
	TitleSize:      28,
	Frame:          Frame{X: 0.5, Y: 1.0, W: 12.4, H: 6.2},
	HeaderFill:     colorSlate,
	HeaderFontSize: 8,
	Orientation:    RowPerProject,
	Columns: []Column{
		{Header: "Project Name", Width: 1.2, Field: "Project Name", Rule: RulePlain, FontSize: 9, Bold: true, Fill: &colorSilver},
		{Header: "PMD", Width: 0.95, Field: "PMD Name", Rule: RulePlain, FontSize: 8, Fill: &colorLightGray},
		{Header: "US Lead", Width: 0.95, Field: "US Lead Name", Rule: RulePlain, FontSize: 8, Fill: &colorLightGray},
		{Header: "AC Lead", Width: 0.95, Field: "AC Lead Name", Rule: RulePlain, FontSize: 8, Fill: &colorLightGray},
		{Header: "DEH tool\nUpdates", Width: 0.95, Field: "Are DEH tool updates completed and up to date?", Rule: RuleCompletion, FontSize: 8, Centered: true},
		{Header: "NexGen\nPort\nUpdates", Width: 1.05, Field: "Are NexGen Portal updates completed for the project?", Aux: "If NexGen updates are partial or pending, please provide details_x002e_", Rule: RuleDetailsOverride, FontSize: 7, Centered: true},
		{Header: "Peer\nReviews", Width: 0.95, Field: "Are Peer Reviews conducted regularly?", Rule: RuleCompletion, FontSize: 8, Centered: true},
		{Header: "SME Reviews", Width: 1.05, Field: "Are SME Reviews conducted for the project?", Aux: "If SME reviews are scheduled or not applicable, please provide details_x002e_", Rule: RuleScheduledDetails, FontSize: 7, Centered: true},
		{Header: "Concourse\nAdoption-\nRAID\nLogs/SaveIT", Width: 1.1, Field: "Is Concourse being used for RAID logs and documentation?", Aux: "Are risks, issues, and documents regularly updated in Concourse?", Rule: RulePairedUsage, FontSize: 7, Centered: true},
		{Header: "Ticket\nAudits", Width: 0.95, Field: "Are Ticket Audits performed regularly?", Rule: RuleCompletion, FontSize: 8, Centered: true},
		{Header: "RCA\nDocument\n-ation", Width: 1.05, Field: "Is RCA documentation available and up to date (for defects/issues)?", Aux: "If RCA documentation is missing or pending, please explain_x002e_", Rule: RuleDetailsOverride, FontSize: 7, Centered: true},
		{Header: "Capacity\nPlanning +\nVacation\ntracker/\nShifts\nRoster", Width: 1.1, Field: "Is capacity planning completed and reviewed?", Aux: "Is vacation tracking and shift roster maintained for the team?", Rule: RulePairedRollup, FontSize: 8, Centered: true},
	},
}

var deliveryReviewSchema = Schema{
	Section:        "Delivery Review Summary",
	Title:          "Delivery Review Summary",
	TitleSize:      28,
	Frame:          Frame{X: 0.5, Y: 1.1, W: 12.33, H: 5.9},
	HeaderFill:     colorSlate,
	HeaderFontSize: 11,
	Orientation:    ColumnPerProject,
	LabelColumns: []LabelColumn{
		{Header: "Project Name", Width: 2.5, Fill: colorRosyBrown, FontSize: 8, Bold: true},
	},
	AllocFixed: 2.5,
	Glyph:      true,
	Params: []ParamRow{
		{Label: "Operational/Governance\n  • Staffing\n  • Scope\n  • Project Governance\n  • Escalation Management", Field: "Operational / Governance"},
		{Label: "Quality\n  • Peer review tracker\n  • SME Reviews\n  • Ticket Audits\n  • RCA Documentation for Incidents\n  • Capacity Planning\n  • Vacation tracker/ Shifts Roaster\n  • DEH tool updates\n  • NexGen Port updates", Field: "Quality"},
		{Label: "Environment Health\n  • Structured Environment Pipeline\n  • Sandbox refresh frequency\n  • Environments maintenance\n  • Version control", Field: "Environment Health"},
		{Label: "Risks / Escalations\n  • Issues ( P1)\n  • Challenges\n  • Risks\n  • Mitigation\n  • RAID logs", Field: "Risks / Escalations"},
	},
	ReasonLabel: "Reasons for Amber status",
	ReasonField: "If Amber or Red is selected for any question, please provide the reason_x002e_",
}

// Sections returns the six report schemas in deck order.
func Sections() []*Schema {
	return []*Schema{
		&deliveryReviewSchema,
		&projectHealthSchema,
		&salesforceQualitySchema,
		&ticketQualitySchema,
		&enhancementQualitySchema,
		&feedbackSummarySchema,
	}
}
