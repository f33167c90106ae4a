package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatFinding formats one finding as "path:line  message".
func (s *Styles) FormatFinding(path string, finding runner.Finding) string {
	location := s.FilePath.Render(path)
	if finding.Line > 0 {
		location += s.Location.Render(":" + strconv.Itoa(finding.Line))
	}
	return fmt.Sprintf("  %s  %s\n", location, s.Message.Render(finding.Message))
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, plural(count, "finding", "findings")))
	}
	return header
}

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "3 findings in 2 files (5 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
		stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))

	var parts []string
	if stats.FindingsTotal == 0 {
		parts = append(parts, s.Success.Render("No findings")+checked)
	} else {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s", stats.FindingsTotal,
			plural(stats.FindingsTotal, "finding", "findings")))+
			fmt.Sprintf(" in %d %s", stats.FilesWithFindings, plural(stats.FilesWithFindings, wordFile, wordFiles))+
			checked)
	}

	if stats.FilesModified > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s rewritten",
			stats.FilesModified, plural(stats.FilesModified, wordFile, wordFiles))))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		builder.WriteString(fmt.Sprintf("  %-21s%s\n", label+":", style(strconv.Itoa(value))))
	}

	row("Files checked", stats.FilesProcessed, s.SummaryValue.Render)
	if stats.FilesWithFindings > 0 {
		row("Files with findings", stats.FilesWithFindings, s.Failure.Render)
	}
	if stats.FilesModified > 0 {
		row("Files rewritten", stats.FilesModified, s.Success.Render)
	}
	if stats.FilesErrored > 0 {
		row("Files failed", stats.FilesErrored, s.Failure.Render)
	}
	row("Total findings", stats.FindingsTotal, s.SummaryValue.Render)

	builder.WriteString("\n")
	if stats.FindingsTotal > 0 || stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
