package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	lineTerminatorConstant     = "\n"
	infoColorConstant          = "12"
	successColorConstant       = "10"
	warningColorConstant       = "11"
	failureColorConstant       = "9"
	promptColorConstant        = "14"
	statusLineTemplateConstant = "%s%s"
)

// StatusPrinter writes operator-facing status lines. Colours are applied only
// when the destination writer is a terminal.
type StatusPrinter struct {
	writer       io.Writer
	infoStyle    lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	failureStyle lipgloss.Style
	promptStyle  lipgloss.Style
}

// NewStatusPrinter constructs a printer that renders for the provided writer.
func NewStatusPrinter(writer io.Writer) *StatusPrinter {
	if writer == nil {
		writer = io.Discard
	}
	renderer := lipgloss.NewRenderer(writer)
	return &StatusPrinter{
		writer:       writer,
		infoStyle:    renderer.NewStyle().Foreground(lipgloss.Color(infoColorConstant)),
		successStyle: renderer.NewStyle().Foreground(lipgloss.Color(successColorConstant)),
		warningStyle: renderer.NewStyle().Foreground(lipgloss.Color(warningColorConstant)),
		failureStyle: renderer.NewStyle().Foreground(lipgloss.Color(failureColorConstant)).Bold(true),
		promptStyle:  renderer.NewStyle().Foreground(lipgloss.Color(promptColorConstant)),
	}
}

// Info writes a neutral progress line.
func (printer *StatusPrinter) Info(message string) {
	printer.writeLine(printer.infoStyle, message)
}

// Success writes a line describing a completed action.
func (printer *StatusPrinter) Success(message string) {
	printer.writeLine(printer.successStyle, message)
}

// Warning writes a line describing a recoverable problem.
func (printer *StatusPrinter) Warning(message string) {
	printer.writeLine(printer.warningStyle, message)
}

// Failure writes a line describing a fatal problem.
func (printer *StatusPrinter) Failure(message string) {
	printer.writeLine(printer.failureStyle, message)
}

// Prompt writes a question without a trailing line break.
func (printer *StatusPrinter) Prompt(message string) error {
	_, writeError := io.WriteString(printer.writer, printer.promptStyle.Render(message))
	return writeError
}

// Writer exposes the destination of the printed lines.
func (printer *StatusPrinter) Writer() io.Writer {
	return printer.writer
}

func (printer *StatusPrinter) writeLine(style lipgloss.Style, message string) {
	fmt.Fprintf(printer.writer, statusLineTemplateConstant, style.Render(message), lineTerminatorConstant)
}
