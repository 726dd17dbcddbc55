package vacuum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/vacuum/internal/ui"
)

// IOBranchPrompter reads deletion answers line by line from an io.Reader.
type IOBranchPrompter struct {
	reader  *bufio.Reader
	printer *ui.StatusPrinter
}

// NewIOBranchPrompter constructs a prompter reading from input and writing prompts through printer.
func NewIOBranchPrompter(input io.Reader, printer *ui.StatusPrinter) *IOBranchPrompter {
	if printer == nil {
		printer = ui.NewStatusPrinter(nil)
	}
	return &IOBranchPrompter{reader: bufio.NewReader(input), printer: printer}
}

// ConfirmDeletion asks until the answer is "y", "n", or blank. Answers are case-insensitive.
// Exhausted input counts as a blank answer.
func (prompter *IOBranchPrompter) ConfirmDeletion(branchName string) (bool, error) {
	promptMessage := fmt.Sprintf(deletionPromptTemplateConstant, branchName)
	for {
		if promptError := prompter.printer.Prompt(promptMessage); promptError != nil {
			return false, promptError
		}

		response, readError := prompter.reader.ReadString('\n')
		if readError != nil {
			if !errors.Is(readError, io.EOF) {
				return false, readError
			}
			if _, writeError := io.WriteString(prompter.printer.Writer(), lineTerminatorConstant); writeError != nil {
				return false, writeError
			}
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case affirmativeAnswerConstant:
			return true, nil
		case negativeAnswerConstant, "":
			return false, nil
		}

		prompter.printer.Info(answerGuidanceMessageConstant)
	}
}
