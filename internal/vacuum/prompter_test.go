package vacuum_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/vacuum/internal/ui"
	"github.com/temirov/vacuum/internal/vacuum"
)

const (
	testPromptConstant   = "Branch 'feature/x' exists only locally. Delete? [y/N]: "
	testGuidanceConstant = "Please answer with 'y' or 'n'.\n"
)

func TestIOBranchPrompterInterpretsAnswers(testInstance *testing.T) {
	testCases := []struct {
		name              string
		input             string
		expectedConfirmed bool
		expectedOutput    string
	}{
		{name: "lowercase_yes", input: "y\n", expectedConfirmed: true, expectedOutput: testPromptConstant},
		{name: "uppercase_yes_with_spaces", input: "  Y \n", expectedConfirmed: true, expectedOutput: testPromptConstant},
		{name: "no", input: "n\n", expectedConfirmed: false, expectedOutput: testPromptConstant},
		{name: "blank_line_keeps", input: "   \n", expectedConfirmed: false, expectedOutput: testPromptConstant},
		{name: "windows_line_ending", input: "y\r\n", expectedConfirmed: true, expectedOutput: testPromptConstant},
		{
			name:              "reprompts_until_valid",
			input:             "maybe\nyes\ny\n",
			expectedConfirmed: true,
			expectedOutput:    testPromptConstant + testGuidanceConstant + testPromptConstant + testGuidanceConstant + testPromptConstant,
		},
		{name: "closed_input_keeps", input: "", expectedConfirmed: false, expectedOutput: testPromptConstant + "\n"},
		{name: "unterminated_answer", input: "y", expectedConfirmed: true, expectedOutput: testPromptConstant + "\n"},
		{
			name:              "invalid_then_closed_input",
			input:             "maybe",
			expectedConfirmed: false,
			expectedOutput:    testPromptConstant + "\n" + testGuidanceConstant + testPromptConstant + "\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			outputBuffer := &bytes.Buffer{}
			prompter := vacuum.NewIOBranchPrompter(strings.NewReader(testCase.input), ui.NewStatusPrinter(outputBuffer))

			confirmed, promptError := prompter.ConfirmDeletion("feature/x")
			require.NoError(subTest, promptError)
			require.Equal(subTest, testCase.expectedConfirmed, confirmed)
			require.Equal(subTest, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal detached")
}

func TestIOBranchPrompterPropagatesReadFailures(testInstance *testing.T) {
	prompter := vacuum.NewIOBranchPrompter(failingReader{}, ui.NewStatusPrinter(&bytes.Buffer{}))
	_, promptError := prompter.ConfirmDeletion("feature/x")
	require.EqualError(testInstance, promptError, "terminal detached")
}
