package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes")
	Accepted bool
	// Cancelled is true if reading input failed (e.g. Ctrl+C closed stdin)
	Cancelled bool
}

// ConfirmSave asks whether the freshly calculated result should be kept in
// the local history. The prompt defaults to "No" when the user presses
// Enter without input; EOF declines.
func ConfirmSave(writer io.Writer, reader io.Reader) PromptResult {
	fmt.Fprint(writer, "\n? Save this result to your emission history? [y/N] ")

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error - treat as decline (user pressed Ctrl+D)
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
