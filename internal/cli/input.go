package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// timeLayout is the wall-clock format the prompts accept.
const timeLayout = "2006-01-02 15:04"

// GetSimpleText prints a prompt and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt + "\n> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetAPIKey reads the Gemini API key from the terminal without echo.
func GetAPIKey(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter API key: "); err != nil {
		return nil, err
	}
	key, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// getTime prompts for a wall-clock time and returns epoch milliseconds.
// An empty answer means now.
func (a *App) getTime(prompt string) (int64, error) {
	text, err := GetSimpleText(a.reader, prompt+" (YYYY-MM-DD HH:MM, empty for now)")
	if err != nil {
		return 0, err
	}
	if text == "" {
		return time.Now().UnixMilli(), nil
	}
	t, err := time.ParseInLocation(timeLayout, text, time.Local)
	if err != nil {
		return 0, fmt.Errorf("unrecognized time %q: %w", text, err)
	}
	return t.UnixMilli(), nil
}

// getFloat prompts for a number. An empty answer yields zero.
func (a *App) getFloat(prompt string) (float64, error) {
	text, err := GetSimpleText(a.reader, prompt)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	return v, nil
}

// getInt prompts for an integer. An empty answer yields zero.
func (a *App) getInt(prompt string) (int, error) {
	text, err := GetSimpleText(a.reader, prompt)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", text)
	}
	return v, nil
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format(timeLayout)
}
