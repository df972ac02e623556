package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault is GetSimpleText where an empty answer means def.
func GetTextWithDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// GetDate reads a YYYY-MM-DD date in loc. An empty answer means def when def
// is non-nil.
func GetDate(reader *bufio.Reader, prompt string, def *time.Time, loc *time.Location, w io.Writer) (time.Time, error) {
	d, err := GetOptionalDate(reader, prompt, def, loc, w)
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return time.Time{}, errDateRequired
	}
	return *d, nil
}

// GetOptionalDate reads a YYYY-MM-DD date in loc. An empty answer returns def
// (possibly nil); "-" clears the value and returns nil.
func GetOptionalDate(reader *bufio.Reader, prompt string, def *time.Time, loc *time.Location, w io.Writer) (*time.Time, error) {
	prompt += " (YYYY-MM-DD)"
	if def != nil {
		prompt = fmt.Sprintf("%s [%s]", prompt, def.In(loc).Format(datex.DateLayout))
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	switch s {
	case "":
		return def, nil
	case "-":
		return nil, nil
	}
	t, err := datex.ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetConfirm asks a yes/no question; only "y" and "yes" confirm.
func GetConfirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	s, err := GetSimpleText(reader, prompt+" (y/N)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
