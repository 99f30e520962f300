package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints "label: " to w and reads one line from reader with
// surrounding whitespace removed. A last line without a newline still
// counts; an exhausted reader yields io.EOF.
func GetSimpleText(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s: ", label)
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints "label: " and reads a password. On a terminal the
// input is not echoed; piped input is read from reader as a plain line so
// logins can be scripted. The caller wipes the returned slice.
func GetPassword(reader *bufio.Reader, label string, w io.Writer) ([]byte, error) {
	fmt.Fprintf(w, "%s: ", label)

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
