// Package prompt implements the interactive terminal binding of
// domain.UserInputProvider: it asks for each derivation input, validates it,
// and re-asks on invalid values instead of aborting the session.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// Prompter collects derivation inputs from a terminal session. When the
// input is not a real terminal (pipes, tests) the master password is read as
// a plain line instead of via the hidden terminal read.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// UserID asks for the user identifier.
func (p *Prompter) UserID() (domain.UserID, error) {
	return collect(p, "User identifier (ex.: full name, username)", "", domain.NewUserID)
}

// ServiceID asks for the service identifier.
func (p *Prompter) ServiceID() (domain.ServiceID, error) {
	return collect(p, "Service identifier (ex.: name, url)", "", domain.NewServiceID)
}

// Generation asks for the rotation counter; an empty answer selects fallback.
func (p *Prompter) Generation(fallback string) (domain.Generation, error) {
	return collect(p, "Generation (bump to rotate the password)", fallback, domain.ParseGeneration)
}

// CharSet asks for the preset selection; an empty answer selects fallback.
func (p *Prompter) CharSet(fallback string) (domain.CharSet, error) {
	return collect(
		p,
		"Character sets (comma-separated: 0=small, 1=capital, 2=numbers, 3=special)",
		fallback,
		domain.ParseCharSet,
	)
}

// PasswordLength asks for the output length; an empty answer selects fallback.
func (p *Prompter) PasswordLength(fallback string) (domain.PasswordLength, error) {
	return collect(p, "Password length (1-64)", fallback, domain.ParsePasswordLength)
}

// MasterPassword asks for the master password without echoing it.
func (p *Prompter) MasterPassword() (domain.MasterPassword, error) {
	for {
		if _, err := fmt.Fprint(p.out, "Master password: "); err != nil {
			return domain.MasterPassword{}, err
		}

		raw, err := p.readSecret()
		_, _ = fmt.Fprintln(p.out)
		if err != nil {
			return domain.MasterPassword{}, err
		}

		masterPassword, err := domain.NewMasterPassword(raw)
		if err != nil {
			domain.Zero(raw)
			_, _ = fmt.Fprintln(p.out, err)
			continue
		}
		return masterPassword, nil
	}
}

// collect asks for one value and parses it, re-asking while the answer fails
// validation. Read errors (EOF included) end the loop.
func collect[T any](p *Prompter, label, fallback string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := p.ask(label, fallback)
		if err != nil {
			return zero, err
		}

		value, err := parse(raw)
		if err != nil {
			_, _ = fmt.Fprintln(p.out, err)
			continue
		}
		return value, nil
	}
}

// ask prints the prompt (with the fallback, when set) and reads one line.
// An empty answer selects the fallback. If EOF occurs after some input was
// read, the partial line is used.
func (p *Prompter) ask(label, fallback string) (string, error) {
	var err error
	if fallback != "" {
		_, err = fmt.Fprintf(p.out, "%s [%s]: ", label, fallback)
	} else {
		_, err = fmt.Fprintf(p.out, "%s: ", label)
	}
	if err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return "", err
	}

	value := strings.TrimSpace(line)
	if value == "" {
		value = fallback
	}
	return value, nil
}

// readSecret reads the master password without echo when the input is a real
// terminal, and as a plain line otherwise. The returned bytes belong to the
// caller, who is responsible for zeroing them.
func (p *Prompter) readSecret() ([]byte, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return term.ReadPassword(int(f.Fd()))
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
