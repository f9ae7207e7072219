// Package input reads match cases from disk. A case file holds the pattern on
// its first line and the subject on its second, a batch file is YAML holding
// many named cases.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tanema/rematch/src/rerrors"
)

type (
	// Case is one pattern and subject pair. Want holds the expected match offsets
	// when the case is checked, an empty non-nil Want expects no match.
	Case struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
		Text    string `yaml:"text"`
		Want    []int  `yaml:"want,omitempty"`
	}
	// Batch is the document layout of a batch file.
	Batch struct {
		Cases []Case `yaml:"cases"`
	}
)

var (
	ErrMissingPattern = errors.New("missing pattern line")
	ErrMissingSubject = errors.New("missing subject line")
	ErrEmptyBatch     = errors.New("batch has no cases")
)

// Checked reports whether the case carries an expectation.
func (c Case) Checked() bool { return c.Want != nil }

// ReadCase reads the case file at path.
func ReadCase(path string) (Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return Case{}, inputErr(path, err)
	}
	defer func() { _ = file.Close() }()
	return ParseCase(path, file)
}

// ParseCase reads a pattern line and a subject line from src. A single trailing
// line terminator is stripped from each, anything after the second line is
// ignored.
func ParseCase(name string, src io.Reader) (Case, error) {
	reader := bufio.NewReader(src)
	pattern, err := readLine(reader)
	if errors.Is(err, io.EOF) {
		return Case{}, inputErr(name, ErrMissingPattern)
	} else if err != nil {
		return Case{}, inputErr(name, err)
	}
	text, err := readLine(reader)
	if errors.Is(err, io.EOF) {
		return Case{}, inputErr(name, ErrMissingSubject)
	} else if err != nil {
		return Case{}, inputErr(name, err)
	}
	return Case{Name: name, Pattern: pattern, Text: text}, nil
}

// readLine returns io.EOF only when nothing at all was left to read, so a
// final line without a newline still counts.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], nil
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// LoadBatch reads the batch file at path.
func LoadBatch(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, inputErr(path, err)
	}
	defer func() { _ = file.Close() }()
	return DecodeBatch(path, file)
}

// DecodeBatch decodes a YAML batch document. Unnamed cases are named after
// their position.
func DecodeBatch(name string, src io.Reader) ([]Case, error) {
	var batch Batch
	decoder := yaml.NewDecoder(src)
	decoder.KnownFields(true)
	if err := decoder.Decode(&batch); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, inputErr(name, ErrEmptyBatch)
		}
		return nil, inputErr(name, fmt.Errorf("bad batch: %w", err))
	}
	if len(batch.Cases) == 0 {
		return nil, inputErr(name, ErrEmptyBatch)
	}
	for i := range batch.Cases {
		if batch.Cases[i].Name == "" {
			batch.Cases[i].Name = fmt.Sprintf("case %v", i+1)
		}
	}
	return batch.Cases, nil
}

func inputErr(name string, err error) error {
	return &rerrors.Error{
		Kind:     rerrors.InputErr,
		Filename: name,
		Err:      err,
	}
}
