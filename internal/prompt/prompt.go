// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt handles operator input for the interactive parts of the
// workflow. Reads are synchronous and unbounded; end-of-input is folded into
// the workflow's own vocabulary (a quit during selection, an empty message
// during commit) so piped input drives the same code paths as a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sirseerhq/stagehand/internal/changeset"
)

// Prompter reads operator input line by line. Prompt labels are printed only
// when the input is a terminal, so scripted invocations stay quiet.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

// New returns a Prompter reading from in and writing prompts and listings
// to out.
func New(in io.Reader, out io.Writer) *Prompter {
	tty := false
	if f, ok := in.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Prompter{in: bufio.NewReader(in), out: out, tty: tty}
}

// ListChanges prints the numbered snapshot so the operator can refer to
// entries by index.
func (p *Prompter) ListChanges(records []changeset.Record) {
	for _, r := range records {
		fmt.Fprintf(p.out, "%3d) %s %s\n", r.Index, r.Code, r.Path)
	}
}

// ReadSelection reads one selection line. End of input counts as a quit.
func (p *Prompter) ReadSelection() (string, error) {
	line, err := p.readLine("Select files to stage (e.g. 1,3-5; 'a' = all, 'q' = quit): ")
	if err == io.EOF {
		return "q", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// ReadCommitMessage reads one message line. End of input counts as an empty
// message, which the pipeline replaces with its default.
func (p *Prompter) ReadCommitMessage() (string, error) {
	line, err := p.readLine("Commit message (empty for default): ")
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (p *Prompter) readLine(label string) (string, error) {
	if p.tty {
		fmt.Fprint(p.out, label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
