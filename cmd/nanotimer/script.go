// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

func scriptCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file>",
		Short: "Run the commands in a file, one per line ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return runScript(e, r, cmd.OutOrStdout(), args[0])
		},
	}
}

// runScript executes each line as a nanotimer command on the same device.
// Blank lines and lines starting with '#' are skipped. The device is
// already open, so the flags that select it are rejected on script lines.
func runScript(e *env, r io.Reader, out io.Writer, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := shlex.Split(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %v", name, line, err)
		}
		if len(words) > 0 && words[0] == "script" {
			return fmt.Errorf("%s:%d: scripts cannot be nested", name, line)
		}
		if f := deviceFlag(words); f != "" {
			return fmt.Errorf("%s:%d: %s must be given before the script", name, line, f)
		}
		root := newRootCmd(e)
		root.SetArgs(words)
		root.SetOut(out)
		if err := root.Execute(); err != nil {
			return fmt.Errorf("%s:%d: %v", name, line, err)
		}
	}
	return scanner.Err()
}

// deviceFlag returns the first device selection flag in the words, if any.
func deviceFlag(words []string) string {
	for _, w := range words {
		if w == "--" {
			break
		}
		f, _, _ := strings.Cut(w, "=")
		switch {
		case f == "--mem", f == "--sim", f == "--sysclk":
			return f
		case strings.HasPrefix(f, "-m") && !strings.HasPrefix(f, "--"):
			return "--mem"
		}
	}
	return ""
}
