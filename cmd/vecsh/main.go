/*
vecsh is a small interactive shell for building and inspecting integer
vectors. Each line is one command operating on named vectors, for example:

    vec> new a 67 123 2 3 4 -123 52 1
    vec> sort a
    vec> write a
    -123 1 2 3 4 52 67 123

Run `vecsh -c "new a 1 2 3; sort a; write a"` to execute a script
non-interactively. Type `help` for the command list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	script := flag.String("c", "", "semicolon-separated commands to run instead of reading stdin")
	quiet := flag.Bool("q", false, "do not print a prompt")
	flag.Parse()

	s := newSession(os.Stdout, os.Stderr)
	if *script != "" {
		for _, line := range strings.Split(*script, ";") {
			if !s.exec(line) {
				break
			}
		}
		if s.erred {
			os.Exit(1)
		}
		return
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		if !*quiet {
			fmt.Print("vec> ")
		}
		if !in.Scan() {
			break
		}
		if !s.exec(in.Text()) {
			break
		}
	}
	if err := in.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "vecsh:", err)
		os.Exit(1)
	}
}
